package sessionstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/models"
)

// MemoryStore keeps the encoded record in memory. It goes through the same
// encode/decode path as the persistent backends.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(ctx context.Context, user models.UserSession) error {
	b, err := encode(user)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = b
	return nil
}

func (m *MemoryStore) Load(ctx context.Context) (*models.UserSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSession
	}
	return decode(m.data)
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// SetRaw stores b verbatim, bypassing encoding.
func (m *MemoryStore) SetRaw(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(make([]byte, 0, len(b)), b...)
}

func (m *MemoryStore) Close() error { return nil }
