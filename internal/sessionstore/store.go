package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/models"
)

// DefaultKey is the namespaced key the session record lives under.
const DefaultKey = "@catalogo:user"

var (
	ErrNoSession       = errors.New("no stored session")
	ErrMalformedRecord = errors.New("malformed session record")
)

// Store saves, loads and clears the session record.
//
// Load returns ErrNoSession when nothing is stored and ErrMalformedRecord
// when the stored bytes are not a valid session. Callers also treat a
// (nil, nil) result as ErrNoSession.
type Store interface {
	Save(ctx context.Context, user models.UserSession) error
	Load(ctx context.Context) (*models.UserSession, error)
	Clear(ctx context.Context) error
	Close() error
}

func encode(user models.UserSession) ([]byte, error) {
	b, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func decode(b []byte) (*models.UserSession, error) {
	if len(b) == 0 {
		return nil, ErrMalformedRecord
	}
	var u models.UserSession
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if !u.WellFormed() {
		return nil, ErrMalformedRecord
	}
	return &u, nil
}
