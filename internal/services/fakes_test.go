package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/storefront/internal/catalogclient"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/sessionstore"
)

// ---- fake session store ----

type fakeStore struct {
	mu sync.Mutex

	user *models.UserSession

	SaveErr  error
	LoadErr  error
	ClearErr error

	// when set, Load blocks until it is closed or ctx is done
	LoadGate chan struct{}
	// when set, a missing record loads as (nil, nil)
	NilOnMiss bool

	saves  int
	loads  int
	clears int
}

var _ sessionstore.Store = (*fakeStore)(nil)

func (f *fakeStore) Save(ctx context.Context, u models.UserSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.user = &u
	return nil
}

func (f *fakeStore) Load(ctx context.Context) (*models.UserSession, error) {
	f.mu.Lock()
	f.loads++
	gate := f.LoadGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	if f.user == nil {
		if f.NilOnMiss {
			return nil, nil
		}
		return nil, sessionstore.ErrNoSession
	}
	u := *f.user
	return &u, nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.user = nil
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) counts() (saves, loads, clears int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves, f.loads, f.clears
}

// ---- fake catalog client ----

type fakeCatalog struct {
	mu sync.Mutex

	Lists    map[string][]models.Product
	ListErrs map[string]error
	// per-key gates; ListByCategory waits on them before answering
	Gates map[string]chan struct{}

	Products map[string]models.Product
	GetErr   error

	listCalls atomic.Int32
	getCalls  atomic.Int32
}

var _ catalogclient.Client = (*fakeCatalog)(nil)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		Lists:    map[string][]models.Product{},
		ListErrs: map[string]error{},
		Gates:    map[string]chan struct{}{},
		Products: map[string]models.Product{},
	}
}

func (f *fakeCatalog) ListByCategory(ctx context.Context, key string) ([]models.Product, error) {
	f.listCalls.Add(1)

	f.mu.Lock()
	gate := f.Gates[key]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ListErrs[key]; err != nil {
		return nil, err
	}
	return append([]models.Product(nil), f.Lists[key]...), nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*models.Product, error) {
	f.getCalls.Add(1)
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	p, ok := f.Products[id]
	if !ok {
		return nil, catalogclient.ErrNotFound
	}
	return &p, nil
}

func product(id int, title string) models.Product {
	return models.Product{ID: id, Title: title, Price: float64(id)}
}

// ---- logger with an Info hook ----

type hookLogger struct {
	logging.Logger
	onInfo func()
}

func (l hookLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.onInfo != nil {
		l.onInfo()
	}
}
