package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/sessionstore"
	"github.com/dmitrijs2005/storefront/internal/state"
)

// ErrTornDown is returned by Bootstrap.Wait when the bootstrap was torn
// down before it settled.
var ErrTornDown = errors.New("bootstrap torn down")

type Phase int

const (
	PhaseRestoring Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "restoring"
}

// Bootstrap restores the persisted session at startup. It moves from
// PhaseRestoring to PhaseReady exactly once, whatever the store returns.
// After Teardown a late result is dropped without touching state or
// navigation. The Navigator must not call back into the Bootstrap.
type Bootstrap struct {
	store sessionstore.Store
	state *state.Store
	nav   navigation.Navigator
	log   logging.Logger

	mu       sync.Mutex
	phase    Phase
	started  bool
	tornDown bool
	cancel   context.CancelFunc

	settled    chan struct{}
	settleOnce sync.Once
	exited     chan struct{}
}

func NewBootstrap(store sessionstore.Store, st *state.Store, nav navigation.Navigator, log logging.Logger) *Bootstrap {
	return &Bootstrap{
		store:   store,
		state:   st,
		nav:     nav,
		log:     log,
		phase:   PhaseRestoring,
		settled: make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Start reads the stored session in the background. Later calls are no-ops,
// as is a call after Teardown.
func (b *Bootstrap) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.tornDown {
		return
	}
	b.started = true

	ctx, b.cancel = context.WithCancel(ctx)
	go b.restore(ctx)
}

// Run starts the bootstrap and waits for it to settle.
func (b *Bootstrap) Run(ctx context.Context) error {
	b.Start(ctx)
	return b.Wait(ctx)
}

// Wait blocks until the bootstrap is ready, torn down, or ctx is done.
func (b *Bootstrap) Wait(ctx context.Context) error {
	select {
	case <-b.settled:
	case <-ctx.Done():
		return ctx.Err()
	}

	if b.Phase() == PhaseReady {
		return nil
	}
	return ErrTornDown
}

// Phase returns the current phase.
func (b *Bootstrap) Phase() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// Teardown abandons the bootstrap. If the restore has not settled yet its
// result will be discarded.
func (b *Bootstrap) Teardown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tornDown {
		return
	}
	b.tornDown = true
	if b.cancel != nil {
		b.cancel()
	}
	if !b.started {
		close(b.exited)
	}
	b.settle()
}

func (b *Bootstrap) settle() {
	b.settleOnce.Do(func() { close(b.settled) })
}

func (b *Bootstrap) restore(ctx context.Context) {
	defer close(b.exited)

	user, err := b.store.Load(ctx)
	if err == nil && user == nil {
		err = sessionstore.ErrNoSession
	}

	switch {
	case err == nil:
		b.log.Info(ctx, "stored session found", "email", user.Email)
	case errors.Is(err, sessionstore.ErrNoSession):
		b.log.Debug(ctx, "no stored session")
	default:
		b.log.Warn(ctx, "stored session ignored", "error", err)
	}

	// The outcome is applied under mu so a Teardown either precedes it and
	// drops it, or follows settlement and sees it complete.
	b.mu.Lock()
	discarded := b.tornDown
	if !discarded {
		if err == nil {
			b.state.Login(*user)
			b.nav.GoToCatalog()
		}
		b.phase = PhaseReady
		b.settle()
	}
	b.mu.Unlock()

	if discarded {
		b.log.Debug(ctx, "session restore discarded after teardown")
	}
}
