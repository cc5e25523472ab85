// Package state is the storefront client's single state container: the
// active session, the catalog map with its selected product, and the theme
// preference.
//
// A Store is created explicitly and handed to every consumer; there is no
// package-level instance. All mutations go through the methods below and
// are applied atomically under one lock, so readers never observe a
// half-applied change.
package state

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/theme"
)

// ErrSuperseded is returned when a catalog result belongs to a reload that
// is no longer the latest one. Callers drop such results.
var ErrSuperseded = errors.New("catalog reload superseded")

type Store struct {
	mu sync.RWMutex

	user     *models.UserSession
	selected *models.Product

	catalog    models.CategoryProductMap
	catalogErr error
	loading    bool
	generation uint64

	themeMode theme.Mode
}

// New returns an empty store: logged out, nothing selected, empty catalog,
// theme preference "system".
func New() *Store {
	return &Store{themeMode: theme.DefaultMode}
}

// User returns the active session, if any.
func (s *Store) User() (models.UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserSession{}, false
	}
	return *s.user, true
}

// Login makes u the active session. No validation is done here.
func (s *Store) Login(u models.UserSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Logout clears the session and the selected product. Calling it while
// logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.selected = nil
}

// SelectedProduct returns the product promoted for the detail view, if any.
func (s *Store) SelectedProduct() (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return models.Product{}, false
	}
	return *s.selected, true
}

// SetSelectedProduct replaces the single-slot selection; nil clears it.
func (s *Store) SetSelectedProduct(p *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.selected = nil
		return
	}
	cp := *p
	s.selected = &cp
}

// Catalog returns a copy of the published category map.
func (s *Store) Catalog() models.CategoryProductMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

// CatalogError returns the failure of the latest finished reload, if any.
func (s *Store) CatalogError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogErr
}

// Loading reports whether the latest reload is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// BeginReload starts a new reload generation and returns it. Results of
// every earlier generation are rejected from now on.
func (s *Store) BeginReload() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	s.catalogErr = nil
	return s.generation
}

// Generation returns the latest reload generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// PublishCatalog replaces the whole catalog map with m if gen is still the
// latest generation, otherwise it returns ErrSuperseded and changes nothing.
func (s *Store) PublishCatalog(gen uint64, m models.CategoryProductMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrSuperseded
	}
	s.catalog = m.Clone()
	s.catalogErr = nil
	s.loading = false
	return nil
}

// FailCatalog records err as the outcome of reload gen, leaving the
// previously published map untouched. Stale generations get ErrSuperseded.
func (s *Store) FailCatalog(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrSuperseded
	}
	s.catalogErr = err
	s.loading = false
	return nil
}

// ResetCatalog empties the catalog map and its error, e.g. when switching
// tabs. In-flight reloads are superseded.
func (s *Store) ResetCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.catalog = nil
	s.catalogErr = nil
	s.loading = false
}

// ThemeMode returns the stored theme preference.
func (s *Store) ThemeMode() theme.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeMode
}

// SetThemeMode stores a new theme preference.
func (s *Store) SetThemeMode(m theme.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeMode = m
}

// EffectiveTheme resolves the stored preference against src at call time.
func (s *Store) EffectiveTheme(src theme.AppearanceSource) theme.Effective {
	return theme.ResolveFrom(s.ThemeMode(), src)
}
