package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/catalogclient"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/state"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUnknownSubcategory = errors.New("unknown subcategory")
)

// DefaultTab is the tab loaded right after login.
const DefaultTab = models.TabMale

// CatalogService loads and browses the catalog.
//
// Contract:
//   - Reload: fetch every key concurrently and publish the merged map only
//     if all fetches succeeded. A reload overtaken by a newer one returns
//     state.ErrSuperseded and leaves the state alone.
//   - OpenTab / Retry: reload the keys of a tab (OpenTab drops the old map
//     first).
//   - Select: promote a product for the detail view and navigate to it.
//   - ResolveDetail: selected product if its id matches, otherwise one
//     fetch by id.
type CatalogService interface {
	Reload(ctx context.Context, keys []string) error
	OpenTab(ctx context.Context, tab models.Tab) error
	Retry(ctx context.Context) error
	Tab() models.Tab
	SetFilter(sub string) error
	Filter() string
	Listings() []models.Listing
	Select(p models.Product)
	TryCacheHit(id string) (models.Product, bool)
	FetchByID(ctx context.Context, id string) (*models.Product, error)
	ResolveDetail(ctx context.Context, id string) (*models.Product, error)
}

type catalogService struct {
	client catalogclient.Client
	state  *state.Store
	nav    navigation.Navigator
	log    logging.Logger

	mu     sync.Mutex
	tab    models.Tab
	filter string
}

func NewCatalogService(client catalogclient.Client, st *state.Store, nav navigation.Navigator, log logging.Logger) CatalogService {
	return &catalogService{
		client: client,
		state:  st,
		nav:    nav,
		log:    log,
		tab:    DefaultTab,
		filter: models.AllSubcategories,
	}
}

func (s *catalogService) Reload(ctx context.Context, keys []string) error {
	gen := s.state.BeginReload()
	log := s.log.With("reload_id", uuid.NewString(), "generation", gen)
	log.Debug(ctx, "catalog reload started", "categories", len(keys))

	results := make([][]models.Product, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			ps, err := s.client.ListByCategory(gctx, key)
			if err != nil {
				return fmt.Errorf("category %s: %w", key, err)
			}
			results[i] = ps
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ferr := s.state.FailCatalog(gen, err); ferr != nil {
			log.Debug(ctx, "stale catalog failure dropped", "error", err)
			return ferr
		}
		log.Warn(ctx, "catalog reload failed", "error", err)
		return err
	}

	merged := make(models.CategoryProductMap, len(keys))
	for i, key := range keys {
		merged[key] = results[i]
	}

	if err := s.state.PublishCatalog(gen, merged); err != nil {
		log.Debug(ctx, "stale catalog result dropped")
		return err
	}
	log.Info(ctx, "catalog reloaded", "categories", len(merged))
	return nil
}

func (s *catalogService) OpenTab(ctx context.Context, tab models.Tab) error {
	s.mu.Lock()
	s.tab = tab
	s.filter = models.AllSubcategories
	s.mu.Unlock()

	s.state.ResetCatalog()
	return s.Reload(ctx, tab.Keys())
}

func (s *catalogService) Retry(ctx context.Context) error {
	return s.Reload(ctx, s.Tab().Keys())
}

func (s *catalogService) Tab() models.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

func (s *catalogService) SetFilter(sub string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub != models.AllSubcategories && !s.tab.HasSubcategory(sub) {
		return fmt.Errorf("%w: %q in tab %s", ErrUnknownSubcategory, sub, s.tab)
	}
	s.filter = sub
	return nil
}

func (s *catalogService) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Listings flattens the published map in the current tab's order and
// applies the current filter.
func (s *catalogService) Listings() []models.Listing {
	s.mu.Lock()
	tab, filter := s.tab, s.filter
	s.mu.Unlock()

	return models.FilterListings(models.Flatten(s.state.Catalog(), tab.Subcategories()), filter)
}

func (s *catalogService) Select(p models.Product) {
	s.state.SetSelectedProduct(&p)
	s.nav.GoToDetail(p.IDString())
}

func (s *catalogService) TryCacheHit(id string) (models.Product, bool) {
	p, ok := s.state.SelectedProduct()
	if !ok || id == "" || p.IDString() != id {
		return models.Product{}, false
	}
	return p, true
}

func (s *catalogService) FetchByID(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrProductNotFound)
	}

	p, err := s.client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogclient.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrProductNotFound, err)
		}
		s.log.Warn(ctx, "product fetch failed", "id", id, "error", err)
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ResolveDetail(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := s.TryCacheHit(id); ok {
		return &p, nil
	}
	return s.FetchByID(ctx, id)
}
