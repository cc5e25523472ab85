package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/catalogclient"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	client *fakeCatalog
	state  *state.Store
	nav    *navigation.Recorder
	svc    CatalogService
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{client: newFakeCatalog(), state: state.New(), nav: navigation.NewRecorder()}
	f.svc = NewCatalogService(f.client, f.state, f.nav, logging.Nop())
	return f
}

func TestCatalogService_ReloadPublishesAll(t *testing.T) {
	f := newCatalogFixture()
	f.client.Lists["a"] = []models.Product{product(1, "one"), product(2, "two")}
	f.client.Lists["b"] = []models.Product{product(3, "three")}

	require.NoError(t, f.svc.Reload(context.Background(), []string{"a", "b"}))

	m := f.state.Catalog()
	assert.Len(t, m, 2)
	assert.Equal(t, []models.Product{product(1, "one"), product(2, "two")}, m["a"])
	assert.Equal(t, []models.Product{product(3, "three")}, m["b"])
	assert.False(t, f.state.Loading())
	assert.NoError(t, f.state.CatalogError())
	assert.Equal(t, int32(2), f.client.listCalls.Load())
}

func TestCatalogService_ReloadIsAllOrNothing(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	f.client.Lists["a"] = []models.Product{product(1, "one")}
	require.NoError(t, f.svc.Reload(ctx, []string{"a"}))
	before := f.state.Catalog()

	f.client.Lists["b"] = []models.Product{product(2, "two")}
	f.client.ListErrs["c"] = catalogclient.ErrFetchFailed

	err := f.svc.Reload(ctx, []string{"a", "b", "c"})
	require.ErrorIs(t, err, catalogclient.ErrFetchFailed)

	assert.Equal(t, before, f.state.Catalog())
	require.ErrorIs(t, f.state.CatalogError(), catalogclient.ErrFetchFailed)
	assert.False(t, f.state.Loading())
}

func TestCatalogService_StaleResultIsDiscarded(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	gate := make(chan struct{})
	f.client.Gates["old"] = gate
	f.client.Lists["old"] = []models.Product{product(1, "old")}
	f.client.Lists["new"] = []models.Product{product(2, "new")}

	oldDone := make(chan error, 1)
	go func() { oldDone <- f.svc.Reload(ctx, []string{"old"}) }()
	require.Eventually(t, func() bool { return f.client.listCalls.Load() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, f.svc.Reload(ctx, []string{"new"}))
	close(gate)

	require.ErrorIs(t, <-oldDone, state.ErrSuperseded)
	m := f.state.Catalog()
	assert.Len(t, m, 1)
	assert.Contains(t, m, "new")
}

func TestCatalogService_StaleFailureIsDiscarded(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	gate := make(chan struct{})
	f.client.Gates["old"] = gate
	f.client.ListErrs["old"] = catalogclient.ErrFetchFailed
	f.client.Lists["new"] = []models.Product{product(2, "new")}

	oldDone := make(chan error, 1)
	go func() { oldDone <- f.svc.Reload(ctx, []string{"old"}) }()
	require.Eventually(t, func() bool { return f.client.listCalls.Load() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, f.svc.Reload(ctx, []string{"new"}))
	close(gate)

	require.ErrorIs(t, <-oldDone, state.ErrSuperseded)
	assert.NoError(t, f.state.CatalogError())
	assert.Contains(t, f.state.Catalog(), "new")
}

func TestCatalogService_OpenTabAndListings(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	f.client.Lists["mens-shirts"] = []models.Product{product(1, "shirt")}
	f.client.Lists["mens-shoes"] = []models.Product{product(2, "shoe"), product(3, "boot")}
	f.client.Lists["mens-watches"] = []models.Product{product(4, "watch")}
	f.client.Lists["womens-bags"] = []models.Product{product(5, "bag")}

	assert.Equal(t, models.TabMale, f.svc.Tab())
	require.NoError(t, f.svc.OpenTab(ctx, models.TabMale))

	var ids []int
	for _, l := range f.svc.Listings() {
		ids = append(ids, l.Product.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	require.NoError(t, f.svc.SetFilter("mens-shoes"))
	ls := f.svc.Listings()
	require.Len(t, ls, 2)
	assert.Equal(t, "mens-shoes", ls[0].Subcategory)

	require.ErrorIs(t, f.svc.SetFilter("womens-bags"), ErrUnknownSubcategory)
	assert.Equal(t, "mens-shoes", f.svc.Filter())

	require.NoError(t, f.svc.OpenTab(ctx, models.TabFemale))
	assert.Equal(t, models.TabFemale, f.svc.Tab())
	assert.Equal(t, models.AllSubcategories, f.svc.Filter())
	m := f.state.Catalog()
	assert.NotContains(t, m, "mens-shirts")
	assert.Len(t, m, len(models.TabFemale.Keys()))
}

func TestCatalogService_RetryAfterFailure(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	f.client.ListErrs["mens-shoes"] = catalogclient.ErrFetchFailed

	require.Error(t, f.svc.OpenTab(ctx, models.TabMale))
	assert.Empty(t, f.state.Catalog())
	assert.Error(t, f.state.CatalogError())

	delete(f.client.ListErrs, "mens-shoes")
	require.NoError(t, f.svc.Retry(ctx))
	assert.NoError(t, f.state.CatalogError())
	assert.Len(t, f.state.Catalog(), 3)
}

func TestCatalogService_Select(t *testing.T) {
	f := newCatalogFixture()

	f.svc.Select(product(42, "x"))

	p, ok := f.state.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, navigation.Event{Route: navigation.RouteDetail, ProductID: "42"}, f.nav.Current())
}

func TestCatalogService_ResolveDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit makes no call", func(t *testing.T) {
		f := newCatalogFixture()
		p := product(7, "cached")
		f.state.SetSelectedProduct(&p)

		got, err := f.svc.ResolveDetail(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "cached", got.Title)
		assert.Zero(t, f.client.getCalls.Load())
	})

	t.Run("mismatch fetches once", func(t *testing.T) {
		f := newCatalogFixture()
		p := product(7, "cached")
		f.state.SetSelectedProduct(&p)
		f.client.Products["8"] = product(8, "remote")

		got, err := f.svc.ResolveDetail(ctx, "8")
		require.NoError(t, err)
		assert.Equal(t, "remote", got.Title)
		assert.Equal(t, int32(1), f.client.getCalls.Load())

		sel, _ := f.state.SelectedProduct()
		assert.Equal(t, 7, sel.ID)
	})

	t.Run("empty id", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.svc.ResolveDetail(ctx, "")
		require.ErrorIs(t, err, ErrProductNotFound)
		assert.Zero(t, f.client.getCalls.Load())
	})

	t.Run("remote not found", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.svc.ResolveDetail(ctx, "99")
		require.ErrorIs(t, err, ErrProductNotFound)
		require.ErrorIs(t, err, catalogclient.ErrNotFound)
	})

	t.Run("remote failure", func(t *testing.T) {
		f := newCatalogFixture()
		f.client.GetErr = catalogclient.ErrFetchFailed
		_, err := f.svc.ResolveDetail(ctx, "1")
		require.ErrorIs(t, err, catalogclient.ErrFetchFailed)
		assert.False(t, errors.Is(err, ErrProductNotFound))
	})

	t.Run("no cache hit after logout", func(t *testing.T) {
		f := newCatalogFixture()
		p := product(7, "cached")
		f.state.SetSelectedProduct(&p)
		f.state.Logout()

		_, ok := f.svc.TryCacheHit("7")
		assert.False(t, ok)
	})
}
