package wishlist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
	persistMock "github.com/HamzaQasim7/inshacollections/internal/mock/persist"
	"github.com/HamzaQasim7/inshacollections/internal/shared/persist"
	"github.com/HamzaQasim7/inshacollections/internal/wishlist"
)

type fakeCatalogService struct {
	products []catalog.Product
}

func (f *fakeCatalogService) Products(ctx context.Context) []catalog.Product {
	return f.products
}

func (f *fakeCatalogService) ProductByID(ctx context.Context, id string) (catalog.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrProductNotFound
}

func (f *fakeCatalogService) ProductBySlug(ctx context.Context, slug string) (catalog.Product, error) {
	return catalog.Product{}, catalog.ErrProductNotFound
}

func (f *fakeCatalogService) Collections(ctx context.Context) []catalog.Collection { return nil }
func (f *fakeCatalogService) Categories(ctx context.Context) []catalog.Category { return nil }

func (f *fakeCatalogService) Browse(ctx context.Context, slug string, req catalog.BrowseRequest) (catalog.BrowseResponse, error) {
	return catalog.BrowseResponse{}, nil
}

var fixtures = []catalog.Product{
	{ID: "p1", Name: "Zainab Kurta", Price: 4500},
	{ID: "p2", Name: "Noor Maxi", Price: 18500},
}

func newService(t *testing.T, store persist.Store) wishlist.Service {
	t.Helper()
	return wishlist.NewService(wishlist.Deps{
		CatalogSvc: &fakeCatalogService{products: fixtures},
		Store:      store,
	})
}

func emptyStore(ctrl *gomock.Controller) *persistMock.MockStore {
	store := persistMock.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), wishlist.StorageKey).Return(nil, persist.ErrNotFound)
	return store
}

func TestWishlistService_AddIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := emptyStore(ctrl)
	store.EXPECT().Save(gomock.Any(), wishlist.StorageKey, gomock.Any()).Return(nil).Times(2)

	svc := newService(t, store)
	ctx := context.Background()

	items, err := svc.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// adding the same product again keeps the set unchanged
	items, err = svc.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistService_AddUnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl))

	_, err := svc.AddItem(context.Background(), "missing")
	assert.ErrorIs(t, err, wishlist.ErrProductNotFound)
}

func TestWishlistService_ToggleRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := emptyStore(ctrl)
	store.EXPECT().Save(gomock.Any(), wishlist.StorageKey, gomock.Any()).Return(nil).Times(2)

	svc := newService(t, store)
	ctx := context.Background()

	res, err := svc.Toggle(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.True(t, svc.Contains(ctx, "p2"))

	// second toggle restores the original membership state
	res, err = svc.Toggle(ctx, "p2")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.False(t, svc.Contains(ctx, "p2"))
	assert.Empty(t, svc.Items(ctx))
}

func TestWishlistService_RemoveAbsentIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := emptyStore(ctrl)
	store.EXPECT().Save(gomock.Any(), wishlist.StorageKey, gomock.Any()).Return(nil)

	svc := newService(t, store)

	items := svc.RemoveItem(context.Background(), "never-added")
	assert.Empty(t, items)
}

func TestWishlistService_InsertionOrderPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := emptyStore(ctrl)
	store.EXPECT().Save(gomock.Any(), wishlist.StorageKey, gomock.Any()).Return(nil).AnyTimes()

	svc := newService(t, store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "p2")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "p1")
	require.NoError(t, err)

	items := svc.Items(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, "p1", items[1].ID)
}

func TestWishlistService_HydratesFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := persistMock.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), wishlist.StorageKey).Return([]byte(`[{"id":"p2","name":"Noor Maxi","price":18500}]`), nil)

	svc := newService(t, store)

	assert.True(t, svc.Contains(context.Background(), "p2"))
}

func TestWishlistService_CorruptStateDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := persistMock.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), wishlist.StorageKey).Return([]byte("not-json"), nil)

	svc := newService(t, store)

	assert.Empty(t, svc.Items(context.Background()))
}

func TestWishlistService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := emptyStore(ctrl)
	store.EXPECT().Save(gomock.Any(), wishlist.StorageKey, gomock.Any()).Return(nil).AnyTimes()

	svc := newService(t, store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "p1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "p2")
	require.NoError(t, err)

	items := svc.Clear(ctx)
	assert.Empty(t, items)
	assert.False(t, svc.Contains(ctx, "p1"))
}
