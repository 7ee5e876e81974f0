package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
)

func newTestService(t *testing.T) catalog.Service {
	t.Helper()
	return catalog.NewService(catalog.Deps{
		Products: fixtureProducts(),
	})
}

func TestService_ProductLookups(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("by_id", func(t *testing.T) {
		p, err := svc.ProductByID(ctx, "b2")
		require.NoError(t, err)
		assert.Equal(t, "Bridal Two", p.Name)
	})

	t.Run("by_id_not_found", func(t *testing.T) {
		_, err := svc.ProductByID(ctx, "missing")
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("by_slug_not_found", func(t *testing.T) {
		_, err := svc.ProductBySlug(ctx, "missing-slug")
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

func TestService_BrowseDefaults(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Browse(context.Background(), "bridal", catalog.BrowseRequest{})
	require.NoError(t, err)

	// nil filters fall back to the reset state
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(res.Items))
	assert.False(t, res.HasMore)
	assert.Equal(t, 3, res.DisplayCount)
}

func TestService_BrowsePagination(t *testing.T) {
	// 8 bridal-scoped products to exercise paging
	products := make([]catalog.Product, 0, 8)
	for i := 0; i < 8; i++ {
		products = append(products, catalog.Product{
			ID:           string(rune('a' + i)),
			CategorySlug: "bridal",
			Price:        1000,
		})
	}
	svc := catalog.NewService(catalog.Deps{Products: products})

	res, err := svc.Browse(context.Background(), "bridal", catalog.BrowseRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 6)
	assert.True(t, res.HasMore)
	assert.Equal(t, 8, res.Total)

	res, err = svc.Browse(context.Background(), "bridal", catalog.BrowseRequest{
		Count:    res.DisplayCount,
		LoadMore: true,
	})
	require.NoError(t, err)
	assert.Len(t, res.Items, 8)
	assert.False(t, res.HasMore)
}

func TestService_BrowseWithFilters(t *testing.T) {
	svc := newTestService(t)

	filters := catalog.DefaultFilters()
	filters.PriceRange = [2]int{0, 6000}
	filters.SortBy = catalog.SortPriceHighLow

	res, err := svc.Browse(context.Background(), "bridal", catalog.BrowseRequest{Filters: &filters})
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b1"}, ids(res.Items))
}
