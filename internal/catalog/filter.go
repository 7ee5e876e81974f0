package catalog

import (
	"sort"
	"strings"
)

// FilterProducts narrows the dataset to a collection/category scope, applies
// the filter criteria in order (price, fabric, size, color) and finally
// sorts. It is pure: the input slice is never mutated and no error paths
// exist, an unmatched filter just yields an empty result.
func FilterProducts(products []Product, slug string, filters FilterState) []Product {
	result := selectScope(products, slug)

	filtered := make([]Product, 0, len(result))
	for _, p := range result {
		if p.Price < filters.PriceRange[0] || p.Price > filters.PriceRange[1] {
			continue
		}
		if len(filters.FabricTypes) > 0 && !contains(filters.FabricTypes, p.Fabric) {
			continue
		}
		if len(filters.Sizes) > 0 && !hasAvailableSize(p, filters.Sizes) {
			continue
		}
		if len(filters.Colors) > 0 && !hasColor(p, filters.Colors) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, filters.SortBy)
	return filtered
}

// selectScope resolves the route slug to a product subset. When the slug
// matches nothing the full dataset is returned instead of an empty listing;
// the filters applied afterwards can still reduce it to zero.
func selectScope(products []Product, slug string) []Product {
	var result []Product

	switch slug {
	case "new-arrivals":
		for _, p := range products {
			if p.IsNew {
				result = append(result, p)
			}
		}
	case "sale":
		for _, p := range products {
			if p.IsSale || p.OriginalPrice > 0 {
				result = append(result, p)
			}
		}
	default:
		needle := strings.ReplaceAll(slug, "-", " ")
		for _, p := range products {
			if p.CategorySlug == slug ||
				(p.Collection != "" && strings.Contains(strings.ToLower(p.Collection), needle)) {
				result = append(result, p)
			}
		}
	}

	if len(result) == 0 {
		result = products
	}
	return result
}

func sortProducts(products []Product, sortBy SortOption) {
	switch sortBy {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		// rank by the IsNew flag only; ties keep their prior order
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortBestSelling:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	default:
		// featured: keep the filtered order
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func hasAvailableSize(p Product, accepted []string) bool {
	for _, s := range p.Sizes {
		if s.Available && contains(accepted, s.Name) {
			return true
		}
	}
	return false
}

// Color availability is not tracked in the data model, so unlike sizes the
// color filter matches on name alone.
func hasColor(p Product, accepted []string) bool {
	for _, c := range p.Colors {
		if contains(accepted, c.Name) {
			return true
		}
	}
	return false
}
