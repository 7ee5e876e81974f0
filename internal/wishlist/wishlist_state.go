package wishlist

import "github.com/HamzaQasim7/inshacollections/internal/catalog"

// State is a set of saved products, unique by product id, kept in
// insertion order for display.
type State struct {
	Items []catalog.Product
}

type actionType int

const (
	actionAddItem actionType = iota
	actionRemoveItem
	actionClear
	actionHydrate
)

type action struct {
	typ       actionType
	product   catalog.Product   // addItem
	productID string            // removeItem
	items     []catalog.Product // hydrate
}

// reduce is the pure transition function; adding a product already in the
// set is a no-op, removing an absent one likewise.
func reduce(state State, a action) State {
	switch a.typ {
	case actionAddItem:
		if containsID(state.Items, a.product.ID) {
			return state
		}
		items := make([]catalog.Product, len(state.Items), len(state.Items)+1)
		copy(items, state.Items)
		return State{Items: append(items, a.product)}

	case actionRemoveItem:
		items := make([]catalog.Product, 0, len(state.Items))
		for _, p := range state.Items {
			if p.ID == a.productID {
				continue
			}
			items = append(items, p)
		}
		return State{Items: items}

	case actionClear:
		return State{Items: []catalog.Product{}}

	case actionHydrate:
		return State{Items: a.items}

	default:
		return state
	}
}

func containsID(items []catalog.Product, id string) bool {
	for _, p := range items {
		if p.ID == id {
			return true
		}
	}
	return false
}
