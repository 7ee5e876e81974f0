package cart

import "github.com/HamzaQasim7/inshacollections/internal/catalog"

// LineItem is one cart entry, uniquely identified by product id + chosen
// color name + chosen size. The json shape is the persisted layout.
type LineItem struct {
	Product       catalog.Product      `json:"product"`
	Quantity      int                  `json:"quantity"`
	SelectedColor catalog.ProductColor `json:"selectedColor"`
	SelectedSize  string               `json:"selectedSize"`
}

func (li LineItem) matches(productID, colorName, size string) bool {
	return li.Product.ID == productID &&
		li.SelectedColor.Name == colorName &&
		li.SelectedSize == size
}

// State holds the ordered line items (insertion order is display order)
// and the drawer visibility flag. IsOpen is UI-only and never persisted.
type State struct {
	Items  []LineItem
	IsOpen bool
}

type actionType int

const (
	actionAddItem actionType = iota
	actionRemoveItem
	actionUpdateQuantity
	actionClear
	actionToggle
	actionSetOpen
	actionHydrate
)

type action struct {
	typ actionType

	item LineItem // addItem

	productID string // removeItem, updateQuantity
	colorName string
	size      string
	quantity  int // updateQuantity

	open  bool       // setOpen
	items []LineItem // hydrate
}

// reduce is the pure transition function. It never mutates its input:
// callers keep the previous state, which makes the transitions trivially
// unit-testable and the persistence side effect someone else's job.
func reduce(state State, a action) State {
	switch a.typ {
	case actionAddItem:
		for i, it := range state.Items {
			if it.matches(a.item.Product.ID, a.item.SelectedColor.Name, a.item.SelectedSize) {
				items := copyItems(state.Items)
				items[i].Quantity += a.item.Quantity
				return State{Items: items, IsOpen: state.IsOpen}
			}
		}
		items := copyItems(state.Items)
		return State{Items: append(items, a.item), IsOpen: state.IsOpen}

	case actionRemoveItem:
		return State{Items: removeMatch(state.Items, a), IsOpen: state.IsOpen}

	case actionUpdateQuantity:
		if a.quantity < 1 {
			return State{Items: removeMatch(state.Items, a), IsOpen: state.IsOpen}
		}
		items := copyItems(state.Items)
		for i, it := range items {
			if it.matches(a.productID, a.colorName, a.size) {
				items[i].Quantity = a.quantity
			}
		}
		return State{Items: items, IsOpen: state.IsOpen}

	case actionClear:
		return State{Items: []LineItem{}, IsOpen: state.IsOpen}

	case actionToggle:
		return State{Items: state.Items, IsOpen: !state.IsOpen}

	case actionSetOpen:
		return State{Items: state.Items, IsOpen: a.open}

	case actionHydrate:
		return State{Items: a.items, IsOpen: state.IsOpen}

	default:
		return state
	}
}

func copyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

func removeMatch(items []LineItem, a action) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.matches(a.productID, a.colorName, a.size) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func totalItems(items []LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

func subtotal(items []LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Product.Price * it.Quantity
	}
	return total
}
