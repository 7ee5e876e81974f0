package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
)

var (
	testProduct = catalog.Product{
		ID: "p1", Name: "Zainab Kurta", Price: 4500,
		Colors: []catalog.ProductColor{{Name: "Ivory", Hex: "#F8F4E9"}},
		Sizes:  []catalog.ProductSize{{Name: "M", Available: true}},
	}
	ivory = catalog.ProductColor{Name: "Ivory", Hex: "#F8F4E9"}
	rust  = catalog.ProductColor{Name: "Rust", Hex: "#B7410E"}
)

func addAction(p catalog.Product, qty int, color catalog.ProductColor, size string) action {
	return action{typ: actionAddItem, item: LineItem{
		Product: p, Quantity: qty, SelectedColor: color, SelectedSize: size,
	}}
}

func TestReduce_AddItemMergesOnCompositeKey(t *testing.T) {
	state := State{Items: []LineItem{}}

	state = reduce(state, addAction(testProduct, 2, ivory, "M"))
	state = reduce(state, addAction(testProduct, 3, ivory, "M"))

	assert.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestReduce_AddItemDifferentVariantsStayDistinct(t *testing.T) {
	state := State{Items: []LineItem{}}

	state = reduce(state, addAction(testProduct, 1, ivory, "M"))
	state = reduce(state, addAction(testProduct, 1, rust, "M"))
	state = reduce(state, addAction(testProduct, 1, ivory, "L"))

	// same product, but color or size differs: three line items, in
	// insertion order
	assert.Len(t, state.Items, 3)
	assert.Equal(t, "Ivory", state.Items[0].SelectedColor.Name)
	assert.Equal(t, "Rust", state.Items[1].SelectedColor.Name)
	assert.Equal(t, "L", state.Items[2].SelectedSize)
}

func TestReduce_UpdateQuantitySetsExactValue(t *testing.T) {
	state := State{Items: []LineItem{}}
	state = reduce(state, addAction(testProduct, 2, ivory, "M"))

	state = reduce(state, action{
		typ: actionUpdateQuantity, productID: "p1", colorName: "Ivory", size: "M", quantity: 7,
	})

	assert.Equal(t, 7, state.Items[0].Quantity)
}

func TestReduce_UpdateQuantityBelowOneRemoves(t *testing.T) {
	state := State{Items: []LineItem{}}
	state = reduce(state, addAction(testProduct, 2, ivory, "M"))

	update := action{typ: actionUpdateQuantity, productID: "p1", colorName: "Ivory", size: "M", quantity: 0}
	state = reduce(state, update)
	assert.Empty(t, state.Items)

	// applying it again is a no-op, not an error
	state = reduce(state, update)
	assert.Empty(t, state.Items)
}

func TestReduce_RemoveAbsentKeyIsNoop(t *testing.T) {
	state := State{Items: []LineItem{}}
	state = reduce(state, addAction(testProduct, 2, ivory, "M"))

	state = reduce(state, action{
		typ: actionRemoveItem, productID: "p1", colorName: "Rust", size: "M",
	})

	assert.Len(t, state.Items, 1)
}

func TestReduce_ClearKeepsDrawerState(t *testing.T) {
	state := State{Items: []LineItem{}, IsOpen: true}
	state = reduce(state, addAction(testProduct, 2, ivory, "M"))

	state = reduce(state, action{typ: actionClear})

	assert.Empty(t, state.Items)
	assert.True(t, state.IsOpen)
}

func TestReduce_ToggleAndSetOpenLeaveItemsAlone(t *testing.T) {
	state := State{Items: []LineItem{}}
	state = reduce(state, addAction(testProduct, 1, ivory, "M"))

	state = reduce(state, action{typ: actionToggle})
	assert.True(t, state.IsOpen)
	assert.Len(t, state.Items, 1)

	state = reduce(state, action{typ: actionSetOpen, open: false})
	assert.False(t, state.IsOpen)
	assert.Len(t, state.Items, 1)
}

func TestReduce_IsPure(t *testing.T) {
	original := State{Items: []LineItem{{
		Product: testProduct, Quantity: 2, SelectedColor: ivory, SelectedSize: "M",
	}}}

	_ = reduce(original, addAction(testProduct, 5, ivory, "M"))

	assert.Equal(t, 2, original.Items[0].Quantity)
}

func TestDerivedTotals(t *testing.T) {
	state := State{Items: []LineItem{}}

	assert.Equal(t, 0, totalItems(state.Items))
	assert.Equal(t, 0, subtotal(state.Items))

	state = reduce(state, addAction(testProduct, 2, ivory, "M"))
	other := testProduct
	other.ID, other.Price = "p2", 1000
	state = reduce(state, addAction(other, 3, ivory, "M"))

	assert.Equal(t, 5, totalItems(state.Items))
	assert.Equal(t, 2*4500+3*1000, subtotal(state.Items))

	// totals hold after a no-op removal too
	state = reduce(state, action{typ: actionRemoveItem, productID: "nope", colorName: "Ivory", size: "M"})
	assert.Equal(t, 5, totalItems(state.Items))
	assert.Equal(t, 2*4500+3*1000, subtotal(state.Items))
}
