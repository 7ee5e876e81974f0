package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
)

var (
	kurta = catalog.Product{ID: "p1", Name: "Zainab Kurta", Price: 4500}
	maxi  = catalog.Product{ID: "p2", Name: "Noor Maxi", Price: 18500}
)

func TestReduce_AddDuplicateIsNoop(t *testing.T) {
	state := reduce(State{}, action{typ: actionAddItem, product: kurta})
	state = reduce(state, action{typ: actionAddItem, product: kurta})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p1", state.Items[0].ID)
}

func TestReduce_KeepsInsertionOrder(t *testing.T) {
	state := reduce(State{}, action{typ: actionAddItem, product: maxi})
	state = reduce(state, action{typ: actionAddItem, product: kurta})

	require.Len(t, state.Items, 2)
	assert.Equal(t, "p2", state.Items[0].ID)
	assert.Equal(t, "p1", state.Items[1].ID)
}

func TestReduce_RemoveAbsentIsNoop(t *testing.T) {
	state := reduce(State{}, action{typ: actionAddItem, product: kurta})
	state = reduce(state, action{typ: actionRemoveItem, productID: "missing"})

	assert.Len(t, state.Items, 1)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := State{Items: []catalog.Product{kurta}}
	after := reduce(before, action{typ: actionRemoveItem, productID: "p1"})

	assert.Len(t, before.Items, 1)
	assert.Empty(t, after.Items)
}

func TestReduce_HydrateReplacesState(t *testing.T) {
	state := reduce(State{}, action{typ: actionAddItem, product: kurta})
	state = reduce(state, action{typ: actionHydrate, items: []catalog.Product{maxi}})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p2", state.Items[0].ID)
}
