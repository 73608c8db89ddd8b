package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/order"
)

func TestChangedItems(t *testing.T) {
	t.Parallel()

	a := MustEdges(t, 5, [2]int{0, 1}, [2]int{2, 3})
	b := MustEdges(t, 5, [2]int{0, 1}, [2]int{3, 2})
	changed, err := order.ChangedItems(a, b)
	require.NoError(t, err)

	var got []int
	for i, ok := changed.NextSet(0); ok; i, ok = changed.NextSet(i + 1) {
		got = append(got, int(i))
	}
	assert.Equal(t, []int{2, 3}, got)

	same, err := order.ChangedItems(a, a.Clone())
	require.NoError(t, err)
	assert.False(t, same.Any())

	_, err = order.ChangedItems(a, order.New(4))
	assert.ErrorIs(t, err, order.ErrSizeMismatch)
}

func TestMissingRedundant(t *testing.T) {
	t.Parallel()

	truth := MustEdges(t, 4, [2]int{0, 1}, [2]int{1, 2})
	inferred := MustEdges(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{3, 2})

	missing, err := order.Missing(truth, inferred)
	require.NoError(t, err)
	assert.Equal(t, []order.Edge{{From: 1, To: 2}}, missing)

	redundant, err := order.Redundant(truth, inferred)
	require.NoError(t, err)
	assert.Equal(t, []order.Edge{{From: 3, To: 2}}, redundant)

	// Identical closures compare clean regardless of representation.
	none, err := order.Missing(truth, order.Closure(truth))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = order.Missing(truth, order.New(3))
	assert.ErrorIs(t, err, order.ErrSizeMismatch)
}
