package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/order"
)

func TestDominance_OneDimensionIsTotal(t *testing.T) {
	t.Parallel()

	eta := mat.NewDense(3, 1, []float64{0.5, 2, -1})
	r := order.Dominance(eta)
	assert.Equal(t, "0<2 1<0 1<2", r.String())
	assert.NoError(t, r.Validate())
	assert.True(t, order.IsTransitive(r))
}

func TestDominance_TwoDimensionsLeavesIncomparable(t *testing.T) {
	t.Parallel()

	eta := mat.NewDense(3, 2, []float64{
		2, 2,
		1, 3,
		0, 0,
	})
	r := order.Dominance(eta)
	assert.Equal(t, "0<2 1<2", r.String())
	assert.False(t, r.Comparable(0, 1))
}

func TestDominance_TiesAreIncomparable(t *testing.T) {
	t.Parallel()

	r := order.Dominance(mat.NewDense(2, 1, []float64{1, 1}))
	assert.Equal(t, 0, r.EdgeCount())
}

// Pulling a dominating row further up never removes a relation.
func TestDominance_MonotoneInSeparation(t *testing.T) {
	t.Parallel()

	eta := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 2,
		0, 0,
	})
	before := order.Dominance(eta)
	eta.Set(0, 0, 5)
	eta.Set(0, 1, 5)
	after := order.Dominance(eta)
	for _, e := range before.Edges() {
		if e.From == 0 {
			assert.True(t, after.Has(e.From, e.To))
		}
	}
	assert.True(t, after.Has(0, 1))
}
