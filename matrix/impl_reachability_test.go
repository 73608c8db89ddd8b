package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/matrix"
)

func TestReachability_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Reachability(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Reachability(MustDense(t, 3, 4))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

// Chain 0→1→2→3 closes to the strict upper triangle.
func TestReachability_Chain(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	R, err := matrix.Reachability(A)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 1, 1, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}, R.RawRows())

	// Input untouched.
	assert.Equal(t, 0.0, MustAt(t, A, 0, 2))
}

// A 2-cycle marks both diagonal cells.
func TestReachability_CycleMarksDiagonal(t *testing.T) {
	t.Parallel()

	R, err := matrix.Reachability(MustRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, 1}}, R.RawRows())
}

// The interface fallback must match the Dense fast path cell-for-cell.
func TestReachability_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]float64{
		{0, 2, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
	})
	fast, err := matrix.Reachability(A)
	require.NoError(t, err)
	slow, err := matrix.Reachability(hide{A})
	require.NoError(t, err)
	assert.Equal(t, fast.RawRows(), slow.RawRows())
	assert.Equal(t, 1.0, MustAt(t, fast, 0, 4))
}
