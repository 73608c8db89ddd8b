package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/matrix"
)

func TestNaNMean_Basic(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 1}, {0, 0}})
	b := MustRows(t, [][]float64{{0, 1}, {1, 0}})
	c := MustRows(t, [][]float64{{0, 0}, {1, 0}})

	mean, err := matrix.NaNMean([]matrix.Matrix{a, b, hide{c}})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, MustAt(t, mean, 0, 1), 1e-12)
	assert.InDelta(t, 2.0/3.0, MustAt(t, mean, 1, 0), 1e-12)
	assert.Equal(t, 0.0, MustAt(t, mean, 0, 0))
}

func TestNaNMean_SkipsMissing(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := MustRows(t, [][]float64{{nan, 1}}, matrix.WithAllowNaN())
	b := MustRows(t, [][]float64{{nan, 0}}, matrix.WithAllowNaN())

	mean, err := matrix.NaNMean([]matrix.Matrix{a, b})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, mean, 0, 0)), "all-missing cell stays NaN")
	assert.Equal(t, 0.5, MustAt(t, mean, 0, 1))

	has, err := matrix.HasNaN(mean)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestNaNMean_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NaNMean(nil)
	AssertErrorIs(t, err, matrix.ErrNoSamples)
	_, err = matrix.NaNMean([]matrix.Matrix{MustDense(t, 2, 2), MustDense(t, 2, 3)})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NaNMean([]matrix.Matrix{MustDense(t, 2, 2), nil})
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{0, 0.5}, {0.49, math.NaN()}}, matrix.WithAllowNaN())
	out, err := matrix.Threshold(m, matrix.DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {0, 0}}, out.RawRows())
}
