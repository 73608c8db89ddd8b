package summary_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/summary"
	"github.com/katalvlaran/porder/trace"
)

// chainDense returns the closed total order seq[0] < seq[1] < ... as a Dense.
func chainDense(t testing.TB, n int, seq ...int) *matrix.Dense {
	t.Helper()
	r := order.New(n)
	for k := 1; k < len(seq); k++ {
		require.NoError(t, r.Add(seq[k-1], seq[k]))
	}

	return order.Closure(r).Dense()
}

func buildTrace(t testing.TB, hs ...*matrix.Dense) *trace.Trace {
	t.Helper()
	tr := trace.New(1)
	for k, h := range hs {
		require.NoError(t, tr.Append(trace.Sample{
			Z:   mat.NewDense(h.Rows(), 1, nil),
			H:   h,
			Rho: float64(k) / 10, ProbNoise: 0.1, Theta: 1, LogLik: -float64(k),
		}))
	}

	return tr
}

func TestSummarize_StableChain(t *testing.T) {
	t.Parallel()

	h := chainDense(t, 3, 0, 1, 2)
	res, err := summary.Summarize(buildTrace(t, h, h, h, h), 1)
	require.NoError(t, err)
	assert.Equal(t, "0<1 1<2", res.H.String())
	assert.False(t, res.H.Has(0, 2), "reduced")
	assert.Equal(t, h.RawRows(), res.Mean.RawRows())
	assert.Equal(t, 1, res.From)
	assert.Equal(t, 4, res.To)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, 0.3, res.Rho)
	assert.Equal(t, -3.0, res.LogLik)
	assert.Equal(t, 0.1, res.ProbNoise)
	assert.Equal(t, 1.0, res.Theta)
	assert.NotNil(t, res.Z)
}

func TestSummarize_DropsBurnIn(t *testing.T) {
	t.Parallel()

	rev := chainDense(t, 3, 2, 1, 0)
	fwd := chainDense(t, 3, 0, 1, 2)
	res, err := summary.Summarize(buildTrace(t, rev, rev, rev, fwd, fwd), 3)
	require.NoError(t, err)
	assert.Equal(t, "0<1 1<2", res.H.String())
}

func TestSummarize_Majority(t *testing.T) {
	t.Parallel()

	a := chainDense(t, 3, 0, 1)
	b := chainDense(t, 3, 1, 2)
	none := chainDense(t, 3)

	// 0<1 in 2 of 4 samples (kept at exactly 0.5), 1<2 in 1 of 4.
	res, err := summary.Summarize(buildTrace(t, a, a, b, none), 0)
	require.NoError(t, err)
	assert.Equal(t, "0<1", res.H.String())
	assert.Equal(t, 0.5, res.Mean.RawRows()[0][1])

	strict, err := summary.Summarize(buildTrace(t, a, a, b, none), 0, summary.WithThreshold(0.6))
	require.NoError(t, err)
	assert.Equal(t, 0, strict.H.EdgeCount())
}

func TestSummarize_BurnInBeyondTrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rev := chainDense(t, 2, 1, 0)
	fwd := chainDense(t, 2, 0, 1)
	res, err := summary.Summarize(buildTrace(t, rev, rev, fwd, fwd), 10,
		summary.WithFallbackWindow(2), summary.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, res.From)
	assert.Equal(t, "0<1", res.H.String())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, buf.String(), "burn-in exceeds trace length")

	// Default window covers short traces entirely.
	all, err := summary.Summarize(buildTrace(t, rev, fwd, fwd), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, all.From)
	assert.Len(t, all.Warnings, 1)
}

func TestSummarize_NaNFallsBackToLastCompleteSample(t *testing.T) {
	t.Parallel()

	withNaN := func() *matrix.Dense {
		d, err := matrix.NewPreparedDense(2, 2, matrix.WithAllowNaN())
		require.NoError(t, err)
		require.NoError(t, d.Set(0, 1, math.NaN()))

		return d
	}
	complete := chainDense(t, 2, 0, 1)
	res, err := summary.Summarize(buildTrace(t, complete, withNaN(), withNaN()), 1)
	require.NoError(t, err)
	assert.Equal(t, "0<1", res.H.String())
	assert.Nil(t, res.Mean)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "missing cells")

	_, err = summary.Summarize(buildTrace(t, withNaN()), 0)
	assert.ErrorIs(t, err, summary.ErrNoValidSample)
}

// Three rotations of a 3-cycle give every pair a 2/3 majority.
func TestSummarize_CyclicMajorityFallsBack(t *testing.T) {
	t.Parallel()

	tr := buildTrace(t,
		chainDense(t, 3, 0, 1, 2),
		chainDense(t, 3, 1, 2, 0),
		chainDense(t, 3, 2, 0, 1),
	)
	res, err := summary.Summarize(tr, 0)
	require.NoError(t, err)
	assert.Equal(t, "0<1 2<0", res.H.String())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "cyclic")
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	_, err := summary.Summarize(nil, 0)
	assert.ErrorIs(t, err, summary.ErrEmptyTrace)
	_, err = summary.Summarize(trace.New(1), 0)
	assert.ErrorIs(t, err, summary.ErrEmptyTrace)
	_, err = summary.DescribeTrace(trace.New(1), 0)
	assert.ErrorIs(t, err, summary.ErrEmptyTrace)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	d, err := summary.Describe([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, d.N)
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, 2.5, d.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), d.StdDev, 1e-12)
	assert.Equal(t, 1.0, d.Q05)
	assert.InDelta(t, 3.5, d.Q95, 1e-12)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)

	_, err = summary.Describe(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

func TestDescribeTrace(t *testing.T) {
	t.Parallel()

	h := chainDense(t, 2, 0, 1)
	got, err := summary.DescribeTrace(buildTrace(t, h, h, h), 1)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.InDelta(t, 0.15, got["rho"].Mean, 1e-12)
	assert.Equal(t, 2, got["log_likelihood"].N)
	assert.InDelta(t, -1.5, got["log_likelihood"].Mean, 1e-12)
}
