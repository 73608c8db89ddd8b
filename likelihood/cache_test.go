package likelihood_test

import (
	"math"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/likelihood"
	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

func chain(t testing.TB, n int, seq ...int) *order.Relation {
	t.Helper()
	r := order.New(n)
	for k := 1; k < len(seq); k++ {
		require.NoError(t, r.Add(seq[k-1], seq[k]))
	}

	return order.Closure(r)
}

func fixture(t testing.TB) []*observation.Observation {
	t.Helper()
	a, err := observation.NewTotal(0, []int{0, 1})
	require.NoError(t, err)
	b, err := observation.NewTotal(1, []int{2, 3})
	require.NoError(t, err)
	c, err := observation.NewPartial(2, [][]int{{1}, {2, 3}})
	require.NoError(t, err)

	return []*observation.Observation{a, b, c}
}

func direct(t testing.TB, m noise.Model, h *order.Relation, obs []*observation.Observation, p noise.Params) float64 {
	t.Helper()
	var total float64
	for _, o := range obs {
		v, err := m.LogLikelihood(h, o, p)
		require.NoError(t, err)
		total += v
	}

	return total
}

func TestCache_TotalAndContribution(t *testing.T) {
	t.Parallel()

	m := noise.NewQueueJump(noise.WithMemoSize(0))
	obs := fixture(t)
	h := chain(t, 4, 0, 1, 2, 3)
	p := noise.Params{ProbNoise: 0.2}

	c, err := likelihood.New(m, obs, h, p)
	require.NoError(t, err)
	assert.InDelta(t, direct(t, m, h, obs, p), c.Total(), 1e-12)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Evaluations())

	v, err := c.Contribution(1)
	require.NoError(t, err)
	want, err := m.LogLikelihood(h, obs[1], p)
	require.NoError(t, err)
	assert.Equal(t, want, v)

	_, err = c.Contribution(9)
	assert.ErrorIs(t, err, likelihood.ErrUnknownObservation)
}

func TestCache_RecomputeAffectedOnlyTouched(t *testing.T) {
	t.Parallel()

	m := noise.NewQueueJump(noise.WithMemoSize(0))
	obs := fixture(t)
	p := noise.Params{ProbNoise: 0.2}
	h := chain(t, 4, 0, 1, 2, 3)
	c, err := likelihood.New(m, obs, h, p)
	require.NoError(t, err)

	// Swap 0 and 1 only: observation 0 is the only one mentioning item 0.
	newH := chain(t, 4, 1, 0, 2, 3)
	changed, err := order.ChangedItems(h, newH)
	require.NoError(t, err)
	assert.True(t, changed.Test(0))

	before := c.Evaluations()
	prop, err := c.RecomputeAffected(newH, bitset.New(4).Set(0))
	require.NoError(t, err)
	assert.Equal(t, 1, prop.Recomputed())
	assert.Equal(t, before+1, c.Evaluations())
	assert.InDelta(t, direct(t, m, newH, obs, p), prop.Total(), 1e-12)
	assert.InDelta(t, prop.Total()-c.Total(), prop.Delta(), 1e-12)

	empty, err := c.RecomputeAffected(newH, bitset.New(4))
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Delta())
	assert.Equal(t, 0, empty.Recomputed())
}

// An uncommitted proposal leaves the cache exactly as it was.
func TestCache_RejectLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	m := noise.NewMallows()
	obs := fixture(t)
	p := noise.Params{Theta: 1.2}
	h := chain(t, 4, 0, 1, 2, 3)
	c, err := likelihood.New(m, obs, h, p)
	require.NoError(t, err)

	total := c.Total()
	values := make([]float64, 3)
	for id := range values {
		values[id], _ = c.Contribution(id)
	}

	_, err = c.RecomputeAll(chain(t, 4, 3, 2, 1, 0), noise.Params{Theta: 0.1})
	require.NoError(t, err)

	assert.Equal(t, total, c.Total())
	assert.Same(t, h, c.Relation())
	assert.Equal(t, p, c.Params())
	assert.Equal(t, uint64(0), c.Generation())
	for id, want := range values {
		got, _ := c.Contribution(id)
		assert.Equal(t, want, got)
	}
}

func TestCache_CommitAndStale(t *testing.T) {
	t.Parallel()

	m := noise.NewQueueJump()
	obs := fixture(t)
	c, err := likelihood.New(m, obs, chain(t, 4, 0, 1, 2, 3), noise.Params{ProbNoise: 0.2})
	require.NoError(t, err)

	newH := chain(t, 4, 3, 2, 1, 0)
	newP := noise.Params{ProbNoise: 0.5}
	a, err := c.RecomputeAll(newH, newP)
	require.NoError(t, err)
	b, err := c.RecomputeAll(newH, newP)
	require.NoError(t, err)

	require.NoError(t, c.Commit(a))
	assert.Equal(t, a.Total(), c.Total())
	assert.Same(t, newH, c.Relation())
	assert.Equal(t, newP, c.Params())
	assert.Equal(t, uint64(1), c.Generation())

	assert.ErrorIs(t, c.Commit(b), likelihood.ErrStaleProposal)

	other, err := likelihood.New(m, obs, newH, newP)
	require.NoError(t, err)
	foreign, err := other.RecomputeAll(newH, newP)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Commit(foreign), likelihood.ErrForeignProposal)
}

func TestCache_ImpossibleTotals(t *testing.T) {
	t.Parallel()

	m := noise.NewQueueJump()
	obs := fixture(t)
	wrong := chain(t, 4, 1, 0, 3, 2)
	c, err := likelihood.New(m, obs, wrong, noise.Params{ProbNoise: 0})
	require.NoError(t, err)
	require.True(t, math.IsInf(c.Total(), -1))

	same, err := c.RecomputeAll(chain(t, 4, 3, 2, 1, 0), noise.Params{ProbNoise: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, same.Delta())

	fixed, err := c.RecomputeAll(chain(t, 4, 0, 1, 2, 3), noise.Params{ProbNoise: 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(fixed.Delta(), 1))
}
