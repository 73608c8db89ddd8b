package mcmc_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/porder/mcmc"
)

func TestAcceptanceRatio_NonNegative(t *testing.T) {
	t.Parallel()

	special := []float64{0, 1, -1, 700, -700, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, a := range special {
		for _, b := range special {
			r := mcmc.AcceptanceRatio(a, b, -a)
			assert.GreaterOrEqual(t, r, 0.0, "ratio(%v,%v)", a, b)
			p := mcmc.AcceptProbability(r)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}

	rng := rand.New(rand.NewPCG(5, 6))
	for k := 0; k < 1000; k++ {
		r := mcmc.AcceptanceRatio(rng.NormFloat64()*5, rng.NormFloat64()*5, rng.NormFloat64())
		assert.GreaterOrEqual(t, r, 0.0)
		p := mcmc.AcceptProbability(r)
		assert.True(t, p >= 0 && p <= 1)
	}
}

func TestAcceptanceRatio_Values(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Exp(-1.5), mcmc.AcceptanceRatio(-1, -1, 0.5), 1e-12)
	assert.Equal(t, 0.0, mcmc.AcceptanceRatio(math.Inf(1), math.Inf(-1), 0))
	assert.Equal(t, 0.0, mcmc.AcceptanceRatio(math.Inf(-1), 0, 0))
	assert.True(t, math.IsInf(mcmc.AcceptanceRatio(math.Inf(1), 0, 0), 1))

	assert.Equal(t, 1.0, mcmc.AcceptProbability(math.Inf(1)))
	assert.Equal(t, 1.0, mcmc.AcceptProbability(3))
	assert.Equal(t, 0.25, mcmc.AcceptProbability(0.25))
	assert.Equal(t, 0.0, mcmc.AcceptProbability(math.NaN()))
	assert.Equal(t, 0.0, mcmc.AcceptProbability(-1))
}
