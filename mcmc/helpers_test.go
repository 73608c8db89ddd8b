package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/mcmc"
	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/observation"
)

func ptr(v float64) *float64 { return &v }

// baseConfig is the small queue-jump configuration used across tests.
func baseConfig() mcmc.Config {
	return mcmc.Config{
		Iterations:     500,
		K:              1,
		Thinning:       1,
		Updates:        mcmc.UpdateProbabilities{Rho: 0.2, Noise: 0.4, U: 0.4},
		DR:             0.1,
		NoiseKind:      noise.KindQueueJump,
		SigmaMallow:    0.1,
		RhoPrior:       0.1667,
		NoiseBetaPrior: 9,
		MallowUA:       10,
	}
}

func totals(t testing.TB, rankings ...[]int) []*observation.Observation {
	t.Helper()
	out := make([]*observation.Observation, len(rankings))
	for k, r := range rankings {
		o, err := observation.NewTotal(k, r)
		require.NoError(t, err)
		out[k] = o
	}

	return out
}
