// SPDX-License-Identifier: MIT
// Package: mcmc

package mcmc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/porder/noise"
)

// UpdateProbabilities are the move weights; they need not sum to one.
type UpdateProbabilities struct {
	Rho   float64
	Noise float64
	U     float64
}

// Config is the immutable sampler configuration.
type Config struct {
	Iterations int
	K          int
	Thinning   int

	Updates UpdateProbabilities

	// DR is the half-width of the rho random walk, in (0,1).
	DR float64
	// InitialRho seeds rho; nil draws it from the prior.
	InitialRho *float64

	NoiseKind   noise.Kind
	SigmaMallow float64 // Mallows θ random-walk scale
	// InitialProbNoise and InitialTheta seed the noise parameters; nil draws
	// them from their priors.
	InitialProbNoise *float64
	InitialTheta     *float64

	RhoPrior       float64 // rho ~ Beta(1, RhoPrior)
	NoiseBetaPrior float64 // p ~ Beta(1, NoiseBetaPrior)
	MallowUA       float64 // θ ~ Uniform(0, MallowUA)

	// Alpha is the per-item covariate shift (nil for none).
	Alpha []float64
}

// Validate checks every field against its domain.
//
// Errors:
//   - ErrInvalidConfig naming the offending field.
func (c Config) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("Config.Validate: %s=%v: %w", field, v, ErrInvalidConfig)
	}
	switch {
	case c.Iterations < 1:
		return bad("Iterations", c.Iterations)
	case c.K < 1:
		return bad("K", c.K)
	case c.Thinning < 1:
		return bad("Thinning", c.Thinning)
	case !nonNegative(c.Updates.Rho) || !nonNegative(c.Updates.Noise) || !nonNegative(c.Updates.U):
		return bad("Updates", c.Updates)
	case c.Updates.Rho+c.Updates.Noise+c.Updates.U <= 0:
		return bad("Updates", c.Updates)
	case !(c.DR > 0 && c.DR < 1):
		return bad("DR", c.DR)
	case !positive(c.RhoPrior):
		return bad("RhoPrior", c.RhoPrior)
	}
	if c.InitialRho != nil && !(*c.InitialRho >= 0 && *c.InitialRho < 1) {
		return bad("InitialRho", *c.InitialRho)
	}
	switch c.NoiseKind {
	case noise.KindQueueJump:
		if !positive(c.NoiseBetaPrior) {
			return bad("NoiseBetaPrior", c.NoiseBetaPrior)
		}
		if c.InitialProbNoise != nil && !(*c.InitialProbNoise >= 0 && *c.InitialProbNoise <= 1) {
			return bad("InitialProbNoise", *c.InitialProbNoise)
		}
	case noise.KindMallows:
		if !positive(c.SigmaMallow) {
			return bad("SigmaMallow", c.SigmaMallow)
		}
		if !positive(c.MallowUA) {
			return bad("MallowUA", c.MallowUA)
		}
		if c.InitialTheta != nil && !(*c.InitialTheta > 0 && *c.InitialTheta < c.MallowUA) {
			return bad("InitialTheta", *c.InitialTheta)
		}
	default:
		return bad("NoiseKind", c.NoiseKind)
	}

	return nil
}

func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }
