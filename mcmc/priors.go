// SPDX-License-Identifier: MIT
// Package: mcmc

package mcmc

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxRho keeps Σ_ρ numerically positive definite for prior draws near 1.
const maxRho = 1 - 1e-6

// Priors are the scalar priors of the model.
type Priors struct {
	Rho   distuv.Beta    // Beta(1, RhoPrior)
	Noise distuv.Beta    // Beta(1, NoiseBetaPrior)
	Theta distuv.Uniform // Uniform(0, MallowUA)
}

// NewPriors builds the priors of cfg drawing from src.
func NewPriors(cfg Config, src rand.Source) Priors {
	p := Priors{
		Rho: distuv.Beta{Alpha: 1, Beta: cfg.RhoPrior, Src: src},
	}
	if cfg.NoiseBetaPrior > 0 {
		p.Noise = distuv.Beta{Alpha: 1, Beta: cfg.NoiseBetaPrior, Src: src}
	}
	if cfg.MallowUA > 0 {
		p.Theta = distuv.Uniform{Min: 0, Max: cfg.MallowUA, Src: src}
	}

	return p
}

// RhoLogProb is the rho prior log-density; -Inf outside [0,1).
func (p Priors) RhoLogProb(rho float64) float64 {
	if !(rho >= 0 && rho < 1) {
		return negInf
	}

	return p.Rho.LogProb(rho)
}

// NoiseLogProb is the queue-jump prior log-density; -Inf outside [0,1].
func (p Priors) NoiseLogProb(prob float64) float64 {
	if !(prob >= 0 && prob <= 1) {
		return negInf
	}

	return p.Noise.LogProb(prob)
}

// ThetaLogProb is the Mallows prior log-density; -Inf outside (0, MallowUA).
func (p Priors) ThetaLogProb(theta float64) float64 {
	if !(theta > 0 && theta < p.Theta.Max) {
		return negInf
	}

	return p.Theta.LogProb(theta)
}

// drawRho samples an initial rho clipped below maxRho.
func (p Priors) drawRho() float64 {
	return min(p.Rho.Rand(), maxRho)
}
