// SPDX-License-Identifier: MIT
// Package: mcmc
//
// One iteration: draw a move, build a candidate, score it, accept or drop.
// Candidates never alias the committed state: Z is copied before a row is
// replaced and h is always freshly derived.

package mcmc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/porder/latent"
	"github.com/katalvlaran/porder/likelihood"
	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/order"
)

// candidate is a proposed state with its Metropolis-Hastings terms.
type candidate struct {
	state State
	prior *latent.Prior // set when rho changed
	prop  *likelihood.Proposal
	dLP   float64
	logQ  float64
}

func (s *Sampler) step() error {
	move := Move(s.moves.Rand())
	stats := s.stats.of(move)
	stats.Proposed++

	var (
		c   *candidate
		err error
	)
	switch move {
	case MoveRho:
		c, err = s.proposeRho()
	case MoveNoise:
		c, err = s.proposeNoise()
	default:
		c, err = s.proposeLatent()
	}
	if err != nil {
		return fmt.Errorf("%s move: %w", move, err)
	}
	if c == nil { // proposal outside the support
		return nil
	}

	ratio := AcceptanceRatio(c.prop.Delta(), c.dLP, c.logQ)
	if s.rng.Float64() >= AcceptProbability(ratio) {
		return nil
	}
	if err = s.cache.Commit(c.prop); err != nil {
		return fmt.Errorf("%s move: %w", move, err)
	}
	c.state.LogLik = s.cache.Total()
	s.state = c.state
	if c.prior != nil {
		s.prior = c.prior
	}
	stats.Accepted++

	return nil
}

// proposeRho: reflected uniform walk on [0,1); symmetric, logQ = 0.
// ΔLP covers the Beta prior and the change of every row density.
func (s *Sampler) proposeRho() (*candidate, error) {
	cur := s.state
	rho := reflect01(cur.Rho + s.cfg.DR*(2*s.rng.Float64()-1))
	if !(rho >= 0 && rho < 1) {
		return nil, nil
	}
	prior, err := latent.NewPrior(s.cfg.K, rho, s.src)
	if err != nil {
		return nil, nil // numerically singular Σ_ρ: treated as zero density
	}
	oldZ, err := s.prior.LogDensity(cur.Z)
	if err != nil {
		return nil, err
	}
	newZ, err := prior.LogDensity(cur.Z)
	if err != nil {
		return nil, err
	}

	next := cur
	next.Rho = rho
	next.H = s.latent.DeriveOrder(cur.Z, rho)
	prop, err := s.proposeRelation(cur.H, &next)
	if err != nil {
		return nil, err
	}

	return &candidate{
		state: next,
		prior: prior,
		prop:  prop,
		dLP:   s.priors.RhoLogProb(rho) - s.priors.RhoLogProb(cur.Rho) + newZ - oldZ,
	}, nil
}

// proposeNoise updates the active noise parameter with h fixed.
func (s *Sampler) proposeNoise() (*candidate, error) {
	cur := s.state
	next := cur
	var dLP, logQ float64

	switch s.cfg.NoiseKind {
	case noise.KindQueueJump:
		// Independence proposal from the prior: dLP and logQ cancel.
		p := s.priors.Noise.Rand()
		next.Params.ProbNoise = p
		dLP = s.priors.NoiseLogProb(p) - s.priors.NoiseLogProb(cur.Params.ProbNoise)
		logQ = s.priors.Noise.LogProb(cur.Params.ProbNoise) - s.priors.Noise.LogProb(p)
	case noise.KindMallows:
		step := distuv.Normal{Mu: 0, Sigma: s.cfg.SigmaMallow, Src: s.src}
		th := math.Abs(cur.Params.Theta + step.Rand())
		if !(th > 0 && th < s.cfg.MallowUA) {
			return nil, nil
		}
		next.Params.Theta = th
		dLP = s.priors.ThetaLogProb(th) - s.priors.ThetaLogProb(cur.Params.Theta)
	}
	if math.IsInf(dLP, -1) || math.IsNaN(dLP+logQ) {
		return nil, nil
	}

	prop, err := s.cache.RecomputeAll(cur.H, next.Params)
	if err != nil {
		return nil, err
	}

	return &candidate{state: next, prop: prop, dLP: dLP, logQ: logQ}, nil
}

// proposeLatent redraws row i of Z from N_K(0, Σ_ρ). The prior proposal makes
// dLP and logQ cancel; both are kept explicit.
func (s *Sampler) proposeLatent() (*candidate, error) {
	cur := s.state
	i := s.rng.IntN(s.n)

	oldRow := mat.Row(nil, i, cur.Z)
	newRow := s.prior.SampleRow()
	z := mat.DenseCopyOf(cur.Z)
	z.SetRow(i, newRow)

	next := cur
	next.Z = z
	next.H = s.latent.DeriveOrder(z, cur.Rho)
	prop, err := s.proposeRelation(cur.H, &next)
	if err != nil {
		return nil, err
	}
	lpNew, lpOld := s.prior.RowLogDensity(newRow), s.prior.RowLogDensity(oldRow)

	return &candidate{state: next, prop: prop, dLP: lpNew - lpOld, logQ: lpOld - lpNew}, nil
}

// proposeRelation scores next.H against the committed h, re-evaluating only
// observations that touch the changed items, and shares the published
// matrix when nothing changed.
func (s *Sampler) proposeRelation(cur *order.Relation, next *State) (*likelihood.Proposal, error) {
	changed, err := order.ChangedItems(cur, next.H)
	if err != nil {
		return nil, err
	}
	if changed.Any() {
		next.HDense = next.H.Dense()
	} else {
		next.H, next.HDense = cur, s.state.HDense
	}

	return s.cache.RecomputeAffected(next.H, changed)
}

// reflect01 folds x into [0,1] by reflection at both ends.
func reflect01(x float64) float64 {
	for x < 0 || x > 1 {
		if x < 0 {
			x = -x
		}
		if x > 1 {
			x = 2 - x
		}
	}

	return x
}
