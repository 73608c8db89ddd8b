// SPDX-License-Identifier: MIT
// Package: mcmc

package mcmc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/order"
)

// Phase is the sampler lifecycle state.
type Phase int

const (
	// PhaseInit is a constructed sampler that has not run.
	PhaseInit Phase = iota
	// PhaseIterating is a running chain.
	PhaseIterating
	// PhaseDone is a finished (or failed) chain.
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseIterating:
		return "ITERATING"
	case PhaseDone:
		return "DONE"
	}

	return "UNKNOWN"
}

// Move is a proposal kind.
type Move int

const (
	// MoveRho updates the correlation.
	MoveRho Move = iota
	// MoveNoise updates the active noise parameter.
	MoveNoise
	// MoveLatent redraws one row of Z.
	MoveLatent
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case MoveRho:
		return "rho"
	case MoveNoise:
		return "noise"
	case MoveLatent:
		return "U"
	}

	return "unknown"
}

// State is the committed chain state. Matrices are never mutated once part
// of a State; accepted moves replace them.
type State struct {
	Z      *mat.Dense
	Rho    float64
	Params noise.Params
	H      *order.Relation // closed
	HDense *matrix.Dense   // H as 0/1 matrix, shared with the trace
	LogLik float64
}

// MoveStats counts proposals and acceptances of one move kind.
type MoveStats struct {
	Proposed int
	Accepted int
}

// Rate returns Accepted/Proposed, or 0 before any proposal.
func (m MoveStats) Rate() float64 {
	if m.Proposed == 0 {
		return 0
	}

	return float64(m.Accepted) / float64(m.Proposed)
}

// Stats aggregates move counters.
type Stats struct {
	Rho    MoveStats
	Noise  MoveStats
	Latent MoveStats
}

func (s *Stats) of(m Move) *MoveStats {
	switch m {
	case MoveRho:
		return &s.Rho
	case MoveNoise:
		return &s.Noise
	}

	return &s.Latent
}
