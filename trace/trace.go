// SPDX-License-Identifier: MIT
// Package trace records the states visited by a sampler.
//
// A Trace is append-only: the sampler appends one Sample per recorded
// iteration and consumers (summary, result) only read. Every component is
// stored as its own slice so reports can read the scalar traces directly.

package trace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
)

// ErrShape indicates a sample whose matrices do not match earlier samples.
var ErrShape = errors.New("trace: sample shape mismatch")

// ErrRange indicates a window outside the trace.
var ErrRange = errors.New("trace: window out of range")

// Sample is one recorded state.
type Sample struct {
	Z         *mat.Dense    // n×K latent positions
	H         *matrix.Dense // n×n 0/1 closed relation
	Rho       float64
	ProbNoise float64
	Theta     float64
	LogLik    float64
}

// Trace is the sequence of recorded samples.
type Trace struct {
	Z         []*mat.Dense
	H         []*matrix.Dense
	Rho       []float64
	ProbNoise []float64
	Theta     []float64
	LogLik    []float64
	Thinning  int
}

// New returns an empty trace recording every thinning-th iteration.
// thinning < 1 is treated as 1.
func New(thinning int) *Trace {
	if thinning < 1 {
		thinning = 1
	}

	return &Trace{Thinning: thinning}
}

// Records reports whether iteration t (0-based) is recorded: the last
// iteration of every block of Thinning iterations.
func (t *Trace) Records(iter int) bool {
	return (iter+1)%t.Thinning == 0
}

// Append stores s. The matrices are stored as given; callers hand over
// ownership (the sampler never mutates published matrices).
//
// Errors:
//   - ErrShape when s.Z or s.H differs in shape from the first sample.
func (t *Trace) Append(s Sample) error {
	if len(t.Z) > 0 {
		zr, zc := t.Z[0].Dims()
		sr, sc := s.Z.Dims()
		if zr != sr || zc != sc || t.H[0].Rows() != s.H.Rows() || t.H[0].Cols() != s.H.Cols() {
			return fmt.Errorf("Append: sample %d: %w", len(t.Z), ErrShape)
		}
	}
	t.Z = append(t.Z, s.Z)
	t.H = append(t.H, s.H)
	t.Rho = append(t.Rho, s.Rho)
	t.ProbNoise = append(t.ProbNoise, s.ProbNoise)
	t.Theta = append(t.Theta, s.Theta)
	t.LogLik = append(t.LogLik, s.LogLik)

	return nil
}

// Len returns the number of recorded samples.
func (t *Trace) Len() int { return len(t.Z) }

// At returns sample i.
func (t *Trace) At(i int) (Sample, error) {
	if i < 0 || i >= t.Len() {
		return Sample{}, fmt.Errorf("At(%d) of %d: %w", i, t.Len(), ErrRange)
	}

	return Sample{
		Z: t.Z[i], H: t.H[i],
		Rho: t.Rho[i], ProbNoise: t.ProbNoise[i], Theta: t.Theta[i], LogLik: t.LogLik[i],
	}, nil
}

// Last returns the final sample.
func (t *Trace) Last() (Sample, error) { return t.At(t.Len() - 1) }

// Window returns the samples [from, to) as a trace sharing the same backing
// matrices.
func (t *Trace) Window(from, to int) (*Trace, error) {
	if from < 0 || to > t.Len() || from > to {
		return nil, fmt.Errorf("Window(%d,%d) of %d: %w", from, to, t.Len(), ErrRange)
	}

	return &Trace{
		Z:         t.Z[from:to:to],
		H:         t.H[from:to:to],
		Rho:       t.Rho[from:to:to],
		ProbNoise: t.ProbNoise[from:to:to],
		Theta:     t.Theta[from:to:to],
		LogLik:    t.LogLik[from:to:to],
		Thinning:  t.Thinning,
	}, nil
}

// Relations returns the H samples as matrix.Matrix values.
func (t *Trace) Relations() []matrix.Matrix {
	out := make([]matrix.Matrix, len(t.H))
	for i, h := range t.H {
		out[i] = h
	}

	return out
}
