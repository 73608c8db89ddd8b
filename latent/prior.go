// SPDX-License-Identifier: MIT
// Package: latent
//
// Purpose:
//   - Row prior N_K(0, Σ_ρ) with Σ_ρ = (1-ρ)·I + ρ·11ᵀ.
//   - Densities and draws go through gonum's distmv.Normal; a Prior is built
//     once per rho value and reused for every row.

package latent

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// CorrelationMatrix returns the K×K matrix with unit diagonal and rho elsewhere.
func CorrelationMatrix(k int, rho float64) *mat.SymDense {
	s := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			if i == j {
				s.SetSym(i, j, 1)
			} else {
				s.SetSym(i, j, rho)
			}
		}
	}

	return s
}

// Prior is the row distribution N_K(0, Σ_ρ).
type Prior struct {
	k    int
	rho  float64
	dist *distmv.Normal
}

// NewPrior builds the row prior for dimension k and correlation rho.
// src drives Sample; nil uses the global math/rand/v2 source.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidRho.
func NewPrior(k int, rho float64, src rand.Source) (*Prior, error) {
	if k < 1 {
		return nil, fmt.Errorf("NewPrior(k=%d): %w", k, ErrInvalidDimension)
	}
	if math.IsNaN(rho) || rho < 0 || rho >= 1 {
		return nil, fmt.Errorf("NewPrior(rho=%g): %w", rho, ErrInvalidRho)
	}
	dist, ok := distmv.NewNormal(make([]float64, k), CorrelationMatrix(k, rho), src)
	if !ok { // Σ_ρ is positive definite on [0,1)
		return nil, fmt.Errorf("NewPrior(rho=%g): covariance not positive definite: %w", rho, ErrInvalidRho)
	}

	return &Prior{k: k, rho: rho, dist: dist}, nil
}

// Dim returns K.
func (p *Prior) Dim() int { return p.k }

// Rho returns the correlation the prior was built with.
func (p *Prior) Rho() float64 { return p.rho }

// RowLogDensity returns log N_K(row; 0, Σ_ρ).
func (p *Prior) RowLogDensity(row []float64) float64 {
	return p.dist.LogProb(row)
}

// SampleRow draws one row.
func (p *Prior) SampleRow() []float64 {
	return p.dist.Rand(nil)
}

// LogDensity returns Σ_i log N_K(Z_i; 0, Σ_ρ).
//
// Errors:
//   - ErrDimensionMismatch when Z does not have K columns.
func (p *Prior) LogDensity(z mat.Matrix) (float64, error) {
	n, k := z.Dims()
	if k != p.k {
		return 0, fmt.Errorf("LogDensity: Z has %d columns, want %d: %w", k, p.k, ErrDimensionMismatch)
	}
	row := make([]float64, k)
	var total float64
	for i := 0; i < n; i++ {
		mat.Row(row, i, z)
		total += p.dist.LogProb(row)
	}

	return total, nil
}

// Sample draws an n×K matrix of independent rows.
func (p *Prior) Sample(n int) *mat.Dense {
	z := mat.NewDense(n, p.k, nil)
	for i := 0; i < n; i++ {
		z.SetRow(i, p.dist.Rand(nil))
	}

	return z
}
