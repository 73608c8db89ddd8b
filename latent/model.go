// SPDX-License-Identifier: MIT
// Package: latent
//
// Purpose:
//   - Model: (Z, rho) → closed partial order, through the covariate shift and
//     the configured Policy.
//   - CovariateShift: per-item effect alpha = Xβ.

package latent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/order"
)

// Model derives partial orders from latent configurations.
type Model struct {
	policy Policy
	alpha  []float64
}

// NewModel returns a Model with policy p and per-item shift alpha.
// A nil policy selects CoordinatewiseDominance; a nil alpha means no shift.
func NewModel(p Policy, alpha []float64) *Model {
	if p == nil {
		p = CoordinatewiseDominance{}
	}

	return &Model{policy: p, alpha: append([]float64(nil), alpha...)}
}

// Eta returns Z with alpha[i] added to every coordinate of row i.
func (m *Model) Eta(z mat.Matrix) *mat.Dense {
	eta := mat.DenseCopyOf(z)
	if len(m.alpha) == 0 {
		return eta
	}
	n, k := eta.Dims()
	for i := 0; i < n && i < len(m.alpha); i++ {
		for c := 0; c < k; c++ {
			eta.Set(i, c, eta.At(i, c)+m.alpha[i])
		}
	}

	return eta
}

// DeriveOrder returns the transitive closure of the policy relation on Eta(z).
// It never fails; a matrix with zero columns yields the empty relation.
//
// Complexity: O(n²·K) for dominance plus O(n³/w) for the closure.
func (m *Model) DeriveOrder(z mat.Matrix, rho float64) *order.Relation {
	return order.Closure(m.policy.Derive(m.Eta(z), rho))
}

// CovariateShift returns alpha = Xβ (length n). A nil X or empty beta yields
// zeros, which is the covariate-free model (p = 0).
//
// Errors:
//   - ErrDimensionMismatch when X is not n×len(beta).
func CovariateShift(x mat.Matrix, beta []float64, n int) ([]float64, error) {
	if x == nil || len(beta) == 0 {
		return make([]float64, n), nil
	}
	r, c := x.Dims()
	if r != n || c != len(beta) {
		return nil, fmt.Errorf("CovariateShift: X is %dx%d, want %dx%d: %w", r, c, n, len(beta), ErrDimensionMismatch)
	}
	var out mat.VecDense
	out.MulVec(x, mat.NewVecDense(len(beta), append([]float64(nil), beta...)))

	return out.RawVector().Data, nil
}
