// SPDX-License-Identifier: MIT
// Package: latent

package latent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/order"
)

// Policy decides pairwise precedence from shifted latent positions eta.
// Implementations must return an antisymmetric relation, and increasing the
// separation between two rows must never remove a precedence it implied.
type Policy interface {
	Derive(eta mat.Matrix, rho float64) *order.Relation
}

// CoordinatewiseDominance puts i before j iff eta[i][k] > eta[j][k] for all k.
// rho does not enter the decision; it shapes the prior only.
type CoordinatewiseDominance struct{}

// Derive implements Policy.
func (CoordinatewiseDominance) Derive(eta mat.Matrix, _ float64) *order.Relation {
	return order.Dominance(eta)
}
