// SPDX-License-Identifier: MIT
// Package latent: sentinel error set.

package latent

import "errors"

var (
	// ErrInvalidRho indicates a correlation outside [0,1).
	ErrInvalidRho = errors.New("latent: rho must lie in [0,1)")

	// ErrInvalidDimension indicates a latent dimension below 1.
	ErrInvalidDimension = errors.New("latent: dimension must be >= 1")

	// ErrDimensionMismatch indicates inconsistent matrix or vector shapes.
	ErrDimensionMismatch = errors.New("latent: dimension mismatch")
)
