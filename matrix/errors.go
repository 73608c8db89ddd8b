// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned bare from validators and
// wrapped with fmt.Errorf("<op>: %w", ErrX) by the calling kernel.
//
// ERROR PRIORITY:
// nil -> shape/index -> NaN/Inf -> structural (binary/square) violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. samples of a trace with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonBinary signals a cell outside {0,1} in a relation matrix.
	ErrNonBinary = errors.New("matrix: non-binary entry")

	// ErrNoSamples is returned by sample reductions given an empty sample set.
	ErrNoSamples = errors.New("matrix: no samples")
)
