// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/binary checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch if shapes differ.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Ensures m is non-nil and square.
//
// Returns ErrNilMatrix or ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinary – Ensures every cell of m is exactly 0 or 1.
//
// Assumes m is not nil.
// Returns ErrNonBinary on the first offending cell (row-major scan).
// Complexity: O(r*c).
func ValidateBinary(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if v != 0 && v != 1 {
				return fmt.Errorf("ValidateBinary: cell (%d,%d)=%g: %w", k/d.c, k%d.c, v, ErrNonBinary)
			}
		}

		return nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateBinary", err)
			}
			if v != 0 && v != 1 {
				return fmt.Errorf("ValidateBinary: cell (%d,%d)=%g: %w", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}
