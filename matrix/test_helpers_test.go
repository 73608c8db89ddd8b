// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/porder/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs CHECKS errors.Is(err, target) with a readable failure.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
