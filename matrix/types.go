// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
