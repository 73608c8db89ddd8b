// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFill     = "Fill"     // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag; sentinels survive via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage and the default
// numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewPreparedDense(rows, cols)
}

// NewPreparedDense creates an r×c zero matrix with an explicit numeric policy.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: resolve options (WithAllowNaN, ...).
//   - Stage 3: allocate.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a Dense from a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: validate non-empty and rectangular input.
//   - Stage 2: copy rows into a flat buffer, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows,
//     ErrNaNInf when the policy rejects a value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	m, err := NewPreparedDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
// The numeric policy applies to every element.
// Complexity: O(r*c).
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return denseErrorf(ctxFill, m.r, m.c, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return denseErrorf(ctxFill, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return nil
}

// RawRows returns a freshly allocated [][]float64 copy of the contents.
// Mutating the result does not affect m.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
