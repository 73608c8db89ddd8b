// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Sample reductions over a set of equally shaped matrices (posterior traces).
//   - NaNMean skips missing (NaN) cells per element, like a nan-aware mean.
//   - Threshold binarises an averaged matrix into a 0/1 relation.
//
// Determinism & Performance:
//   - Fixed sample → i → j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNaNMean   = "NaNMean"
	opThreshold = "Threshold"
	opHasNaN    = "HasNaN"
)

// NaNMean returns the elementwise mean of samples, ignoring NaN cells.
//
// Implementation:
//   - Stage 1: validate a non-empty, non-nil, same-shape sample set.
//   - Stage 2: accumulate per-cell sums and finite counts.
//   - Stage 3: divide; cells with no finite observation stay NaN.
//
// Behavior highlights:
//   - The result is allocated with WithAllowNaN(): a cell that is NaN in every
//     sample is reported as NaN so callers can apply their own fallback.
//
// Errors:
//   - ErrNoSamples, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(s*r*c), Space O(r*c).
func NaNMean(samples []Matrix) (*Dense, error) {
	if len(samples) == 0 {
		return nil, matrixErrorf(opNaNMean, ErrNoSamples)
	}
	var err error
	for _, s := range samples {
		if err = ValidateNotNil(s); err != nil {
			return nil, matrixErrorf(opNaNMean, err)
		}
		if err = ValidateSameShape(samples[0], s); err != nil {
			return nil, matrixErrorf(opNaNMean, err)
		}
	}
	r, c := samples[0].Rows(), samples[0].Cols()
	out, err := NewPreparedDense(r, c, WithAllowNaN())
	if err != nil {
		return nil, matrixErrorf(opNaNMean, err)
	}
	counts := make([]int, r*c)

	var (
		i, j int
		v    float64
	)
	for _, s := range samples {
		if d, ok := s.(*Dense); ok {
			for k, x := range d.data {
				if !math.IsNaN(x) {
					out.data[k] += x
					counts[k]++
				}
			}
			continue
		}
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = s.At(i, j); err != nil {
					return nil, matrixErrorf(opNaNMean, err)
				}
				if !math.IsNaN(v) {
					out.data[i*c+j] += v
					counts[i*c+j]++
				}
			}
		}
	}

	for k := range out.data {
		if counts[k] == 0 {
			out.data[k] = math.NaN()
			continue
		}
		out.data[k] /= float64(counts[k])
	}

	return out, nil
}

// HasNaN reports whether any cell of m is NaN.
// Complexity: O(r*c).
func HasNaN(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opHasNaN, err)
	}
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) {
				return true, nil
			}
		}

		return false, nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opHasNaN, err)
			}
			if math.IsNaN(v) {
				return true, nil
			}
		}
	}

	return false, nil
}

// Threshold returns a 0/1 Dense with cell = 1 iff m[i,j] >= t.
// NaN never passes the threshold.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Threshold(m Matrix, t float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opThreshold, err)
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opThreshold, err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opThreshold, err)
			}
			if v >= t { // false for NaN
				out.data[i*out.c+j] = 1
			}
		}
	}

	return out, nil
}
