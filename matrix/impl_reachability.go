// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense reachability (boolean Warshall) with deterministic loop order.
//   - Test reference for the bitset closure of package order (order.Closure),
//     which the sampler uses; the order tests check both agree cell-for-cell.
//
// Contract:
//   - Square matrix; any non-zero cell is an edge i→j.
//   - Output cell (i,j) is 1 iff j is reachable from i by a path of length ≥ 1.
//     A diagonal cell becomes 1 only when i lies on a cycle.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const opReachability = "Reachability"

// warshallInPlace runs the boolean closure on a square *Dense in-place.
//
// Policy (assumed by callers):
//   - Cells are already 0/1.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func warshallInPlace(d *Dense) {
	n := d.r // direct field access avoids a virtual call

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
	)
	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			if data[i*n+k] == 0 { // i cannot reach k: nothing to propagate
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				if data[baseK+j] != 0 {
					data[baseI+j] = 1
				}
			}
		}
	}
}

// Reachability returns the transitive closure of the relation encoded by m.
// Production code closes relations with order.Closure; Reachability is the
// slow dense oracle those results are tested against.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square.
//   - Stage 2: copy m into a fresh 0/1 Dense (non-zero → 1).
//   - Stage 3: run the in-place boolean Warshall kernel.
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity: Time O(n^3), Space O(n^2) for the result.
func Reachability(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opReachability, err)
	}

	// Stage 2: binarise; Dense fast-path reads the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if v != 0 {
				out.data[k] = 1
			}
		}
	} else {
		var (
			i, j int
			v    float64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opReachability, err)
				}
				if v != 0 {
					out.data[i*n+j] = 1
				}
			}
		}
	}

	warshallInPlace(out)

	return out, nil
}
