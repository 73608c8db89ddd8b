// SPDX-License-Identifier: MIT
// Package: realizer

package realizer

import (
	"fmt"

	"github.com/katalvlaran/porder/order"
)

// Crown returns the crown poset on 2k items: a1..ak at indices 0..k-1,
// b1..bk at indices k..2k-1, with a_i ≺ b_j for every i ≠ j.
// For k ≥ 3 its dimension is k.
//
// Errors:
//   - ErrInvalidCrown for k < 1.
func Crown(k int) ([]string, *order.Relation, error) {
	if k < 1 {
		return nil, nil, fmt.Errorf("Crown(%d): %w", k, ErrInvalidCrown)
	}
	names := make([]string, 2*k)
	h := order.New(2 * k)
	for i := 0; i < k; i++ {
		names[i] = fmt.Sprintf("a%d", i+1)
		names[k+i] = fmt.Sprintf("b%d", i+1)
		for j := 0; j < k; j++ {
			if i != j {
				_ = h.Add(i, k+j) // indices < 2k
			}
		}
	}

	return names, h, nil
}
