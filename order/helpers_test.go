// SPDX-License-Identifier: MIT
// Package order_test contains shared fixtures.

package order_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/porder/order"
)

// MustEdges BUILDS a relation over n items from literal pairs or fails the test.
func MustEdges(t testing.TB, n int, pairs ...[2]int) *order.Relation {
	t.Helper()
	edges := make([]order.Edge, len(pairs))
	for k, p := range pairs {
		edges[k] = order.Edge{From: p[0], To: p[1]}
	}
	r, err := order.FromEdges(n, edges)
	if err != nil {
		t.Fatalf("FromEdges(%d,%v): %v", n, pairs, err)
	}

	return r
}

// randomDAG DRAWS a relation with edges only from lower to higher index,
// each present with probability p.
func randomDAG(rng *rand.Rand, n int, p float64) *order.Relation {
	r := order.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = r.Add(i, j)
			}
		}
	}

	return r
}

// iota0 returns 0..n-1.
func iota0(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
