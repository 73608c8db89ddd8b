// Package order implements the algebra of strict partial orders over items
// indexed 0..n-1.
//
// What & Why:
//
//	A Relation is an n×n 0/1 precedence relation stored as one bitset row per
//	item: Has(i, j) means item i strictly precedes item j. Relations are the
//	currency of the sampler: the latent model derives one per state, the noise
//	models evaluate observations against it, and the summarizer reports its
//	transitive reduction.
//
// The package provides:
//
//   - Closure (bitset Warshall) and Reduction (minimal generating relation),
//   - TopologicalSort / IsAcyclic (DFS colouring),
//   - Dominance, the coordinatewise order induced by latent positions,
//   - Suborder, a bitmask view of a relation restricted to an item list, with
//     an exact linear-extension counting DP,
//   - LinearExtensions, a lazy restartable iter.Seq over all extensions,
//   - ChangedItems, Missing, Redundant for comparing relations.
//
// Complexity:
//
//	Closure and Reduction run in O(n³/w) with w the machine word size.
//	Extension counting is O(2^m·m) in the worst case over m ≤ 64 items but
//	only touches downsets of the restricted order.
//	LinearExtensions is combinatorial in the number of extensions; use it for
//	small inputs (validation and diagnostics, see package realizer).
package order
