// Package noise implements the observation models linking a candidate partial
// order h to a ranking: log P(observation | h, params).
//
// Two models are provided behind the Model interface:
//
//   - QueueJump: the ranking is built top-down; at each step the next item is
//     drawn uniformly from the remaining items with probability p (a "jump"),
//     and otherwise from the top of a uniformly random linear extension of the
//     remaining sub-order.
//   - Mallows: the ranking is a Kendall-tau Mallows perturbation, with
//     dispersion theta, of a uniformly random linear extension of h.
//
// Both models restrict h to the items of the observation and marginalise the
// unobserved order inside tied groups exactly. All evaluation runs as dynamic
// programming over bitmask subsets of an order.Suborder, so observations are
// limited to order.MaxMaskItems items, and tied groups should stay small.
//
// Logically impossible observations yield -Inf (queue-jump with p = 0 and a
// ranking contradicting h). That value is a rejection signal, never an error.
//
// Identical evaluations (same restricted sub-order, same group layout, same
// parameter) are memoised in a bounded LRU owned by the model; a Model is
// therefore meant to be owned by a single chain.
package noise
