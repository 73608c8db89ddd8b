// Package result serialises the outcome of an inference run.
//
// A Record is written as indented JSON (<name>_results.json) next to the
// reported partial order as a NumPy array (<name>_partial_order.npy), the
// hand-off format for external plotting tools.
//
// JSON has no spelling for non-finite numbers, so every float goes through
// Float: NaN is written as null and ±Inf as the strings "+Inf" and "-Inf".
// Decoding reverses both, which makes traces round-trip exactly.
package result
