// Package summary reduces a sampler trace to a reported partial order and
// point estimates.
//
// Summarize drops the burn-in, averages the sampled relations cell by cell
// (ignoring missing cells), keeps every pair whose posterior frequency is at
// least the threshold (0.5 by default), and returns the transitive reduction.
// Degenerate traces are recovered with warnings rather than errors:
//
//   - burn-in at or beyond the trace length: the last 1000 samples are used;
//   - cells still missing after averaging: the last sample without missing
//     cells is used;
//   - a cyclic majority relation: the last valid sample is used.
//
// Warnings are logged on the injected logger and returned in Result.Warnings.
package summary
