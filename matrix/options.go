// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Posterior traces may carry missing cells (NaN). Matrices that hold such
//     samples are allocated with WithAllowNaN(); NaN-aware reductions
//     (NaNMean) skip them, every other kernel treats them as ordinary values.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultThreshold is the cut used by Threshold to binarise averaged
	// relation samples (cells >= threshold become 1).
	DefaultThreshold = 0.5
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithAllowNaN disables the finite-value guard so that Set accepts NaN and ±Inf.
// Used for trace samples that encode missing cells as NaN.
func WithAllowNaN() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// WithValidateNaNInf restores the finite-value guard (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts left-to-right over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
