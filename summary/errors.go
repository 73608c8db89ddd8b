// SPDX-License-Identifier: MIT
// Package summary: sentinel error set.

package summary

import "errors"

var (
	// ErrEmptyTrace indicates a nil trace or a trace with no samples.
	ErrEmptyTrace = errors.New("summary: empty trace")

	// ErrNoValidSample indicates that no sample can serve as a fallback.
	ErrNoValidSample = errors.New("summary: no valid sample to fall back to")
)
