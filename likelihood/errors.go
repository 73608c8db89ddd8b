// SPDX-License-Identifier: MIT
// Package likelihood: sentinel error set.

package likelihood

import "errors"

var (
	// ErrStaleProposal indicates a proposal computed before the last commit.
	ErrStaleProposal = errors.New("likelihood: proposal is stale")

	// ErrUnknownObservation indicates an observation ID not held by the cache.
	ErrUnknownObservation = errors.New("likelihood: unknown observation")

	// ErrForeignProposal indicates a proposal made by another cache.
	ErrForeignProposal = errors.New("likelihood: proposal belongs to another cache")
)
