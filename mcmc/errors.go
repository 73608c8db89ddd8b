// SPDX-License-Identifier: MIT
// Package mcmc: sentinel error set.

package mcmc

import "errors"

var (
	// ErrInvalidConfig indicates a sampler configuration outside its domain.
	ErrInvalidConfig = errors.New("mcmc: invalid configuration")

	// ErrNoItems indicates a sampler over zero items.
	ErrNoItems = errors.New("mcmc: no items")

	// ErrAlreadyRun indicates a second Run on the same sampler.
	ErrAlreadyRun = errors.New("mcmc: sampler already run")
)
