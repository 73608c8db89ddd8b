// SPDX-License-Identifier: MIT
// Package observation: sentinel error set.

package observation

import "errors"

var (
	// ErrEmptyGroup indicates a group with no items.
	ErrEmptyGroup = errors.New("observation: empty group")

	// ErrEmpty indicates an observation without any group.
	ErrEmpty = errors.New("observation: no groups")

	// ErrDuplicateItem indicates an item mentioned twice in one observation.
	ErrDuplicateItem = errors.New("observation: duplicate item")

	// ErrOutOfRange indicates an item index outside [0, n).
	ErrOutOfRange = errors.New("observation: item index out of range")
)
