// SPDX-License-Identifier: MIT
// Package realizer: sentinel error set.

package realizer

import "errors"

var (
	// ErrTooLarge indicates an item list above the configured search limit.
	ErrTooLarge = errors.New("realizer: too many items for exhaustive search")

	// ErrNoExtension indicates a cyclic relation with no linear extension.
	ErrNoExtension = errors.New("realizer: relation has no linear extension")

	// ErrBadExtension indicates an extension that is not a permutation of the items.
	ErrBadExtension = errors.New("realizer: extension is not a permutation of items")

	// ErrInvalidCrown indicates a crown size below 1.
	ErrInvalidCrown = errors.New("realizer: crown size must be >= 1")
)
