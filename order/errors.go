// SPDX-License-Identifier: MIT
// Package order: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w); callers
// match them with errors.Is.

package order

import "errors"

var (
	// ErrCycle indicates that a relation expected to be acyclic contains a
	// directed cycle (including a self-loop).
	ErrCycle = errors.New("order: relation contains a cycle")

	// ErrOutOfRange indicates an item index outside [0, n).
	ErrOutOfRange = errors.New("order: item index out of range")

	// ErrSizeMismatch indicates two relations over different item counts.
	ErrSizeMismatch = errors.New("order: relation size mismatch")

	// ErrNotSquare indicates a non-square input matrix.
	ErrNotSquare = errors.New("order: relation matrix is not square")

	// ErrNonBinary indicates a matrix cell outside {0,1}.
	ErrNonBinary = errors.New("order: relation matrix is not binary")

	// ErrReflexive indicates a non-zero diagonal in a strict order.
	ErrReflexive = errors.New("order: relation has a non-zero diagonal")

	// ErrNotAntisymmetric indicates i≺j and j≺i for some pair.
	ErrNotAntisymmetric = errors.New("order: relation is not antisymmetric")

	// ErrDuplicateItem indicates the same item listed twice in an item list.
	ErrDuplicateItem = errors.New("order: duplicate item")

	// ErrTooManyItems is returned by bitmask algorithms over more than
	// MaxMaskItems items.
	ErrTooManyItems = errors.New("order: too many items for bitmask algorithm")
)
