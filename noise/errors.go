// SPDX-License-Identifier: MIT
// Package noise: sentinel error set.

package noise

import "errors"

var (
	// ErrUnknownKind indicates an unsupported noise option.
	ErrUnknownKind = errors.New("noise: unknown noise option")

	// ErrObservation indicates an observation that cannot be evaluated
	// against the relation (out-of-range items, too many items).
	ErrObservation = errors.New("noise: observation cannot be evaluated")

	// ErrParams indicates a noise parameter outside its domain.
	ErrParams = errors.New("noise: parameter outside its domain")
)
