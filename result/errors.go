// SPDX-License-Identifier: MIT
// Package result: sentinel error set.

package result

import "errors"

var (
	// ErrDecode indicates a results file that is not a valid record.
	ErrDecode = errors.New("result: cannot decode record")

	// ErrEmptyRelation indicates a relation without items, which has no
	// array form.
	ErrEmptyRelation = errors.New("result: empty relation")
)
