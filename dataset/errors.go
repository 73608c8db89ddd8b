// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import "errors"

// ErrMalformed indicates a dataset that does not describe valid observations
// over its items.
var ErrMalformed = errors.New("dataset: malformed dataset")
