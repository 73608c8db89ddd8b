// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrMissingKey indicates a required key absent from the document.
	ErrMissingKey = errors.New("config: missing required key")

	// ErrInvalidValue indicates a key whose value is outside its domain.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrParse indicates a document that is not valid YAML for the schema.
	ErrParse = errors.New("config: cannot parse document")
)
