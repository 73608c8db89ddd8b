// SPDX-License-Identifier: MIT
// Package: realizer

package realizer

// DefaultMaxItems bounds FindMin; 8 items already admit 40320 extensions.
const DefaultMaxItems = 8

// Option configures FindMin.
type Option func(*Options)

// Options holds the FindMin search limits.
type Options struct {
	MaxItems int
}

// WithMaxItems sets the item limit for FindMin. Values below 1 keep the default.
func WithMaxItems(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxItems = n
		}
	}
}

// DefaultOptions returns the default search limits.
func DefaultOptions() Options {
	return Options{MaxItems: DefaultMaxItems}
}
