// Package dataset loads the JSON input of an inference run: observed total
// orders, observed partial rankings ("subsets"), optional item names, the
// optional ground-truth partial order and covariate parameters.
//
// A subset is a list of groups, top group first; a group is either an array
// of tied item indices or a bare index for a singleton:
//
//	{"total_orders": [[0, 1, 2]], "subsets": [[[0, 2], 1]]}
//
// Decoding validates every index against the item count and limits each
// observation to order.MaxMaskItems (64) items; all structural problems are
// reported as ErrMalformed.
package dataset
