// Package observation defines the observed rankings the sampler conditions on.
//
// An Observation is an ordered list of groups of item indices. Items in an
// earlier group are ranked above items in a later group; items inside one
// group are tied (their relative order was not observed). A total order is
// the special case where every group holds a single item.
//
// Observations are immutable after construction and carry a stable ID (their
// position in the dataset) and a bitset of the items they mention, which the
// likelihood cache uses to decide whether a proposal touches them.
package observation
