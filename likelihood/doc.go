// Package likelihood keeps the per-observation log-likelihood contributions of
// the current partial order and evaluates proposals incrementally.
//
// A Cache is bound to one noise model and one observation list. Proposals are
// computed against the committed state: RecomputeAffected re-evaluates only
// the observations whose items intersect a changed-item set (see
// order.ChangedItems), RecomputeAll re-evaluates everything (noise parameter
// moves). A proposal holds its own values; the cache changes only in Commit,
// so a rejected proposal is simply dropped.
//
// Commit refuses proposals made against an older generation of the cache
// (ErrStaleProposal); between two commits every proposal sees the same state.
package likelihood
