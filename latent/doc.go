// Package latent maps latent positions to partial orders and carries the
// Gaussian prior over those positions.
//
// A latent configuration is a position matrix Z (n×K) plus a correlation
// rho ∈ [0,1). Each row of Z is an independent draw from N_K(0, Σ_ρ), where
// Σ_ρ has a unit diagonal and rho everywhere else. DeriveOrder shifts every
// row by its covariate effect, applies a dominance Policy, and closes the
// result transitively, so the relation handed to the noise models is always
// a closed strict partial order.
//
// The default policy, CoordinatewiseDominance, puts i before j when row i
// exceeds row j in every coordinate. Other rules can be plugged in through
// the Policy interface as long as they stay antisymmetric and monotone in
// the separation of rows.
package latent
