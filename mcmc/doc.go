// Package mcmc implements the Metropolis-within-Gibbs sampler over latent
// partial orders.
//
// The chain state is (Z, rho, noise parameters, h) plus the log-likelihood of
// the observations under h. Each iteration draws one move from the
// configured categorical weights:
//
//   - rho:   reflected uniform random walk of half-width DR on [0,1);
//   - noise: queue-jump p' ~ Beta(1, NoiseBetaPrior) (independence proposal),
//     or Mallows θ' = |θ + N(0, SigmaMallow)|;
//   - U:     one row of Z redrawn from its prior N_K(0, Σ_ρ).
//
// The proposal is scored through the likelihood cache (only observations
// touching the changed items are re-evaluated), accepted with probability
// min(1, exp(ΔLL + ΔLP + logQ)), and either committed as a whole or dropped.
// Every Thinning-th iteration is appended to the trace.
//
// Lifecycle:
//
//	NewSampler → PhaseInit → Run → PhaseIterating → PhaseDone
//
// A Sampler runs once; a second Run returns ErrAlreadyRun. The context is
// checked between iterations only.
package mcmc
