// Package config loads the YAML run configuration into an immutable,
// validated Config value.
//
// Every required key is checked once, at load time; errors name the dotted
// key (for example "prior.rho_prior") and wrap ErrMissingKey or
// ErrInvalidValue. Optional keys get their defaults here, so downstream
// packages never see a partially filled configuration.
//
// Recognised layout:
//
//	mcmc:
//	  num_iterations: 500
//	  K: 1
//	  thinning: 1
//	  seed: 42
//	  update_probabilities: {rho: 0.2, noise: 0.4, U: 0.4}
//	rho: {dr: 0.1, initial: 0.5}
//	noise: {noise_option: queue_jump, sigma_mallow: 0.1}
//	prior: {rho_prior: 0.1667, noise_beta_prior: 9, mallow_ua: 10}
//	covariates: {p: 0}
//	visualization: {burn_in: 100}
//	data: {path: data.json, output_dir: output, data_name: run}
package config
