// Package porder infers a latent strict partial order over n items from
// noisy observed rankings.
//
// Observations are total orders or partial rankings with tied groups. The
// model places items in a K-dimensional latent space with correlated
// Gaussian rows; an item precedes another when it dominates it in every
// coordinate. A Metropolis-within-Gibbs sampler explores the latent
// positions, their correlation and the noise parameter of either the
// queue-jump or the Mallows observation model, and the posterior trace is
// reduced to a single reported order.
//
// Subpackages, leaves first:
//
//	matrix/      - dense grids, dense reachability, NaN-aware means, thresholds
//	order/       - bitset relations: closure, reduction, topological sort,
//	               linear extensions and their counts
//	realizer/    - minimum realizers, critical pairs, crown posets
//	observation/ - total orders and partial rankings
//	noise/       - queue-jump and Mallows likelihoods with an LRU memo
//	latent/      - dominance policy, covariate shift, latent row prior
//	likelihood/  - per-observation log-likelihood cache
//	trace/       - recorded chain states
//	mcmc/        - the sampler
//	summary/     - burn-in, majority relation, trace statistics
//	config/      - YAML run configuration
//	dataset/     - JSON input
//	result/      - JSON results and .npy export
//	inference/   - one full run
//	cmd/porder/  - the command-line tool
//
// Quick example:
//
//	porder run --config config.yaml --data data.json
package porder
