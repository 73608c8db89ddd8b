// Package inference wires configuration, dataset, sampler and summariser
// into one run: Run takes a validated config.Config and a loaded
// dataset.Dataset and returns the result.Record ready to be saved.
package inference
