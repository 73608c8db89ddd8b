// Command porder infers a latent partial order from noisy rankings.
//
// Usage:
//
//	porder run --config config.yaml --data data.json
//	porder summarize --results output/run_results.json --burn-in 200
//	porder dimension --crown 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
