// SPDX-License-Identifier: MIT
// Package: mcmc

package mcmc

import "math"

// AcceptanceRatio returns exp(dLL + dLP + logQ), mapping NaN to 0.
// The result is always >= 0 (possibly +Inf).
func AcceptanceRatio(dLL, dLP, logQ float64) float64 {
	r := math.Exp(dLL + dLP + logQ)
	if math.IsNaN(r) {
		return 0
	}

	return r
}

// AcceptProbability returns min(1, ratio), in [0,1]. NaN and negative ratios map to 0.
func AcceptProbability(ratio float64) float64 {
	switch {
	case math.IsNaN(ratio), ratio <= 0:
		return 0
	case ratio >= 1:
		return 1
	}

	return ratio
}
