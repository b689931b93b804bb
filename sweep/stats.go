// SPDX-License-Identifier: MIT

package sweep

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/agroshift/indicator"
)

// zeroVariance is the largest variance treated as exactly zero. Improvements
// that tie up to round-off would otherwise produce meaningless huge scores.
const zeroVariance = 1e-18

// Improvements holds one value per sustainability indicator, in
// indicator.Sustainability order.
type Improvements [indicator.NumSustainability]float64

// Stats returns the population mean and variance of imp and the score
// mean/variance (0 when the variance is zero).
func Stats(imp Improvements) (mean, variance, score float64) {
	mean, variance = stat.PopMeanVariance(imp[:], nil)
	if variance <= zeroVariance {
		return mean, 0, 0
	}

	return mean, variance, mean / variance
}

// Improvement is 1 − realized/base. A zero baseline admits no reduction, so
// its improvement is 0.
func Improvement(realized, base float64) float64 {
	if base == 0 {
		return 0
	}

	return 1 - realized/base
}
