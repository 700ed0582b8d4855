// Package irt implements the three-parameter-logistic response model and
// expected-a-posteriori ability estimation.
package irt

import (
	"math"

	"github.com/LNshuti/adaptest/internal/itembank"
)

// ProbabilityCorrect returns the 3PL probability of a correct response at
// ability theta: c + (1-c) / (1 + exp(-a(theta-b))). The result is always
// in [c, 1).
func ProbabilityCorrect(theta float64, it itembank.Item) float64 {
	c := it.Guessing
	return c + (1-c)/(1+math.Exp(-it.Discrimination*(theta-it.Difficulty)))
}

// FisherInformation returns the statistical information the item carries
// about ability at theta. Returns 0 in the numerically degenerate region
// where p <= c or p >= 1.
func FisherInformation(theta float64, it itembank.Item) float64 {
	p := ProbabilityCorrect(theta, it)
	c := it.Guessing
	if p <= c || p >= 1 {
		return 0
	}
	q := (p - c) / (1 - c)
	return it.Discrimination * it.Discrimination * q * q * (1 - p) / p
}
