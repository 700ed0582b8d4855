package irt

import (
	"math"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/itembank"
)

// Prior is a Gaussian prior over ability.
type Prior struct {
	Mu    float64
	Sigma float64
}

// DefaultPrior returns the standard-normal ability prior.
func DefaultPrior() Prior {
	return Prior{Mu: 0, Sigma: 1}
}

// ItemLookup resolves an attempt's item reference to its parameters.
type ItemLookup func(id string) (itembank.Item, bool)

// EAP quadrature grid over the ability scale.
const (
	gridMin  = -4.0
	gridStep = 0.1
	gridSize = 81
)

// EstimateAbility computes an expected-a-posteriori ability estimate and its
// standard error from a set of graded attempts.
//
// Attempts whose item cannot be resolved through lookup are skipped rather
// than failing the estimation. With no usable attempts the prior mean is
// returned with SE 1.0; the same fallbacks apply when the posterior weight
// or total information degenerate to zero. The function never fails: ability
// estimation must always yield a usable value for downstream scheduling.
func EstimateAbility(attempts []attempt.Attempt, lookup ItemLookup, prior Prior) (theta, se float64) {
	if prior.Sigma <= 0 {
		prior.Sigma = 1
	}

	type graded struct {
		item    itembank.Item
		correct bool
	}
	resolved := make([]graded, 0, len(attempts))
	for _, a := range attempts {
		it, ok := lookup(a.ItemID)
		if !ok {
			continue
		}
		resolved = append(resolved, graded{item: it, correct: a.Correct})
	}
	if len(resolved) == 0 {
		return prior.Mu, 1.0
	}

	var sumW, sumTW float64
	for i := 0; i < gridSize; i++ {
		t := gridMin + float64(i)*gridStep
		w := gaussian(t, prior)
		for _, g := range resolved {
			p := ProbabilityCorrect(t, g.item)
			if g.correct {
				w *= p
			} else {
				w *= 1 - p
			}
		}
		sumW += w
		sumTW += t * w
	}
	if sumW == 0 {
		return prior.Mu, 1.0
	}
	theta = sumTW / sumW

	var info float64
	for _, g := range resolved {
		info += FisherInformation(theta, g.item)
	}
	if info <= 0 {
		return theta, 1.0
	}
	return theta, 1 / math.Sqrt(info)
}

// gaussian returns the (unnormalized) prior density at t. The normalization
// constant cancels in the EAP ratio.
func gaussian(t float64, prior Prior) float64 {
	z := (t - prior.Mu) / prior.Sigma
	return math.Exp(-0.5 * z * z)
}
