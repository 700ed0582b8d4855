package mastery

import (
	"math"
	"time"
)

// Params holds the knowledge-tracing model parameters shared across skills.
type Params struct {
	// PSlip is the probability of an incorrect answer despite knowing.
	PSlip float64
	// PGuess is the probability of a correct answer despite not knowing.
	PGuess float64
	// FastFactor: a correct answer under FastFactor x expected solve time
	// counts as fluent and grows the learning rate.
	FastFactor float64
	// LearnGrowth multiplies PLearn on a fluent answer.
	LearnGrowth float64
	// LearnCap bounds PLearn growth.
	LearnCap float64
}

// DefaultParams returns the standard BKT parameter set.
func DefaultParams() Params {
	return Params{
		PSlip:       0.10,
		PGuess:      0.25,
		FastFactor:  0.7,
		LearnGrowth: 1.1,
		LearnCap:    0.15,
	}
}

// DecayedPKnown applies forgetting to a state's mastery probability:
// pKnown * (1-pForget)^days since last practice. States never practiced
// decay nothing.
func DecayedPKnown(s State, now time.Time) float64 {
	if s.LastPracticed.IsZero() || !now.After(s.LastPracticed) {
		return s.PKnown
	}
	days := now.Sub(s.LastPracticed).Hours() / 24
	return s.PKnown * math.Pow(1-s.PForget, days)
}

// Update runs one knowledge-tracing step: forgetting decay, the
// correctness-conditioned Bayesian update, the learning transition, and the
// adaptive learning-rate adjustment. The input state is not modified; the
// updated state is returned.
func Update(s State, correct bool, responseTime, expectedTime time.Duration, now time.Time, p Params) State {
	pKnown := DecayedPKnown(s, now)

	var pObsKnown, pObsUnknown float64
	if correct {
		pObsKnown = 1 - p.PSlip
		pObsUnknown = p.PGuess
	} else {
		pObsKnown = p.PSlip
		pObsUnknown = 1 - p.PGuess
	}

	posterior := pKnown
	if den := pKnown*pObsKnown + (1-pKnown)*pObsUnknown; den > 0 {
		posterior = pKnown * pObsKnown / den
	}

	next := s
	next.PKnown = posterior + (1-posterior)*s.PLearn

	// Fast and correct: reward with a faster learning rate.
	if correct && expectedTime > 0 && float64(responseTime) < p.FastFactor*float64(expectedTime) {
		next.PLearn = math.Min(p.LearnCap, s.PLearn*p.LearnGrowth)
	}

	next.LastPracticed = now
	next.Attempts++
	if correct {
		next.Correct++
	}
	return next
}
