package selection

import (
	"math"

	"github.com/LNshuti/adaptest/internal/irt"
	"github.com/LNshuti/adaptest/internal/itembank"
)

// Mode selects the difficulty targeting strategy.
type Mode int

const (
	// ModeLearning targets comfortable practice (~70% success).
	ModeLearning Mode = iota
	// ModeAssessment targets maximum discrimination (~50% success).
	ModeAssessment
	// ModeReview targets a neutral midpoint (~60% success).
	ModeReview
)

// TargetAccuracy returns the success probability the selector steers toward.
func (m Mode) TargetAccuracy() float64 {
	switch m {
	case ModeAssessment:
		return 0.50
	case ModeReview:
		return 0.60
	default:
		return 0.70
	}
}

// Constraints bound per-skill exposure within a session.
type Constraints struct {
	// MaxPerSkill excludes items whose primary skill has already been
	// administered this many times.
	MaxPerSkill int
	// MinPerSkill grants a balance bonus to skills seen fewer times.
	MinPerSkill int
}

// DefaultConstraints returns the standard practice-session constraints.
func DefaultConstraints() Constraints {
	return Constraints{MaxPerSkill: 10, MinPerSkill: 2}
}

// Scoring weights.
const (
	accuracyTolerance     = 0.15
	accuracyPenaltyWeight = 2.0
	balanceBonus          = 0.5
)

// NextItem picks the single best next item from pool.
//
// Items already seen this session, and items whose primary skill has hit
// MaxPerSkill exposures, are filtered out first. If filtering leaves no
// candidates but the pool is non-empty, the first pool item is returned even
// if it violates the constraints: the session must be able to continue, so
// availability wins over exposure rules here. Returns false only when the
// pool itself is empty.
//
// Ties in score break on pool order, so callers should not depend on a
// particular winner across differently ordered pools.
func NextItem(theta float64, pool []itembank.Item, hist *History, mode Mode, cons Constraints) (itembank.Item, bool) {
	if len(pool) == 0 {
		return itembank.Item{}, false
	}

	var candidates []itembank.Item
	for _, it := range pool {
		if hist.Seen(it.ID) {
			continue
		}
		if cons.MaxPerSkill > 0 && hist.Exposure(it.PrimarySkill()) >= cons.MaxPerSkill {
			continue
		}
		candidates = append(candidates, it)
	}
	if len(candidates) == 0 {
		return pool[0], true
	}

	target := mode.TargetAccuracy()
	best := candidates[0]
	bestScore := score(theta, best, hist, target, cons)
	for _, it := range candidates[1:] {
		if s := score(theta, it, hist, target, cons); s > bestScore {
			best = it
			bestScore = s
		}
	}
	return best, true
}

// score rates an item: information at theta, penalized for drifting too far
// from the target success probability, with a bonus for under-exposed skills.
func score(theta float64, it itembank.Item, hist *History, target float64, cons Constraints) float64 {
	s := irt.FisherInformation(theta, it)

	p := irt.ProbabilityCorrect(theta, it)
	if d := math.Abs(p - target); d > accuracyTolerance {
		s -= accuracyPenaltyWeight * d
	}

	if hist.Exposure(it.PrimarySkill()) < cons.MinPerSkill {
		s += balanceBonus
	}
	return s
}
