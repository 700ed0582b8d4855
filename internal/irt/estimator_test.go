package irt

import (
	"math"
	"testing"
	"time"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/itembank"
)

func lookupFor(items ...itembank.Item) ItemLookup {
	byID := make(map[string]itembank.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return func(id string) (itembank.Item, bool) {
		it, ok := byID[id]
		return it, ok
	}
}

func gradedAttempt(itemID string, correct bool) attempt.Attempt {
	return attempt.New(itemID, correct, 20*time.Second, time.Now())
}

func TestEstimateAbility_EmptyAttempts(t *testing.T) {
	theta, se := EstimateAbility(nil, lookupFor(), DefaultPrior())
	if theta != 0 {
		t.Errorf("theta = %g, want prior mean 0", theta)
	}
	if se != 1.0 {
		t.Errorf("se = %g, want 1.0", se)
	}
}

func TestEstimateAbility_EmptyAttemptsCustomPrior(t *testing.T) {
	theta, se := EstimateAbility(nil, lookupFor(), Prior{Mu: 0.7, Sigma: 0.5})
	if theta != 0.7 {
		t.Errorf("theta = %g, want prior mean 0.7", theta)
	}
	if se != 1.0 {
		t.Errorf("se = %g, want 1.0", se)
	}
}

func TestEstimateAbility_CorrectAnswersRaiseTheta(t *testing.T) {
	it := itembank.Item{ID: "q1", Discrimination: 1.5, Difficulty: 0, Guessing: 0.2, Skills: []string{"gr-articles"}}
	lookup := lookupFor(it)

	var correct []attempt.Attempt
	for i := 0; i < 5; i++ {
		correct = append(correct, gradedAttempt("q1", true))
	}
	thetaUp, seUp := EstimateAbility(correct, lookup, DefaultPrior())
	if thetaUp <= 0 {
		t.Errorf("theta after 5 correct = %g, want > 0", thetaUp)
	}
	if seUp <= 0 || seUp >= 1 {
		t.Errorf("se = %g, want in (0, 1)", seUp)
	}

	var wrong []attempt.Attempt
	for i := 0; i < 5; i++ {
		wrong = append(wrong, gradedAttempt("q1", false))
	}
	thetaDown, _ := EstimateAbility(wrong, lookup, DefaultPrior())
	if thetaDown >= 0 {
		t.Errorf("theta after 5 incorrect = %g, want < 0", thetaDown)
	}
}

func TestEstimateAbility_MoreAttemptsShrinkSE(t *testing.T) {
	it := itembank.Item{ID: "q1", Discrimination: 1.2, Difficulty: 0, Guessing: 0, Skills: []string{"gr-articles"}}
	lookup := lookupFor(it)

	mixed := func(n int) []attempt.Attempt {
		var out []attempt.Attempt
		for i := 0; i < n; i++ {
			out = append(out, gradedAttempt("q1", i%2 == 0))
		}
		return out
	}

	_, seFew := EstimateAbility(mixed(2), lookup, DefaultPrior())
	_, seMany := EstimateAbility(mixed(10), lookup, DefaultPrior())
	if seMany >= seFew {
		t.Errorf("se with 10 attempts (%g) should be below se with 2 (%g)", seMany, seFew)
	}
}

func TestEstimateAbility_SkipsUnresolvableItems(t *testing.T) {
	it := itembank.Item{ID: "q1", Discrimination: 1, Difficulty: 0, Guessing: 0.2, Skills: []string{"gr-articles"}}
	lookup := lookupFor(it)

	attempts := []attempt.Attempt{
		gradedAttempt("q1", true),
		gradedAttempt("missing", true), // silently skipped
		gradedAttempt("q1", true),
	}
	withGhost, _ := EstimateAbility(attempts, lookup, DefaultPrior())
	without, _ := EstimateAbility([]attempt.Attempt{attempts[0], attempts[2]}, lookup, DefaultPrior())
	if math.Abs(withGhost-without) > 1e-12 {
		t.Errorf("unresolvable attempt changed estimate: %g vs %g", withGhost, without)
	}
}

func TestEstimateAbility_AllUnresolvableFallsBackToPrior(t *testing.T) {
	attempts := []attempt.Attempt{gradedAttempt("ghost", true)}
	theta, se := EstimateAbility(attempts, lookupFor(), Prior{Mu: -0.4, Sigma: 1})
	if theta != -0.4 || se != 1.0 {
		t.Errorf("got (%g, %g), want (-0.4, 1.0)", theta, se)
	}
}

func TestEstimateAbility_EstimateWithinGrid(t *testing.T) {
	it := itembank.Item{ID: "q1", Discrimination: 2, Difficulty: -3, Guessing: 0, Skills: []string{"gr-articles"}}
	lookup := lookupFor(it)
	var atts []attempt.Attempt
	for i := 0; i < 30; i++ {
		atts = append(atts, gradedAttempt("q1", true))
	}
	theta, _ := EstimateAbility(atts, lookup, DefaultPrior())
	if theta < -4 || theta > 4 {
		t.Errorf("theta %g outside quadrature range", theta)
	}
}

func TestEstimateAbility_RecoverTrueAbility(t *testing.T) {
	// A learner at theta=1 answering items around their level should be
	// estimated in the right neighborhood once enough evidence accrues.
	items := []itembank.Item{
		{ID: "e1", Discrimination: 1.5, Difficulty: -1, Guessing: 0},
		{ID: "e2", Discrimination: 1.5, Difficulty: 0, Guessing: 0},
		{ID: "e3", Discrimination: 1.5, Difficulty: 0.5, Guessing: 0},
		{ID: "e4", Discrimination: 1.5, Difficulty: 1.5, Guessing: 0},
		{ID: "e5", Discrimination: 1.5, Difficulty: 2.5, Guessing: 0},
	}
	lookup := lookupFor(items...)

	// Deterministic response pattern for a theta=1 learner: correct on
	// everything below ability, incorrect above.
	attempts := []attempt.Attempt{
		gradedAttempt("e1", true),
		gradedAttempt("e2", true),
		gradedAttempt("e3", true),
		gradedAttempt("e4", false),
		gradedAttempt("e5", false),
	}
	theta, se := EstimateAbility(attempts, lookup, DefaultPrior())
	if theta < 0.2 || theta > 1.8 {
		t.Errorf("theta = %g, want near 1", theta)
	}
	if se <= 0 {
		t.Errorf("se = %g, want > 0", se)
	}
}
