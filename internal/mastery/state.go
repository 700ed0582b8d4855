// Package mastery tracks per-skill mastery probability with Bayesian
// knowledge tracing: slip/guess-conditioned updates, a learning transition,
// forgetting decay and an adaptive learning rate.
package mastery

import "time"

// Default state for a skill on first encounter.
const (
	DefaultPKnown  = 0.2
	DefaultPLearn  = 0.10
	DefaultPForget = 0.02
)

// State holds all mastery data for a single skill. Updates produce a new
// value; callers own persistence of the result.
type State struct {
	SkillID string

	// Ability estimate carried alongside the mastery chain.
	Theta   float64
	ThetaSE float64

	// PKnown is the probability the skill is in the known state.
	PKnown float64
	// PLearn is the per-attempt probability of transitioning to known.
	PLearn float64
	// PForget is the per-day decay rate applied to PKnown.
	PForget float64

	Attempts      int
	Correct       int
	LastPracticed time.Time // zero if never practiced
}

// NewState creates the default state for a skill's first attempt.
func NewState(skillID string) State {
	return State{
		SkillID: skillID,
		ThetaSE: 1,
		PKnown:  DefaultPKnown,
		PLearn:  DefaultPLearn,
		PForget: DefaultPForget,
	}
}

// Accuracy returns the lifetime accuracy ratio.
func (s State) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0.0
	}
	return float64(s.Correct) / float64(s.Attempts)
}
