// Package diagnostic drives an adaptive placement assessment across the
// curriculum: greedy uncertainty sampling over skills, item selection in
// assessment mode, and per-skill ability estimation until every skill is
// measured with sufficient confidence.
package diagnostic

import "github.com/LNshuti/adaptest/internal/attempt"

// Progress tracks one skill's diagnostic state.
type Progress struct {
	SkillID  string
	Theta    float64
	SE       float64
	Attempts []attempt.Attempt
	Complete bool
}

// Accuracy returns the fraction of correct attempts recorded for this skill.
func (p *Progress) Accuracy() float64 {
	if len(p.Attempts) == 0 {
		return 0.0
	}
	correct := 0
	for _, a := range p.Attempts {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(p.Attempts))
}

func newProgress(skillID string) *Progress {
	return &Progress{SkillID: skillID, Theta: 0, SE: 1}
}
