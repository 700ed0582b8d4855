// Package review schedules maintenance practice for skills whose mastery
// has decayed since they were last practiced.
package review

import (
	"sort"
	"time"

	"github.com/LNshuti/adaptest/internal/mastery"
)

// DueThreshold is the decayed mastery probability below which a previously
// proficient skill is due for review.
const DueThreshold = 0.65

// Entry describes one skill in the review queue.
type Entry struct {
	SkillID       string
	PKnown        float64 // mastery at last practice
	Decayed       float64 // mastery now, after forgetting
	LastPracticed time.Time
	DaysSince     float64
}

// Due returns the skills due for review, most decayed first. A skill is due
// when it reached proficiency at some point but forgetting has dragged its
// current mastery probability below the threshold. Skills that were never
// proficient belong in a learning session, not a review.
func Due(states map[string]mastery.State, now time.Time) []Entry {
	var due []Entry
	for id, s := range states {
		if s.Attempts == 0 || s.PKnown < DueThreshold {
			continue
		}
		decayed := mastery.DecayedPKnown(s, now)
		if decayed >= DueThreshold {
			continue
		}
		due = append(due, Entry{
			SkillID:       id,
			PKnown:        s.PKnown,
			Decayed:       decayed,
			LastPracticed: s.LastPracticed,
			DaysSince:     now.Sub(s.LastPracticed).Hours() / 24,
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Decayed != due[j].Decayed {
			return due[i].Decayed < due[j].Decayed
		}
		return due[i].SkillID < due[j].SkillID
	})
	return due
}
