package diagnostic

import (
	"sort"
	"time"

	"github.com/LNshuti/adaptest/internal/curriculum"
)

// WeakestCount is how many low-ability skills the report recommends as
// focus areas.
const WeakestCount = 3

// SkillEstimate is the per-skill outcome of a diagnostic.
type SkillEstimate struct {
	SkillID  string
	Theta    float64
	SE       float64
	Items    int
	Accuracy float64
}

// Result is the final aggregated diagnostic report.
type Result struct {
	Skills         map[string]SkillEstimate
	SectionAbility map[curriculum.Section]float64
	WeakestSkills  []string
	TotalItems     int
	Elapsed        time.Duration
	CompletedAt    time.Time
}

// Result aggregates the session into a report.
//
// Section ability is the mean of the section's skill estimates with a fixed
// divisor equal to the section's skill count in this diagnostic: skills that
// never received an item contribute nothing to the sum but still count in
// the divisor, biasing the section average toward zero. Historical reports
// were computed this way, so changing it would shift every stored score.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := &Result{
		Skills:         make(map[string]SkillEstimate, len(s.progress)),
		SectionAbility: make(map[curriculum.Section]float64),
		TotalItems:     s.history.SeenCount(),
		Elapsed:        now.Sub(s.started),
		CompletedAt:    now,
	}

	sectionSum := make(map[curriculum.Section]float64)
	sectionCount := make(map[curriculum.Section]int)

	for _, id := range s.order {
		p := s.progress[id]
		r.Skills[id] = SkillEstimate{
			SkillID:  id,
			Theta:    p.Theta,
			SE:       p.SE,
			Items:    len(p.Attempts),
			Accuracy: p.Accuracy(),
		}

		section, err := curriculum.SectionOf(id)
		if err != nil {
			continue
		}
		sectionCount[section]++
		if len(p.Attempts) > 0 {
			sectionSum[section] += p.Theta
		}
	}
	for section, count := range sectionCount {
		r.SectionAbility[section] = sectionSum[section] / float64(count)
	}

	r.WeakestSkills = weakest(r.Skills, WeakestCount)
	return r
}

// weakest returns the n lowest-ability skills among those actually measured,
// sorted by theta ascending with ID as tiebreak.
func weakest(skills map[string]SkillEstimate, n int) []string {
	var measured []SkillEstimate
	for _, est := range skills {
		if est.Items > 0 {
			measured = append(measured, est)
		}
	}
	sort.Slice(measured, func(i, j int) bool {
		if measured[i].Theta != measured[j].Theta {
			return measured[i].Theta < measured[j].Theta
		}
		return measured[i].SkillID < measured[j].SkillID
	})
	if len(measured) > n {
		measured = measured[:n]
	}
	out := make([]string, len(measured))
	for i, est := range measured {
		out[i] = est.SkillID
	}
	return out
}
