package review

import (
	"testing"
	"time"

	"github.com/LNshuti/adaptest/internal/mastery"
)

func practicedState(id string, pKnown float64, lastPracticed time.Time) mastery.State {
	s := mastery.NewState(id)
	s.PKnown = pKnown
	s.Attempts = 5
	s.Correct = 4
	s.LastPracticed = lastPracticed
	return s
}

func TestDue_DecayedSkillIsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// 0.80 * 0.98^30 ≈ 0.437, well below the threshold.
	states := map[string]mastery.State{
		"gr-articles": practicedState("gr-articles", 0.80, now.AddDate(0, 0, -30)),
	}

	due := Due(states, now)
	if len(due) != 1 {
		t.Fatalf("got %d due skills, want 1", len(due))
	}
	if due[0].SkillID != "gr-articles" {
		t.Errorf("due skill = %s", due[0].SkillID)
	}
	if due[0].Decayed >= DueThreshold {
		t.Errorf("decayed = %g, want < %g", due[0].Decayed, DueThreshold)
	}
	if got := due[0].DaysSince; got < 29.9 || got > 30.1 {
		t.Errorf("days since = %g, want ~30", got)
	}
}

func TestDue_RecentlyPracticedNotDue(t *testing.T) {
	now := time.Now()
	states := map[string]mastery.State{
		"gr-articles": practicedState("gr-articles", 0.80, now.Add(-time.Hour)),
	}
	if due := Due(states, now); len(due) != 0 {
		t.Errorf("got %d due skills, want 0", len(due))
	}
}

func TestDue_NeverProficientNotDue(t *testing.T) {
	now := time.Now()
	// Low mastery decays further, but this skill needs learning, not review.
	states := map[string]mastery.State{
		"vo-core": practicedState("vo-core", 0.45, now.AddDate(0, 0, -60)),
	}
	if due := Due(states, now); len(due) != 0 {
		t.Errorf("got %d due skills, want 0", len(due))
	}
}

func TestDue_UnpracticedNotDue(t *testing.T) {
	now := time.Now()
	s := mastery.NewState("rd-main-idea")
	s.PKnown = 0.9 // restored snapshot with no attempts counted
	if due := Due(map[string]mastery.State{"rd-main-idea": s}, now); len(due) != 0 {
		t.Errorf("got %d due skills, want 0", len(due))
	}
}

func TestDue_MostDecayedFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	states := map[string]mastery.State{
		"gr-articles": practicedState("gr-articles", 0.80, now.AddDate(0, 0, -20)),
		"vo-core":     practicedState("vo-core", 0.80, now.AddDate(0, 0, -60)),
	}

	due := Due(states, now)
	if len(due) != 2 {
		t.Fatalf("got %d due skills, want 2", len(due))
	}
	if due[0].SkillID != "vo-core" || due[1].SkillID != "gr-articles" {
		t.Errorf("order = [%s %s], want [vo-core gr-articles]",
			due[0].SkillID, due[1].SkillID)
	}
	if due[0].Decayed >= due[1].Decayed {
		t.Errorf("expected strictly increasing decayed values, got %g then %g",
			due[0].Decayed, due[1].Decayed)
	}
}

func TestDue_TieBreaksOnSkillID(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -30)
	states := map[string]mastery.State{
		"vo-core":     practicedState("vo-core", 0.80, last),
		"gr-articles": practicedState("gr-articles", 0.80, last),
	}

	due := Due(states, now)
	if len(due) != 2 {
		t.Fatalf("got %d due skills, want 2", len(due))
	}
	if due[0].SkillID != "gr-articles" {
		t.Errorf("tie should break on ID, got %s first", due[0].SkillID)
	}
}
