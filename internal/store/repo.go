package store

import (
	"context"
	"time"

	"github.com/LNshuti/adaptest/internal/attempt"
	"github.com/LNshuti/adaptest/internal/mastery"
)

// SkillStats summarizes a skill's attempt history.
type SkillStats struct {
	SkillID  string
	Attempts int
	Correct  int
}

// Accuracy returns the lifetime accuracy for the skill.
func (s SkillStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0.0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// AttemptRepo provides append and query access to graded attempts.
// An attempt is stored once per skill it counted toward.
type AttemptRepo interface {
	// Append records an attempt under a skill.
	Append(ctx context.Context, skillID string, att attempt.Attempt) error

	// BySkill returns a skill's attempts, oldest first.
	BySkill(ctx context.Context, skillID string) ([]attempt.Attempt, error)

	// LatestTime returns when a skill was last practiced.
	// Returns the zero time if the skill has no attempts.
	LatestTime(ctx context.Context, skillID string) (time.Time, error)

	// Stats returns per-skill attempt/correct counts for all skills.
	Stats(ctx context.Context) ([]SkillStats, error)
}

// MasteryRepo persists tracker snapshots.
type MasteryRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, states map[string]mastery.State, now time.Time) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (map[string]mastery.State, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// StoredResult is a persisted diagnostic report.
type StoredResult struct {
	ID          int64
	CompletedAt time.Time
	Elapsed     time.Duration
	TotalItems  int
	Data        []byte // JSON-encoded diagnostic.Result
}

// ResultRepo persists diagnostic reports.
type ResultRepo interface {
	// Save stores a completed diagnostic report.
	Save(ctx context.Context, completedAt time.Time, elapsed time.Duration, totalItems int, data []byte) error

	// Recent returns up to n reports, newest first.
	Recent(ctx context.Context, n int) ([]StoredResult, error)
}
