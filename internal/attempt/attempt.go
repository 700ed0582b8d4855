// Package attempt defines the graded-response record shared by the
// estimation, mastery and diagnostic packages.
package attempt

import (
	"time"

	"github.com/google/uuid"
)

// Attempt records a single graded response to an item.
// Attempts are immutable once created.
type Attempt struct {
	ID           string
	ItemID       string
	Correct      bool
	ResponseTime time.Duration
	Timestamp    time.Time

	// Ability estimate around this attempt, kept for audit trails.
	// Zero when the caller does not track ability.
	ThetaBefore float64
	ThetaAfter  float64
}

// New creates an attempt with a fresh ID.
func New(itemID string, correct bool, responseTime time.Duration, now time.Time) Attempt {
	return Attempt{
		ID:           uuid.NewString(),
		ItemID:       itemID,
		Correct:      correct,
		ResponseTime: responseTime,
		Timestamp:    now,
	}
}
