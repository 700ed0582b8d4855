package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LNshuti/adaptest/internal/attempt"
)

// attemptRepo implements AttemptRepo over the attempts table.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, skillID string, att attempt.Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts
			(id, skill_id, item_id, correct, response_time_ms, timestamp, theta_before, theta_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		att.ID, skillID, att.ItemID, boolToInt(att.Correct),
		att.ResponseTime.Milliseconds(), att.Timestamp.UTC().Format(time.RFC3339Nano),
		att.ThetaBefore, att.ThetaAfter,
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) BySkill(ctx context.Context, skillID string) ([]attempt.Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, correct, response_time_ms, timestamp, theta_before, theta_after
		 FROM attempts WHERE skill_id = ? ORDER BY timestamp ASC`, skillID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []attempt.Attempt
	for rows.Next() {
		var (
			a       attempt.Attempt
			correct int
			ms      int64
			ts      string
		)
		if err := rows.Scan(&a.ID, &a.ItemID, &correct, &ms, &ts, &a.ThetaBefore, &a.ThetaAfter); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Correct = correct != 0
		a.ResponseTime = time.Duration(ms) * time.Millisecond
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		a.Timestamp = t
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attemptRepo) LatestTime(ctx context.Context, skillID string) (time.Time, error) {
	var ts string
	err := r.db.QueryRowContext(ctx,
		`SELECT timestamp FROM attempts WHERE skill_id = ? ORDER BY timestamp DESC LIMIT 1`,
		skillID).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest attempt: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", ts, err)
	}
	return t, nil
}

func (r *attemptRepo) Stats(ctx context.Context) ([]SkillStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM attempts GROUP BY skill_id ORDER BY skill_id`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []SkillStats
	for rows.Next() {
		var s SkillStats
		if err := rows.Scan(&s.SkillID, &s.Attempts, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
