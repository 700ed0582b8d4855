package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// resultRepo implements ResultRepo over the diagnostic_results table.
type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, completedAt time.Time, elapsed time.Duration, totalItems int, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO diagnostic_results (completed_at, elapsed_ms, total_items, data)
		 VALUES (?, ?, ?, ?)`,
		completedAt.UTC().Format(time.RFC3339Nano), elapsed.Milliseconds(), totalItems, string(data))
	if err != nil {
		return fmt.Errorf("save diagnostic result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, n int) ([]StoredResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, completed_at, elapsed_ms, total_items, data
		 FROM diagnostic_results ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query diagnostic results: %w", err)
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		var (
			sr        StoredResult
			ts        string
			elapsedMs int64
			blob      string
		)
		if err := rows.Scan(&sr.ID, &ts, &elapsedMs, &sr.TotalItems, &blob); err != nil {
			return nil, fmt.Errorf("scan diagnostic result: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at %q: %w", ts, err)
		}
		sr.CompletedAt = t
		sr.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		sr.Data = []byte(blob)
		out = append(out, sr)
	}
	return out, rows.Err()
}
