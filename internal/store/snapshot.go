package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LNshuti/adaptest/internal/mastery"
)

// masteryRepo implements MasteryRepo over the mastery_snapshots table.
// Snapshots are stored whole as versioned JSON blobs; the tracker is the
// source of truth between saves.
type masteryRepo struct {
	db *sql.DB
}

// snapshotData is the on-disk snapshot layout.
type snapshotData struct {
	Version int                      `json:"version"`
	Skills  map[string]mastery.State `json:"skills"`
}

const snapshotVersion = 1

func (r *masteryRepo) Save(ctx context.Context, states map[string]mastery.State, now time.Time) error {
	blob, err := json.Marshal(snapshotData{Version: snapshotVersion, Skills: states})
	if err != nil {
		return fmt.Errorf("marshal mastery snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO mastery_snapshots (created_at, data) VALUES (?, ?)`,
		now.UTC().Format(time.RFC3339Nano), string(blob))
	if err != nil {
		return fmt.Errorf("save mastery snapshot: %w", err)
	}
	return nil
}

func (r *masteryRepo) Latest(ctx context.Context) (map[string]mastery.State, error) {
	var blob string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM mastery_snapshots ORDER BY id DESC LIMIT 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data snapshotData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("unmarshal mastery snapshot: %w", err)
	}
	return data.Skills, nil
}

func (r *masteryRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM mastery_snapshots WHERE id NOT IN (
			SELECT id FROM mastery_snapshots ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
