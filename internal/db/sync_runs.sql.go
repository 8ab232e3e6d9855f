package db

import (
	"context"
	"time"
)

type SyncRun struct {
	ID              string
	Version         string
	PatchPrefix     string
	Champions       int64
	Items           int64
	Runes           int64
	AggregatedStats int64
	CreatedAt       time.Time
}

const insertSyncRun = `
INSERT INTO sync_runs (id, version, patch_prefix, champions, items, runes, aggregated_stats, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertSyncRunParams = SyncRun

func (q *Queries) InsertSyncRun(ctx context.Context, arg InsertSyncRunParams) error {
	_, err := q.db.ExecContext(ctx, insertSyncRun,
		arg.ID,
		arg.Version,
		arg.PatchPrefix,
		arg.Champions,
		arg.Items,
		arg.Runes,
		arg.AggregatedStats,
		arg.CreatedAt,
	)
	return err
}

const listSyncRuns = `
SELECT id, version, patch_prefix, champions, items, runes, aggregated_stats, created_at
FROM sync_runs
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListSyncRuns(ctx context.Context, limit int64) ([]SyncRun, error) {
	rows, err := q.db.QueryContext(ctx, listSyncRuns, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SyncRun
	for rows.Next() {
		var i SyncRun
		if err := rows.Scan(
			&i.ID,
			&i.Version,
			&i.PatchPrefix,
			&i.Champions,
			&i.Items,
			&i.Runes,
			&i.AggregatedStats,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
