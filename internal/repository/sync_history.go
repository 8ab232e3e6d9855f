package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SyncHistoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSyncHistoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SyncHistoryRepository {
	return &SyncHistoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Record stores a run, assigning a nanoid when run.ID is empty. The stored id is returned.
func (r *SyncHistoryRepository) Record(ctx context.Context, run domain.SyncRun) (string, error) {
	id := run.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := r.queries.InsertSyncRun(ctx, db.InsertSyncRunParams{
		ID:              id,
		Version:         run.Version,
		PatchPrefix:     run.PatchPrefix,
		Champions:       int64(run.Champions),
		Items:           int64(run.Items),
		Runes:           int64(run.Runes),
		AggregatedStats: int64(run.AggregatedStats),
		CreatedAt:       createdAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to record sync run: %w", err)
	}
	return id, nil
}

func (r *SyncHistoryRepository) List(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	rows, err := r.queries.ListSyncRuns(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	runs := make([]domain.SyncRun, len(rows))
	for i, row := range rows {
		runs[i] = domain.SyncRun{
			ID:              row.ID,
			Version:         row.Version,
			PatchPrefix:     row.PatchPrefix,
			Champions:       int(row.Champions),
			Items:           int(row.Items),
			Runes:           int(row.Runes),
			AggregatedStats: int(row.AggregatedStats),
			CreatedAt:       row.CreatedAt,
		}
	}
	return runs, nil
}

// Latest returns nil, nil before the first sync.
func (r *SyncHistoryRepository) Latest(ctx context.Context) (*domain.SyncRun, error) {
	runs, err := r.List(ctx, 1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}
