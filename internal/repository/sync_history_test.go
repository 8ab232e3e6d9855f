package repository

import (
	"context"
	"testing"
	"time"

	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncHistoryRepository_RecordAndLatest(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewSyncHistoryRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Now().Add(-time.Hour)
	firstID, err := repo.Record(ctx, domain.SyncRun{Version: "15.9.1", PatchPrefix: "15.9", CreatedAt: base})
	require.NoError(t, err)
	assert.Len(t, firstID, 21)

	_, err = repo.Record(ctx, domain.SyncRun{ID: "fixed", Version: "15.10.1", PatchPrefix: "15.10", Champions: 170, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "fixed", latest.ID)
	assert.Equal(t, "15.10", latest.PatchPrefix)
	assert.Equal(t, 170, latest.Champions)

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
