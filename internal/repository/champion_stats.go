package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
)

type ChampionStatsRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewChampionStatsRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ChampionStatsRepository {
	return &ChampionStatsRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// GroupByChampionRole returns one partial stat per (champion, role) for
// participants on the patchPrefix bucket, plus the total participant count
// under the same filter. Both reads share one transaction so the total
// always matches the groups. "15.1" covers 15.1 and 15.1.x but not 15.10.
func (r *ChampionStatsRepository) GroupByChampionRole(ctx context.Context, patchPrefix string) ([]domain.ChampionStat, int, error) {
	bucket := strings.TrimSuffix(patchPrefix, ".")
	params := db.PatchBucketParams{Version: bucket, VersionPrefix: bucket + "."}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	rows, err := qtx.AggregateParticipantsByPatch(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to group participants: %w", err)
	}
	total, err := qtx.CountParticipantsByPatch(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count participants: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to close read transaction: %w", err)
	}

	groups := make([]domain.ChampionStat, len(rows))
	for i, row := range rows {
		groups[i] = domain.ChampionStat{
			ChampionID:   int(row.ChampionID),
			PatchVersion: patchPrefix,
			Role:         row.Role,
			GamesPlayed:  int(row.GamesPlayed),
			Wins:         int(row.Wins),
			AvgKills:     row.AvgKills,
			AvgDeaths:    row.AvgDeaths,
			AvgAssists:   row.AvgAssists,
		}
	}
	return groups, int(total), nil
}

// Save overwrites every stat row it is given in a single transaction.
func (r *ChampionStatsRepository) Save(ctx context.Context, stats []domain.ChampionStat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for _, s := range stats {
		err := qtx.UpsertChampionStat(ctx, db.UpsertChampionStatParams{
			ChampionID:   int64(s.ChampionID),
			PatchVersion: s.PatchVersion,
			Tier:         s.Tier,
			Role:         s.Role,
			GamesPlayed:  int64(s.GamesPlayed),
			Wins:         int64(s.Wins),
			Picks:        int64(s.Picks),
			Bans:         int64(s.Bans),
			TotalGames:   int64(s.TotalGames),
			AvgKills:     s.AvgKills,
			AvgDeaths:    s.AvgDeaths,
			AvgAssists:   s.AvgAssists,
			UpdatedAt:    s.UpdatedAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to upsert stat %d/%s/%s: %w", s.ChampionID, s.PatchVersion, s.Role, err)
		}
	}

	return tx.Commit()
}

func (r *ChampionStatsRepository) List(ctx context.Context, patch, tier, role string) ([]domain.ChampionStat, error) {
	rows, err := r.queries.ListChampionStats(ctx, db.ListChampionStatsParams{
		PatchVersion: patch,
		Tier:         tier,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return toDomainStats(rows), nil
}

func (r *ChampionStatsRepository) ListByChampion(ctx context.Context, championID int, patch string) ([]domain.ChampionStat, error) {
	rows, err := r.queries.ListChampionStatsByChampion(ctx, db.ListChampionStatsByChampionParams{
		ChampionID:   int64(championID),
		PatchVersion: patch,
	})
	if err != nil {
		return nil, err
	}
	return toDomainStats(rows), nil
}

func toDomainStats(rows []db.ChampionStat) []domain.ChampionStat {
	stats := make([]domain.ChampionStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.ChampionStat{
			ChampionID:   int(row.ChampionID),
			PatchVersion: row.PatchVersion,
			Tier:         row.Tier,
			Role:         row.Role,
			GamesPlayed:  int(row.GamesPlayed),
			Wins:         int(row.Wins),
			Picks:        int(row.Picks),
			Bans:         int(row.Bans),
			TotalGames:   int(row.TotalGames),
			AvgKills:     row.AvgKills,
			AvgDeaths:    row.AvgDeaths,
			AvgAssists:   row.AvgAssists,
			UpdatedAt:    row.UpdatedAt,
		}
	}
	return stats
}
