package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// GetByRiotID matches name and tag case-insensitively. It returns nil, nil on a miss.
func (r *PlayerRepository) GetByRiotID(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error) {
	row, err := r.queries.GetSummonerByRiotID(ctx, db.GetSummonerByRiotIDParams{
		Region:     region.String(),
		GameNameLc: strings.ToLower(gameName),
		TagLineLc:  strings.ToLower(tagLine),
	})
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("region", region.String()).Str("game_name", gameName).Str("tag_line", tagLine).Msg("summoner not cached")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainPlayer(row), nil
}

// Upsert replaces every mutable column of the row keyed by puuid.
func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	params := db.UpsertSummonerParams{
		Puuid:         player.Puuid,
		GameName:      player.GameName,
		TagLine:       player.TagLine,
		Region:        player.Region.String(),
		SummonerID:    player.SummonerID,
		ProfileIconID: int64(player.ProfileIconID),
		SummonerLevel: int64(player.SummonerLevel),
		UpdatedAt:     player.UpdatedAt.UTC(),
		GameNameLc:    strings.ToLower(player.GameName),
		TagLineLc:     strings.ToLower(player.TagLine),
	}
	if solo := player.Solo; solo != nil {
		params.SoloTier, params.SoloRank = &solo.Tier, &solo.Division
		params.SoloLp, params.SoloWins, params.SoloLosses = int64Ptr(solo.Points), int64Ptr(solo.Wins), int64Ptr(solo.Losses)
	}
	if flex := player.Flex; flex != nil {
		params.FlexTier, params.FlexRank = &flex.Tier, &flex.Division
		params.FlexLp, params.FlexWins, params.FlexLosses = int64Ptr(flex.Points), int64Ptr(flex.Wins), int64Ptr(flex.Losses)
	}

	if err := r.queries.UpsertSummoner(ctx, params); err != nil {
		r.logger.Error().Err(err).Str("puuid", player.Puuid).Msg("failed to upsert summoner")
		return err
	}
	return nil
}

func toDomainPlayer(row db.Summoner) *domain.Player {
	return &domain.Player{
		Puuid:         row.Puuid,
		GameName:      row.GameName,
		TagLine:       row.TagLine,
		Region:        domain.Region(row.Region),
		SummonerID:    row.SummonerID,
		ProfileIconID: int(row.ProfileIconID),
		SummonerLevel: int(row.SummonerLevel),
		Solo:          rankedEntry(row.SoloTier, row.SoloRank, row.SoloLp, row.SoloWins, row.SoloLosses),
		Flex:          rankedEntry(row.FlexTier, row.FlexRank, row.FlexLp, row.FlexWins, row.FlexLosses),
		UpdatedAt:     row.UpdatedAt,
	}
}

// a ranked entry exists only when its tier column is set
func rankedEntry(tier, rank *string, lp, wins, losses *int64) *domain.RankedEntry {
	if tier == nil {
		return nil
	}
	entry := &domain.RankedEntry{Tier: *tier}
	if rank != nil {
		entry.Division = *rank
	}
	entry.Points = intValue(lp)
	entry.Wins = intValue(wins)
	entry.Losses = intValue(losses)
	return entry
}

func int64Ptr(v int) *int64 {
	n := int64(v)
	return &n
}

func intValue(v *int64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func intPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int64FromIntPtr(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
