package service

import (
	"context"
	"fmt"
	"time"
	"riftlens/internal/constants"

	"github.com/rs/zerolog"
)

type AggregationService struct {
	repo   AggregationRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewAggregationService(repo AggregationRepository, logger zerolog.Logger) *AggregationService {
	return &AggregationService{repo: repo, logger: logger, now: time.Now}
}

// Aggregate recomputes every (champion, role) row for the patch prefix and
// returns how many rows were written. 0 means no participant data yet.
//
// Picks mirror games played and bans stay 0: ban data is not ingested.
func (s *AggregationService) Aggregate(ctx context.Context, patchPrefix string) (int, error) {
	groups, total, err := s.repo.GroupByChampionRole(ctx, patchPrefix)
	if err != nil {
		s.logger.Error().Err(err).Str("patch", patchPrefix).Msg("failed to group participants")
		return 0, fmt.Errorf("failed to group participants: %w", err)
	}
	if len(groups) == 0 {
		s.logger.Info().Str("patch", patchPrefix).Msg("no participant data to aggregate")
		return 0, nil
	}

	now := s.now()
	for i := range groups {
		groups[i].PatchVersion = patchPrefix
		groups[i].Tier = constants.StatTierAll
		groups[i].Picks = groups[i].GamesPlayed
		groups[i].Bans = 0
		groups[i].TotalGames = total
		groups[i].UpdatedAt = now
	}

	if err := s.repo.Save(ctx, groups); err != nil {
		s.logger.Error().Err(err).Str("patch", patchPrefix).Msg("failed to save champion stats")
		return 0, fmt.Errorf("failed to save champion stats: %w", err)
	}

	s.logger.Info().Str("patch", patchPrefix).Int("rows", len(groups)).Int("total_games", total).Msg("champion stats aggregated")
	return len(groups), nil
}
