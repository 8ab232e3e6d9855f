package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"riftlens/internal/api"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type PlayerService struct {
	riot   RiotGateway
	repo   PlayerRepository
	logger zerolog.Logger
	flight singleflight.Group
	now    func() time.Time
}

func NewPlayerService(riot RiotGateway, repo PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: riot, repo: repo, logger: logger, now: time.Now}
}

// Resolve returns the profile for a Riot ID, served from cache while it is
// younger than PlayerRefreshTTL. Any failure of the account or summoner
// lookup surfaces as ErrPlayerNotFound.
func (s *PlayerService) Resolve(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error) {
	if !region.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	cached, err := s.repo.GetByRiotID(ctx, region, gameName, tagLine)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("summoner cache lookup failed")
	}
	if cached != nil && s.fresh(cached) {
		s.logger.Info().Str("puuid", cached.Puuid).Msg("returning cached summoner")
		return cached, nil
	}

	key := region.String() + "/" + strings.ToLower(gameName) + "#" + strings.ToLower(tagLine)
	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.fetch(ctx, region, gameName, tagLine)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Player), nil
}

func (s *PlayerService) fresh(p *domain.Player) bool {
	age := s.now().Sub(p.UpdatedAt)
	s.logger.Debug().
		Str("puuid", p.Puuid).
		Time("updated_at", p.UpdatedAt).
		Dur("age", age).
		Dur("ttl", constants.PlayerRefreshTTL).
		Msg("checking summoner freshness")
	return age < constants.PlayerRefreshTTL
}

func (s *PlayerService) fetch(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error) {
	s.logger.Info().Str("region", region.String()).Str("game_name", gameName).Str("tag_line", tagLine).Msg("resolving summoner upstream")

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	account, err := s.riot.GetAccountByRiotID(apiCtx, region, gameName, tagLine)
	apiCancel()
	if err != nil {
		s.logger.Warn().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("failed to fetch account")
		return nil, fmt.Errorf("%w: %s#%s: %v", ErrPlayerNotFound, gameName, tagLine, err)
	}

	apiCtx, apiCancel = context.WithTimeout(ctx, constants.ExternalAPITimeout)
	summoner, err := s.riot.GetSummonerByPuuid(apiCtx, region, account.Puuid)
	apiCancel()
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("%w: %s#%s: %v", ErrPlayerNotFound, gameName, tagLine, err)
	}

	player := &domain.Player{
		Puuid:         account.Puuid,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		Region:        region,
		ProfileIconID: summoner.ProfileIconID,
		SummonerLevel: summoner.SummonerLevel,
	}
	if summoner.ID != "" {
		id := summoner.ID
		player.SummonerID = &id
	}
	// some accounts come back without a display name; keep what the caller asked for
	if player.GameName == "" {
		player.GameName, player.TagLine = gameName, tagLine
	}

	apiCtx, apiCancel = context.WithTimeout(ctx, constants.ExternalAPITimeout)
	entries, err := s.riot.GetLeagueEntries(apiCtx, region, account.Puuid)
	apiCancel()
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", account.Puuid).Msg("ladder lookup failed, continuing unranked")
	} else {
		player.Solo, player.Flex = partitionLadder(entries)
	}

	player.UpdatedAt = s.now()
	if err := s.repo.Upsert(ctx, player); err != nil {
		s.logger.Warn().Err(err).Str("puuid", player.Puuid).Msg("failed to cache summoner")
	}

	s.logger.Info().Str("puuid", player.Puuid).Msg("summoner resolved")
	return player, nil
}

// partitionLadder keeps the first solo and the first flex entry.
func partitionLadder(entries []api.LeagueEntryDTO) (solo, flex *domain.RankedEntry) {
	for _, e := range entries {
		entry := &domain.RankedEntry{
			Tier:     e.Tier,
			Division: e.Rank,
			Points:   e.LeaguePoints,
			Wins:     e.Wins,
			Losses:   e.Losses,
		}
		switch e.QueueType {
		case constants.LadderQueueSolo:
			if solo == nil {
				solo = entry
			}
		case constants.LadderQueueFlex:
			if flex == nil {
				flex = entry
			}
		}
	}
	return solo, flex
}

// Mastery passes through the top champion masteries; count is clamped to [1,50].
func (s *PlayerService) Mastery(ctx context.Context, region domain.Region, puuid string, count int) ([]domain.MasteryEntry, error) {
	if !region.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	count = clamp(count, constants.MinMasteryCount, constants.MaxMasteryCount)

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	rows, err := s.riot.GetTopMastery(ctx, region, puuid, count)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch mastery")
		return nil, fmt.Errorf("failed to fetch mastery: %w", err)
	}

	entries := make([]domain.MasteryEntry, len(rows))
	for i, r := range rows {
		entries[i] = domain.MasteryEntry{
			ChampionID:     r.ChampionID,
			ChampionLevel:  r.ChampionLevel,
			ChampionPoints: r.ChampionPoints,
			LastPlayTime:   r.LastPlayTime,
		}
	}
	return entries, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
