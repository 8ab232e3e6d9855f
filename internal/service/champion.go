package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"riftlens/internal/config"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
)

type ChampionTierEntry struct {
	ChampionID    int     `json:"championId"`
	ChampionName  string  `json:"championName"`
	ChampionKey   string  `json:"championKey"`
	Role          string  `json:"role"`
	Tier          string  `json:"tier"`
	WinRate       float64 `json:"winRate"`
	PickRate      float64 `json:"pickRate"`
	BanRate       float64 `json:"banRate"`
	GamesPlayed   int     `json:"gamesPlayed"`
	AvgKDA        float64 `json:"avgKDA"`
	WinRateDelta  float64 `json:"winRateDelta"`
	PickRateDelta float64 `json:"pickRateDelta"`
}

type ChampionDetail struct {
	ChampionID    int        `json:"championId"`
	ChampionName  string     `json:"championName"`
	ChampionKey   string     `json:"championKey"`
	ChampionTitle string     `json:"championTitle"`
	Tags          []string   `json:"tags"`
	Role          string     `json:"role"`
	WinRate       float64    `json:"winRate"`
	PickRate      float64    `json:"pickRate"`
	BanRate       float64    `json:"banRate"`
	GamesPlayed   int        `json:"gamesPlayed"`
	Builds        []struct{} `json:"builds"`
	Runes         []struct{} `json:"runes"`
	SkillOrder    []struct{} `json:"skillOrder"`
	Matchups      []struct{} `json:"matchups"`
}

const fallbackRole = string(domain.RoleMid)

type ChampionService struct {
	stats        ChampionStatsReader
	refs         ReferenceRepository
	history      SyncHistory
	defaultPatch string
	logger       zerolog.Logger
}

func NewChampionService(stats ChampionStatsReader, refs ReferenceRepository, history SyncHistory, cfg *config.Config, logger zerolog.Logger) *ChampionService {
	return &ChampionService{
		stats:        stats,
		refs:         refs,
		history:      history,
		defaultPatch: cfg.DefaultPatch,
		logger:       logger,
	}
}

// TierList returns one entry per aggregated (champion, role) row for the
// patch, or every known champion with zero stats when nothing is aggregated.
func (s *ChampionService) TierList(ctx context.Context, patch, tier, role string) ([]ChampionTierEntry, error) {
	patch = s.resolvePatch(ctx, patch)
	tier = filterValue(tier)
	role = filterValue(role)

	stats, err := s.stats.List(ctx, patch, tier, role)
	if err != nil {
		s.logger.Error().Err(err).Str("patch", patch).Msg("failed to list champion stats")
		return nil, fmt.Errorf("failed to list champion stats: %w", err)
	}

	champions, err := s.refs.ListChampions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}

	if len(stats) == 0 {
		s.logger.Info().Str("patch", patch).Int("champions", len(champions)).Msg("no champion stats, returning placeholder tier list")
		entries := make([]ChampionTierEntry, 0, len(champions))
		for _, c := range champions {
			entries = append(entries, ChampionTierEntry{
				ChampionID:   c.ID,
				ChampionName: c.Name,
				ChampionKey:  c.Key,
				Role:         fallbackRole,
				Tier:         string(domain.TierB),
			})
		}
		return entries, nil
	}

	byID := make(map[int]domain.Champion, len(champions))
	for _, c := range champions {
		byID[c.ID] = c
	}

	entries := make([]ChampionTierEntry, 0, len(stats))
	for _, st := range stats {
		winRate := percent(st.Wins, st.GamesPlayed)
		entry := ChampionTierEntry{
			ChampionID:  st.ChampionID,
			Role:        st.Role,
			Tier:        string(domain.TierFor(winRate)),
			WinRate:     round2(winRate),
			PickRate:    round2(percent(st.Picks, st.TotalGames)),
			BanRate:     round2(percent(st.Bans, st.TotalGames)),
			GamesPlayed: st.GamesPlayed,
			AvgKDA:      round2(kda(st.AvgKills, st.AvgDeaths, st.AvgAssists)),
		}
		if entry.Role == "" {
			entry.Role = fallbackRole
		}
		if c, ok := byID[st.ChampionID]; ok {
			entry.ChampionName = c.Name
			entry.ChampionKey = c.Key
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Detail sums a champion's aggregated rows across roles for the patch its
// catalog entry was synced at.
func (s *ChampionService) Detail(ctx context.Context, championID int) (*ChampionDetail, error) {
	champion, err := s.refs.GetChampion(ctx, championID)
	if err != nil {
		return nil, fmt.Errorf("failed to get champion: %w", err)
	}
	if champion == nil {
		return nil, fmt.Errorf("%w: %d", ErrChampionNotFound, championID)
	}

	patch := domain.PatchPrefix(champion.PatchVersion)
	if patch == "" {
		patch = s.resolvePatch(ctx, "")
	}

	stats, err := s.stats.ListByChampion(ctx, championID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to list champion stats: %w", err)
	}

	var wins, games, picks, bans, overall, bestGames int
	bestRole := fallbackRole
	for _, st := range stats {
		wins += st.Wins
		games += st.GamesPlayed
		picks += st.Picks
		bans += st.Bans
		overall = max(overall, st.TotalGames)
		if st.GamesPlayed > bestGames && st.Role != "" {
			bestGames = st.GamesPlayed
			bestRole = st.Role
		}
	}

	tags := champion.Tags
	if tags == nil {
		tags = []string{}
	}

	return &ChampionDetail{
		ChampionID:    champion.ID,
		ChampionName:  champion.Name,
		ChampionKey:   champion.Key,
		ChampionTitle: champion.Title,
		Tags:          tags,
		Role:          bestRole,
		WinRate:       round2(percent(wins, games)),
		PickRate:      round2(percent(picks, overall)),
		BanRate:       round2(percent(bans, overall)),
		GamesPlayed:   games,
		Builds:        []struct{}{},
		Runes:         []struct{}{},
		SkillOrder:    []struct{}{},
		Matchups:      []struct{}{},
	}, nil
}

// resolvePatch maps a requested patch to the major.minor prefix stats are
// keyed by. Empty means the last synced patch, then DEFAULT_PATCH.
func (s *ChampionService) resolvePatch(ctx context.Context, patch string) string {
	if p := strings.TrimSpace(patch); p != "" {
		return domain.PatchPrefix(p)
	}
	if s.history != nil {
		latest, err := s.history.Latest(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to read latest sync run")
		}
		if latest != nil && latest.PatchPrefix != "" {
			return latest.PatchPrefix
		}
	}
	return domain.PatchPrefix(s.defaultPatch)
}

func filterValue(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		return constants.StatTierAll
	}
	return v
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func kda(kills, deaths, assists float64) float64 {
	if deaths > 0 {
		return (kills + assists) / deaths
	}
	return kills + assists
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
