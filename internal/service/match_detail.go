package service

import (
	"context"
	"fmt"
	"riftlens/internal/api"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
)

type MatchDetail struct {
	MatchID            string              `json:"matchId"`
	QueueID            int                 `json:"queueId"`
	GameMode           string              `json:"gameMode"`
	GameDuration       int                 `json:"gameDuration"`
	GameVersion        string              `json:"gameVersion"`
	GameStartTimestamp int64               `json:"gameStartTimestamp"`
	Teams              []TeamDetail        `json:"teams"`
	Participants       []ParticipantDetail `json:"participants"`
	Timeline           *Timeline           `json:"timeline"`
}

type TeamDetail struct {
	TeamID     int          `json:"teamId"`
	Win        bool         `json:"win"`
	TotalKills int          `json:"totalKills"`
	TotalGold  int          `json:"totalGold"`
	Dragons    int          `json:"dragons"`
	Barons     int          `json:"barons"`
	Towers     int          `json:"towers"`
	Inhibitors int          `json:"inhibitors"`
	Bans       []api.BanDTO `json:"bans"`
}

type ParticipantDetail struct {
	Puuid              string `json:"puuid"`
	ParticipantID      int    `json:"participantId"`
	RiotIDGameName     string `json:"riotIdGameName"`
	RiotIDTagline      string `json:"riotIdTagline"`
	TeamID             int    `json:"teamId"`
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	ChampLevel         int    `json:"champLevel"`
	Win                bool   `json:"win"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	CS                 int    `json:"cs"`
	VisionScore        int    `json:"visionScore"`
	WardsPlaced        int    `json:"wardsPlaced"`
	WardsKilled        int    `json:"wardsKilled"`
	GoldEarned         int    `json:"goldEarned"`
	TotalDamage        int    `json:"totalDamage"`
	PhysicalDamage     int    `json:"physicalDamage"`
	MagicDamage        int    `json:"magicDamage"`
	TrueDamage         int    `json:"trueDamage"`
	DamageTaken        int    `json:"damageTaken"`
	Items              [7]int `json:"items"`
	Summoner1ID        int    `json:"summoner1Id"`
	Summoner2ID        int    `json:"summoner2Id"`
	PrimaryRuneStyle   int    `json:"primaryRuneStyle"`
	PrimaryRune        int    `json:"primaryRune"`
	SecondaryRuneStyle int    `json:"secondaryRuneStyle"`
	Role               string `json:"role"`
}

type MatchDetailService struct {
	riot   RiotGateway
	repo   MatchRepository
	logger zerolog.Logger
}

func NewMatchDetailService(riot RiotGateway, repo MatchRepository, logger zerolog.Logger) *MatchDetailService {
	return &MatchDetailService{riot: riot, repo: repo, logger: logger}
}

// Get serves a match from the cache when present, otherwise from upstream
// with a best-effort write-back. The region comes from the match id prefix.
func (s *MatchDetailService) Get(ctx context.Context, matchID string) (*MatchDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	region := domain.RegionFromMatchID(matchID)
	s.logger.Debug().Str("match_id", matchID).Str("region", region.String()).Msg("getting match")

	cached, err := s.repo.Get(ctx, matchID)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("match cache lookup failed")
	}
	if cached != nil {
		participants, err := s.repo.Participants(ctx, matchID)
		if err == nil && len(participants) > 0 {
			s.logger.Info().Str("match_id", matchID).Msg("match found in cache")
			return s.fromCache(ctx, region, cached, participants), nil
		}
		s.logger.Warn().Err(err).Str("match_id", matchID).Int("player_count", len(participants)).Msg("incomplete cached match, refetching")
	}

	return s.fetchAndStore(ctx, region, matchID)
}

func (s *MatchDetailService) fetchAndStore(ctx context.Context, region domain.Region, matchID string) (*MatchDetail, error) {
	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	dto, err := s.riot.GetMatch(apiCtx, region, matchID)
	apiCancel()
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to fetch match")
		return nil, fmt.Errorf("%w: %s: %v", ErrMatchNotFound, matchID, err)
	}

	timeline := s.fetchTimeline(ctx, region, matchID)

	match := matchFromDTO(region, matchID, dto)
	if _, err := s.repo.InsertWithParticipants(ctx, match, participantsFromDTO(match.MatchID, dto)); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to cache match")
	} else if timeline != nil {
		s.storeTimeline(ctx, match.MatchID, *timeline)
	}

	return detailFromDTO(match.MatchID, dto, timeline), nil
}

func (s *MatchDetailService) fromCache(ctx context.Context, region domain.Region, m *domain.Match, participants []domain.MatchParticipant) *MatchDetail {
	var timeline *Timeline
	if len(m.Timeline) > 0 {
		t, err := decodeTimeline(m.Timeline)
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", m.MatchID).Msg("stored timeline unreadable")
		}
		timeline = t
	} else if timeline = s.fetchTimeline(ctx, region, m.MatchID); timeline != nil {
		s.storeTimeline(ctx, m.MatchID, *timeline)
	}

	detail := &MatchDetail{
		MatchID:            m.MatchID,
		QueueID:            m.QueueID,
		GameMode:           m.GameMode,
		GameDuration:       m.GameDuration,
		GameVersion:        m.GameVersion,
		GameStartTimestamp: m.GameStartTS,
		Teams:              make([]TeamDetail, 0, 2),
		Participants:       make([]ParticipantDetail, 0, len(participants)),
		Timeline:           timeline,
	}

	for _, teamID := range []int{100, 200} {
		team := TeamDetail{TeamID: teamID, Bans: []api.BanDTO{}}
		first := true
		for _, p := range participants {
			if p.TeamID != teamID {
				continue
			}
			if first {
				team.Win = p.Win
				first = false
			}
			team.TotalKills += p.Kills
			team.TotalGold += p.GoldEarned
		}
		detail.Teams = append(detail.Teams, team)
	}

	for _, p := range participants {
		detail.Participants = append(detail.Participants, participantDetail(p))
	}
	return detail
}

func (s *MatchDetailService) fetchTimeline(ctx context.Context, region domain.Region, matchID string) *Timeline {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	raw, err := s.riot.GetMatchTimeline(apiCtx, region, matchID)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("timeline unavailable")
		return nil
	}
	t := transformTimeline(raw)
	return &t
}

func (s *MatchDetailService) storeTimeline(ctx context.Context, matchID string, t Timeline) {
	encoded, err := encodeTimeline(t)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to encode timeline")
		return
	}
	if _, err := s.repo.SetTimeline(ctx, matchID, encoded); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to cache timeline")
	}
}

func detailFromDTO(matchID string, dto *api.MatchDTO, timeline *Timeline) *MatchDetail {
	info := dto.Info
	detail := &MatchDetail{
		MatchID:            matchID,
		QueueID:            info.QueueID,
		GameMode:           info.GameMode,
		GameDuration:       info.GameDuration,
		GameVersion:        info.GameVersion,
		GameStartTimestamp: info.GameStartTimestamp,
		Teams:              make([]TeamDetail, 0, len(info.Teams)),
		Participants:       make([]ParticipantDetail, 0, len(info.Participants)),
		Timeline:           timeline,
	}

	for _, t := range info.Teams {
		team := TeamDetail{
			TeamID:     t.TeamID,
			Win:        t.Win,
			Dragons:    t.Objectives["dragon"].Kills,
			Barons:     t.Objectives["baron"].Kills,
			Towers:     t.Objectives["tower"].Kills,
			Inhibitors: t.Objectives["inhibitor"].Kills,
			Bans:       t.Bans,
		}
		if team.Bans == nil {
			team.Bans = []api.BanDTO{}
		}
		for _, p := range info.Participants {
			if p.TeamID == t.TeamID {
				team.TotalKills += p.Kills
				team.TotalGold += p.GoldEarned
			}
		}
		detail.Teams = append(detail.Teams, team)
	}

	for _, p := range participantsFromDTO(detail.MatchID, dto) {
		detail.Participants = append(detail.Participants, participantDetail(p))
	}
	return detail
}

func participantDetail(p domain.MatchParticipant) ParticipantDetail {
	return ParticipantDetail{
		Puuid:              p.Puuid,
		ParticipantID:      p.ParticipantID,
		RiotIDGameName:     p.RiotIDGameName,
		RiotIDTagline:      p.RiotIDTagline,
		TeamID:             p.TeamID,
		ChampionID:         p.ChampionID,
		ChampionName:       p.ChampionName,
		ChampLevel:         p.ChampLevel,
		Win:                p.Win,
		Kills:              p.Kills,
		Deaths:             p.Deaths,
		Assists:            p.Assists,
		CS:                 p.TotalMinionsKilled,
		VisionScore:        p.VisionScore,
		WardsPlaced:        p.WardsPlaced,
		WardsKilled:        p.WardsKilled,
		GoldEarned:         p.GoldEarned,
		TotalDamage:        p.TotalDamageDealt,
		PhysicalDamage:     p.PhysicalDamageDealt,
		MagicDamage:        p.MagicDamageDealt,
		TrueDamage:         p.TrueDamageDealt,
		DamageTaken:        p.TotalDamageTaken,
		Items:              p.Items,
		Summoner1ID:        p.Summoner1ID,
		Summoner2ID:        p.Summoner2ID,
		PrimaryRuneStyle:   deref(p.PrimaryRuneStyle),
		PrimaryRune:        deref(p.PrimaryRune0),
		SecondaryRuneStyle: deref(p.SecondaryRuneStyle),
		Role:               deref(p.Role),
	}
}
