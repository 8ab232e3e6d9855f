package service

import (
	"context"
	"fmt"
	"riftlens/internal/config"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type MatchSummary struct {
	MatchID            string               `json:"matchId"`
	QueueID            int                  `json:"queueId"`
	GameMode           string               `json:"gameMode"`
	GameDuration       int                  `json:"gameDuration"`
	GameStartTimestamp int64                `json:"gameStartTimestamp"`
	ChampionID         int                  `json:"championId"`
	ChampionName       string               `json:"championName"`
	Win                bool                 `json:"win"`
	Kills              int                  `json:"kills"`
	Deaths             int                  `json:"deaths"`
	Assists            int                  `json:"assists"`
	CS                 int                  `json:"cs"`
	VisionScore        int                  `json:"visionScore"`
	GoldEarned         int                  `json:"goldEarned"`
	Items              [7]int               `json:"items"`
	Summoner1ID        int                  `json:"summoner1Id"`
	Summoner2ID        int                  `json:"summoner2Id"`
	PrimaryRuneStyle   int                  `json:"primaryRuneStyle"`
	PrimaryRune        int                  `json:"primaryRune"`
	Role               string               `json:"role"`
	Participants       []ParticipantPreview `json:"participants"`
}

type ParticipantPreview struct {
	Puuid          string `json:"puuid"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
}

type OutcomeStatus string

const (
	OutcomeIngested      OutcomeStatus = "ingested"
	OutcomeAlreadyCached OutcomeStatus = "cached"
	OutcomeFailed        OutcomeStatus = "failed"
)

// IngestOutcome is the tagged result of one per-match unit.
type IngestOutcome struct {
	MatchID string
	Status  OutcomeStatus
	Err     error
}

type IngestFailure struct {
	MatchID string `json:"matchId"`
	Error   string `json:"error"`
}

type IngestReport struct {
	Ingested      []string        `json:"ingested"`
	AlreadyCached []string        `json:"alreadyCached"`
	Failed        []IngestFailure `json:"failed"`
}

type IngestResult struct {
	Summaries []MatchSummary `json:"summaries"`
	Report    IngestReport   `json:"report"`
}

type MatchService struct {
	riot        RiotGateway
	repo        MatchRepository
	logger      zerolog.Logger
	concurrency int
	timelines   bool
	flight      singleflight.Group
}

func NewMatchService(riot RiotGateway, repo MatchRepository, cfg *config.Config, logger zerolog.Logger) *MatchService {
	concurrency := cfg.IngestConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &MatchService{
		riot:        riot,
		repo:        repo,
		logger:      logger,
		concurrency: concurrency,
		timelines:   cfg.IngestTimelines,
	}
}

// Ingest backfills the player's most recent matches into the cache and
// returns summaries read back from the cache. Failure to list match ids is
// the only fatal error; each match is ingested independently.
func (s *MatchService) Ingest(ctx context.Context, region domain.Region, puuid string, count int) (IngestResult, error) {
	result := IngestResult{Summaries: []MatchSummary{}}
	if !region.Valid() {
		return result, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	count = clamp(count, constants.MinMatchCount, constants.MaxMatchCount)

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	idsCtx, idsCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	ids, err := s.riot.GetMatchIDs(idsCtx, region, puuid, 0, count)
	idsCancel()
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to list match ids")
		return result, fmt.Errorf("failed to list match ids: %w", err)
	}

	s.logger.Info().Str("puuid", puuid).Int("match_count", len(ids)).Msg("ingesting matches")

	outcomes := make([]IngestOutcome, len(ids))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = s.ingestOne(ctx, region, id)
			return nil
		})
	}
	_ = g.Wait()

	result.Report = buildReport(outcomes)
	s.logger.Info().
		Str("puuid", puuid).
		Int("ingested", len(result.Report.Ingested)).
		Int("cached", len(result.Report.AlreadyCached)).
		Int("failed", len(result.Report.Failed)).
		Msg("ingestion finished")

	result.Summaries, err = s.summaries(ctx, puuid, count)
	if err != nil {
		return result, fmt.Errorf("failed to read cached matches: %w", err)
	}
	return result, nil
}

func (s *MatchService) ingestOne(ctx context.Context, region domain.Region, matchID string) IngestOutcome {
	v, err, _ := s.flight.Do(matchID, func() (any, error) {
		return s.fetchAndStore(ctx, region, matchID)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("match ingestion failed, skipping")
		return IngestOutcome{MatchID: matchID, Status: OutcomeFailed, Err: err}
	}
	return IngestOutcome{MatchID: matchID, Status: v.(OutcomeStatus)}
}

func (s *MatchService) fetchAndStore(ctx context.Context, region domain.Region, matchID string) (OutcomeStatus, error) {
	exists, err := s.repo.Exists(ctx, matchID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("failed to check cache: %w", err)
	}
	if exists {
		return OutcomeAlreadyCached, nil
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	dto, err := s.riot.GetMatch(apiCtx, region, matchID)
	cancel()
	if err != nil {
		return OutcomeFailed, fmt.Errorf("failed to fetch match: %w", err)
	}

	match := matchFromDTO(region, matchID, dto)
	inserted, err := s.repo.InsertWithParticipants(ctx, match, participantsFromDTO(match.MatchID, dto))
	if err != nil {
		return OutcomeFailed, fmt.Errorf("failed to store match: %w", err)
	}
	if !inserted {
		return OutcomeAlreadyCached, nil
	}

	if s.timelines {
		s.attachTimeline(ctx, region, match.MatchID)
	}
	return OutcomeIngested, nil
}

// attachTimeline is best-effort; failures only log.
func (s *MatchService) attachTimeline(ctx context.Context, region domain.Region, matchID string) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	raw, err := s.riot.GetMatchTimeline(apiCtx, region, matchID)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("timeline unavailable")
		return
	}
	encoded, err := encodeTimeline(transformTimeline(raw))
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to encode timeline")
		return
	}
	if _, err := s.repo.SetTimeline(ctx, matchID, encoded); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to store timeline")
	}
}

func buildReport(outcomes []IngestOutcome) IngestReport {
	report := IngestReport{Ingested: []string{}, AlreadyCached: []string{}, Failed: []IngestFailure{}}
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeIngested:
			report.Ingested = append(report.Ingested, o.MatchID)
		case OutcomeAlreadyCached:
			report.AlreadyCached = append(report.AlreadyCached, o.MatchID)
		default:
			msg := "unknown failure"
			if o.Err != nil {
				msg = o.Err.Error()
			}
			report.Failed = append(report.Failed, IngestFailure{MatchID: o.MatchID, Error: msg})
		}
	}
	return report
}

func (s *MatchService) summaries(ctx context.Context, puuid string, count int) ([]MatchSummary, error) {
	matches, err := s.repo.ListRecentByPuuid(ctx, puuid, count)
	if err != nil {
		return []MatchSummary{}, err
	}

	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		participants, err := s.repo.Participants(ctx, m.MatchID)
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", m.MatchID).Msg("failed to read participants, skipping summary")
			continue
		}
		if summary, ok := summarize(m, participants, puuid); ok {
			out = append(out, summary)
		}
	}
	return out, nil
}

func summarize(m domain.Match, participants []domain.MatchParticipant, puuid string) (MatchSummary, bool) {
	var self *domain.MatchParticipant
	previews := make([]ParticipantPreview, len(participants))
	for i := range participants {
		p := &participants[i]
		if p.Puuid == puuid {
			self = p
		}
		previews[i] = ParticipantPreview{
			Puuid:          p.Puuid,
			ChampionID:     p.ChampionID,
			ChampionName:   p.ChampionName,
			TeamID:         p.TeamID,
			RiotIDGameName: p.RiotIDGameName,
			RiotIDTagline:  p.RiotIDTagline,
		}
	}
	if self == nil {
		return MatchSummary{}, false
	}

	return MatchSummary{
		MatchID:            m.MatchID,
		QueueID:            m.QueueID,
		GameMode:           m.GameMode,
		GameDuration:       m.GameDuration,
		GameStartTimestamp: m.GameStartTS,
		ChampionID:         self.ChampionID,
		ChampionName:       self.ChampionName,
		Win:                self.Win,
		Kills:              self.Kills,
		Deaths:             self.Deaths,
		Assists:            self.Assists,
		CS:                 self.TotalMinionsKilled,
		VisionScore:        self.VisionScore,
		GoldEarned:         self.GoldEarned,
		Items:              self.Items,
		Summoner1ID:        self.Summoner1ID,
		Summoner2ID:        self.Summoner2ID,
		PrimaryRuneStyle:   deref(self.PrimaryRuneStyle),
		PrimaryRune:        deref(self.PrimaryRune0),
		Role:               deref(self.Role),
		Participants:       previews,
	}, true
}
