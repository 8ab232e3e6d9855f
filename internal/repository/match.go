package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MatchRepository) Exists(ctx context.Context, matchID string) (bool, error) {
	return r.queries.MatchExists(ctx, matchID)
}

// Get returns nil, nil when the match is not cached.
func (r *MatchRepository) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	row, err := r.queries.GetMatch(ctx, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := toDomainMatch(row)
	return &m, nil
}

// InsertWithParticipants writes the match and its participant rows in one
// transaction. Rows that already exist are left untouched; inserted reports
// whether the match row was new.
func (r *MatchRepository) InsertWithParticipants(ctx context.Context, match *domain.Match, participants []domain.MatchParticipant) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	var timeline *string
	if len(match.Timeline) > 0 {
		s := string(match.Timeline)
		timeline = &s
	}

	n, err := qtx.InsertMatch(ctx, db.InsertMatchParams{
		MatchID:      match.MatchID,
		Region:       match.Region.String(),
		QueueID:      int64(match.QueueID),
		GameMode:     match.GameMode,
		GameDuration: int64(match.GameDuration),
		GameVersion:  match.GameVersion,
		GameStartTs:  match.GameStartTS,
		Timeline:     timeline,
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert match %s: %w", match.MatchID, err)
	}

	for _, p := range participants {
		if err := qtx.InsertParticipant(ctx, toParticipantParams(match.MatchID, p)); err != nil {
			return false, fmt.Errorf("failed to insert participant %s/%s: %w", match.MatchID, p.Puuid, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit match %s: %w", match.MatchID, err)
	}

	r.logger.Debug().
		Str("match_id", match.MatchID).
		Bool("inserted", n > 0).
		Int("participants", len(participants)).
		Msg("match written")

	return n > 0, nil
}

// SetTimeline stores the timeline only if none is stored yet.
func (r *MatchRepository) SetTimeline(ctx context.Context, matchID string, timeline []byte) (bool, error) {
	n, err := r.queries.SetMatchTimeline(ctx, db.SetMatchTimelineParams{
		Timeline: string(timeline),
		MatchID:  matchID,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MatchRepository) ListRecentByPuuid(ctx context.Context, puuid string, limit int) ([]domain.Match, error) {
	rows, err := r.queries.ListRecentMatchesByPuuid(ctx, db.ListRecentMatchesByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, len(rows))
	for i, row := range rows {
		matches[i] = toDomainMatch(row)
	}
	return matches, nil
}

func (r *MatchRepository) Participants(ctx context.Context, matchID string) ([]domain.MatchParticipant, error) {
	rows, err := r.queries.ListParticipantsByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	participants := make([]domain.MatchParticipant, len(rows))
	for i, row := range rows {
		participants[i] = toDomainParticipant(row)
	}
	return participants, nil
}

func toDomainMatch(row db.Match) domain.Match {
	m := domain.Match{
		MatchID:      row.MatchID,
		Region:       domain.Region(row.Region),
		QueueID:      int(row.QueueID),
		GameMode:     row.GameMode,
		GameDuration: int(row.GameDuration),
		GameVersion:  row.GameVersion,
		GameStartTS:  row.GameStartTs,
		CreatedAt:    row.CreatedAt,
	}
	if row.Timeline != nil {
		m.Timeline = []byte(*row.Timeline)
	}
	return m
}

func toParticipantParams(matchID string, p domain.MatchParticipant) db.InsertParticipantParams {
	return db.InsertParticipantParams{
		MatchID:             matchID,
		Puuid:               p.Puuid,
		ParticipantID:       int64(p.ParticipantID),
		TeamID:              int64(p.TeamID),
		ChampionID:          int64(p.ChampionID),
		ChampionName:        p.ChampionName,
		RiotIDGameName:      p.RiotIDGameName,
		RiotIDTagline:       p.RiotIDTagline,
		Role:                p.Role,
		Lane:                p.Lane,
		Win:                 p.Win,
		Kills:               int64(p.Kills),
		Deaths:              int64(p.Deaths),
		Assists:             int64(p.Assists),
		ChampLevel:          int64(p.ChampLevel),
		TotalMinionsKilled:  int64(p.TotalMinionsKilled),
		VisionScore:         int64(p.VisionScore),
		GoldEarned:          int64(p.GoldEarned),
		TotalDamageDealt:    int64(p.TotalDamageDealt),
		PhysicalDamageDealt: int64(p.PhysicalDamageDealt),
		MagicDamageDealt:    int64(p.MagicDamageDealt),
		TrueDamageDealt:     int64(p.TrueDamageDealt),
		TotalDamageTaken:    int64(p.TotalDamageTaken),
		WardsPlaced:         int64(p.WardsPlaced),
		WardsKilled:         int64(p.WardsKilled),
		Item0:               int64(p.Items[0]),
		Item1:               int64(p.Items[1]),
		Item2:               int64(p.Items[2]),
		Item3:               int64(p.Items[3]),
		Item4:               int64(p.Items[4]),
		Item5:               int64(p.Items[5]),
		Item6:               int64(p.Items[6]),
		Summoner1ID:         int64(p.Summoner1ID),
		Summoner2ID:         int64(p.Summoner2ID),
		PrimaryRuneStyle:    int64FromIntPtr(p.PrimaryRuneStyle),
		PrimaryRune0:        int64FromIntPtr(p.PrimaryRune0),
		SecondaryRuneStyle:  int64FromIntPtr(p.SecondaryRuneStyle),
	}
}

func toDomainParticipant(row db.MatchParticipant) domain.MatchParticipant {
	return domain.MatchParticipant{
		MatchID:             row.MatchID,
		Puuid:               row.Puuid,
		ParticipantID:       int(row.ParticipantID),
		TeamID:              int(row.TeamID),
		ChampionID:          int(row.ChampionID),
		ChampionName:        row.ChampionName,
		RiotIDGameName:      row.RiotIDGameName,
		RiotIDTagline:       row.RiotIDTagline,
		Role:                row.Role,
		Lane:                row.Lane,
		Win:                 row.Win,
		Kills:               int(row.Kills),
		Deaths:              int(row.Deaths),
		Assists:             int(row.Assists),
		ChampLevel:          int(row.ChampLevel),
		TotalMinionsKilled:  int(row.TotalMinionsKilled),
		VisionScore:         int(row.VisionScore),
		GoldEarned:          int(row.GoldEarned),
		TotalDamageDealt:    int(row.TotalDamageDealt),
		PhysicalDamageDealt: int(row.PhysicalDamageDealt),
		MagicDamageDealt:    int(row.MagicDamageDealt),
		TrueDamageDealt:     int(row.TrueDamageDealt),
		TotalDamageTaken:    int(row.TotalDamageTaken),
		WardsPlaced:         int(row.WardsPlaced),
		WardsKilled:         int(row.WardsKilled),
		Items: [7]int{
			int(row.Item0), int(row.Item1), int(row.Item2), int(row.Item3),
			int(row.Item4), int(row.Item5), int(row.Item6),
		},
		Summoner1ID:        int(row.Summoner1ID),
		Summoner2ID:        int(row.Summoner2ID),
		PrimaryRuneStyle:   intPtr(row.PrimaryRuneStyle),
		PrimaryRune0:       intPtr(row.PrimaryRune0),
		SecondaryRuneStyle: intPtr(row.SecondaryRuneStyle),
	}
}
