package db

import (
	"context"
	"time"
)

const summonerColumns = `puuid, game_name, tag_line, region, summoner_id, profile_icon_id, summoner_level,
    solo_tier, solo_rank, solo_lp, solo_wins, solo_losses,
    flex_tier, flex_rank, flex_lp, flex_wins, flex_losses, updated_at`

func scanSummoner(row interface{ Scan(...interface{}) error }) (Summoner, error) {
	var i Summoner
	err := row.Scan(
		&i.Puuid,
		&i.GameName,
		&i.TagLine,
		&i.Region,
		&i.SummonerID,
		&i.ProfileIconID,
		&i.SummonerLevel,
		&i.SoloTier,
		&i.SoloRank,
		&i.SoloLp,
		&i.SoloWins,
		&i.SoloLosses,
		&i.FlexTier,
		&i.FlexRank,
		&i.FlexLp,
		&i.FlexWins,
		&i.FlexLosses,
		&i.UpdatedAt,
	)
	return i, err
}

const getSummonerByRiotID = `
SELECT ` + summonerColumns + `
FROM summoners
WHERE region = ? AND game_name_lc = ? AND tag_line_lc = ?
ORDER BY updated_at DESC
LIMIT 1
`

// GetSummonerByRiotIDParams expects name and tag already case-folded.
type GetSummonerByRiotIDParams struct {
	Region     string
	GameNameLc string
	TagLineLc  string
}

func (q *Queries) GetSummonerByRiotID(ctx context.Context, arg GetSummonerByRiotIDParams) (Summoner, error) {
	row := q.db.QueryRowContext(ctx, getSummonerByRiotID, arg.Region, arg.GameNameLc, arg.TagLineLc)
	return scanSummoner(row)
}

const upsertSummoner = `
INSERT INTO summoners (` + summonerColumns + `, game_name_lc, tag_line_lc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(puuid) DO UPDATE SET
    game_name = excluded.game_name,
    tag_line = excluded.tag_line,
    game_name_lc = excluded.game_name_lc,
    tag_line_lc = excluded.tag_line_lc,
    region = excluded.region,
    summoner_id = excluded.summoner_id,
    profile_icon_id = excluded.profile_icon_id,
    summoner_level = excluded.summoner_level,
    solo_tier = excluded.solo_tier,
    solo_rank = excluded.solo_rank,
    solo_lp = excluded.solo_lp,
    solo_wins = excluded.solo_wins,
    solo_losses = excluded.solo_losses,
    flex_tier = excluded.flex_tier,
    flex_rank = excluded.flex_rank,
    flex_lp = excluded.flex_lp,
    flex_wins = excluded.flex_wins,
    flex_losses = excluded.flex_losses,
    updated_at = excluded.updated_at
`

type UpsertSummonerParams struct {
	Puuid         string
	GameName      string
	TagLine       string
	Region        string
	SummonerID    *string
	ProfileIconID int64
	SummonerLevel int64
	SoloTier      *string
	SoloRank      *string
	SoloLp        *int64
	SoloWins      *int64
	SoloLosses    *int64
	FlexTier      *string
	FlexRank      *string
	FlexLp        *int64
	FlexWins      *int64
	FlexLosses    *int64
	UpdatedAt     time.Time
	GameNameLc    string
	TagLineLc     string
}

func (q *Queries) UpsertSummoner(ctx context.Context, arg UpsertSummonerParams) error {
	_, err := q.db.ExecContext(ctx, upsertSummoner,
		arg.Puuid,
		arg.GameName,
		arg.TagLine,
		arg.Region,
		arg.SummonerID,
		arg.ProfileIconID,
		arg.SummonerLevel,
		arg.SoloTier,
		arg.SoloRank,
		arg.SoloLp,
		arg.SoloWins,
		arg.SoloLosses,
		arg.FlexTier,
		arg.FlexRank,
		arg.FlexLp,
		arg.FlexWins,
		arg.FlexLosses,
		arg.UpdatedAt,
		arg.GameNameLc,
		arg.TagLineLc,
	)
	return err
}
