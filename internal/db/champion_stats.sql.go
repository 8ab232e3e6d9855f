package db

import (
	"context"
	"time"
)

// PatchBucketParams selects versions equal to Version or starting with
// VersionPrefix, which carries the trailing dot.
type PatchBucketParams struct {
	Version       string
	VersionPrefix string
}

const aggregateParticipantsByPatch = `
SELECT
    mp.champion_id,
    COALESCE(NULLIF(mp.role, ''), 'UNKNOWN') AS role,
    COUNT(*) AS games_played,
    SUM(CASE WHEN mp.win THEN 1 ELSE 0 END) AS wins,
    AVG(mp.kills) AS avg_kills,
    AVG(mp.deaths) AS avg_deaths,
    AVG(mp.assists) AS avg_assists
FROM match_participants mp
JOIN matches m ON m.match_id = mp.match_id
WHERE (m.game_version = ? OR substr(m.game_version, 1, length(?)) = ?)
GROUP BY mp.champion_id, COALESCE(NULLIF(mp.role, ''), 'UNKNOWN')
ORDER BY mp.champion_id, role
`

type AggregateParticipantsByPatchRow struct {
	ChampionID  int64
	Role        string
	GamesPlayed int64
	Wins        int64
	AvgKills    float64
	AvgDeaths   float64
	AvgAssists  float64
}

func (q *Queries) AggregateParticipantsByPatch(ctx context.Context, arg PatchBucketParams) ([]AggregateParticipantsByPatchRow, error) {
	rows, err := q.db.QueryContext(ctx, aggregateParticipantsByPatch, arg.Version, arg.VersionPrefix, arg.VersionPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AggregateParticipantsByPatchRow
	for rows.Next() {
		var i AggregateParticipantsByPatchRow
		if err := rows.Scan(
			&i.ChampionID,
			&i.Role,
			&i.GamesPlayed,
			&i.Wins,
			&i.AvgKills,
			&i.AvgDeaths,
			&i.AvgAssists,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countParticipantsByPatch = `
SELECT COUNT(*)
FROM match_participants mp
JOIN matches m ON m.match_id = mp.match_id
WHERE (m.game_version = ? OR substr(m.game_version, 1, length(?)) = ?)
`

func (q *Queries) CountParticipantsByPatch(ctx context.Context, arg PatchBucketParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countParticipantsByPatch, arg.Version, arg.VersionPrefix, arg.VersionPrefix)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const upsertChampionStat = `
INSERT INTO champion_stats (
    champion_id, patch_version, tier, role, games_played, wins, picks, bans, total_games,
    avg_kills, avg_deaths, avg_assists, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(champion_id, patch_version, tier, role) DO UPDATE SET
    games_played = excluded.games_played,
    wins = excluded.wins,
    picks = excluded.picks,
    bans = excluded.bans,
    total_games = excluded.total_games,
    avg_kills = excluded.avg_kills,
    avg_deaths = excluded.avg_deaths,
    avg_assists = excluded.avg_assists,
    updated_at = excluded.updated_at
`

type UpsertChampionStatParams struct {
	ChampionID   int64
	PatchVersion string
	Tier         string
	Role         string
	GamesPlayed  int64
	Wins         int64
	Picks        int64
	Bans         int64
	TotalGames   int64
	AvgKills     float64
	AvgDeaths    float64
	AvgAssists   float64
	UpdatedAt    time.Time
}

func (q *Queries) UpsertChampionStat(ctx context.Context, arg UpsertChampionStatParams) error {
	_, err := q.db.ExecContext(ctx, upsertChampionStat,
		arg.ChampionID,
		arg.PatchVersion,
		arg.Tier,
		arg.Role,
		arg.GamesPlayed,
		arg.Wins,
		arg.Picks,
		arg.Bans,
		arg.TotalGames,
		arg.AvgKills,
		arg.AvgDeaths,
		arg.AvgAssists,
		arg.UpdatedAt,
	)
	return err
}

const championStatColumns = `champion_id, patch_version, tier, role, games_played, wins, picks, bans, total_games,
    avg_kills, avg_deaths, avg_assists, updated_at`

const listChampionStats = `
SELECT ` + championStatColumns + `
FROM champion_stats
WHERE patch_version = ?
  AND (? = 'ALL' OR tier = ?)
  AND (? = 'ALL' OR role = ?)
ORDER BY games_played DESC, champion_id
`

type ListChampionStatsParams struct {
	PatchVersion string
	Tier         string
	Role         string
}

func (q *Queries) ListChampionStats(ctx context.Context, arg ListChampionStatsParams) ([]ChampionStat, error) {
	return q.queryChampionStats(ctx, listChampionStats,
		arg.PatchVersion, arg.Tier, arg.Tier, arg.Role, arg.Role)
}

const listChampionStatsByChampion = `
SELECT ` + championStatColumns + `
FROM champion_stats
WHERE champion_id = ? AND patch_version = ?
ORDER BY games_played DESC
`

type ListChampionStatsByChampionParams struct {
	ChampionID   int64
	PatchVersion string
}

func (q *Queries) ListChampionStatsByChampion(ctx context.Context, arg ListChampionStatsByChampionParams) ([]ChampionStat, error) {
	return q.queryChampionStats(ctx, listChampionStatsByChampion, arg.ChampionID, arg.PatchVersion)
}

func (q *Queries) queryChampionStats(ctx context.Context, query string, args ...interface{}) ([]ChampionStat, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ChampionStat
	for rows.Next() {
		var i ChampionStat
		if err := rows.Scan(
			&i.ChampionID,
			&i.PatchVersion,
			&i.Tier,
			&i.Role,
			&i.GamesPlayed,
			&i.Wins,
			&i.Picks,
			&i.Bans,
			&i.TotalGames,
			&i.AvgKills,
			&i.AvgDeaths,
			&i.AvgAssists,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
