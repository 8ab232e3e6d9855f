package db

import (
	"context"
)

const matchColumns = `match_id, region, queue_id, game_mode, game_duration, game_version, game_start_ts, timeline, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (Match, error) {
	var i Match
	err := row.Scan(
		&i.MatchID,
		&i.Region,
		&i.QueueID,
		&i.GameMode,
		&i.GameDuration,
		&i.GameVersion,
		&i.GameStartTs,
		&i.Timeline,
		&i.CreatedAt,
	)
	return i, err
}

const matchExists = `
SELECT EXISTS(SELECT 1 FROM matches WHERE match_id = ?)
`

func (q *Queries) MatchExists(ctx context.Context, matchID string) (bool, error) {
	row := q.db.QueryRowContext(ctx, matchExists, matchID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getMatch = `
SELECT ` + matchColumns + `
FROM matches
WHERE match_id = ?
`

func (q *Queries) GetMatch(ctx context.Context, matchID string) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, matchID)
	return scanMatch(row)
}

const insertMatch = `
INSERT INTO matches (match_id, region, queue_id, game_mode, game_duration, game_version, game_start_ts, timeline)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(match_id) DO NOTHING
`

type InsertMatchParams struct {
	MatchID      string
	Region       string
	QueueID      int64
	GameMode     string
	GameDuration int64
	GameVersion  string
	GameStartTs  int64
	Timeline     *string
}

// InsertMatch returns the number of rows written: 0 when the match already existed.
func (q *Queries) InsertMatch(ctx context.Context, arg InsertMatchParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertMatch,
		arg.MatchID,
		arg.Region,
		arg.QueueID,
		arg.GameMode,
		arg.GameDuration,
		arg.GameVersion,
		arg.GameStartTs,
		arg.Timeline,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setMatchTimeline = `
UPDATE matches SET timeline = ?
WHERE match_id = ? AND timeline IS NULL
`

type SetMatchTimelineParams struct {
	Timeline string
	MatchID  string
}

func (q *Queries) SetMatchTimeline(ctx context.Context, arg SetMatchTimelineParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setMatchTimeline, arg.Timeline, arg.MatchID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listRecentMatchesByPuuid = `
SELECT m.match_id, m.region, m.queue_id, m.game_mode, m.game_duration, m.game_version, m.game_start_ts, m.timeline, m.created_at
FROM matches m
JOIN match_participants mp ON mp.match_id = m.match_id
WHERE mp.puuid = ?
ORDER BY m.game_start_ts DESC
LIMIT ?
`

type ListRecentMatchesByPuuidParams struct {
	Puuid string
	Limit int64
}

func (q *Queries) ListRecentMatchesByPuuid(ctx context.Context, arg ListRecentMatchesByPuuidParams) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listRecentMatchesByPuuid, arg.Puuid, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Match
	for rows.Next() {
		i, err := scanMatch(rows)
		if err != nil {
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
