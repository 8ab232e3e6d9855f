package db

import (
	"context"
)

const insertParticipant = `
INSERT INTO match_participants (
    match_id, puuid, participant_id, team_id, champion_id, champion_name,
    riot_id_game_name, riot_id_tagline, role, lane, win,
    kills, deaths, assists, champ_level, total_minions_killed, vision_score, gold_earned,
    total_damage_dealt, physical_damage_dealt, magic_damage_dealt, true_damage_dealt, total_damage_taken,
    wards_placed, wards_killed,
    item0, item1, item2, item3, item4, item5, item6,
    summoner1_id, summoner2_id, primary_rune_style, primary_rune_0, secondary_rune_style
) VALUES (
    ?, ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?,
    ?, ?,
    ?, ?, ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?
)
ON CONFLICT(match_id, puuid) DO NOTHING
`

type InsertParticipantParams = MatchParticipant

func (q *Queries) InsertParticipant(ctx context.Context, arg InsertParticipantParams) error {
	_, err := q.db.ExecContext(ctx, insertParticipant,
		arg.MatchID,
		arg.Puuid,
		arg.ParticipantID,
		arg.TeamID,
		arg.ChampionID,
		arg.ChampionName,
		arg.RiotIDGameName,
		arg.RiotIDTagline,
		arg.Role,
		arg.Lane,
		arg.Win,
		arg.Kills,
		arg.Deaths,
		arg.Assists,
		arg.ChampLevel,
		arg.TotalMinionsKilled,
		arg.VisionScore,
		arg.GoldEarned,
		arg.TotalDamageDealt,
		arg.PhysicalDamageDealt,
		arg.MagicDamageDealt,
		arg.TrueDamageDealt,
		arg.TotalDamageTaken,
		arg.WardsPlaced,
		arg.WardsKilled,
		arg.Item0,
		arg.Item1,
		arg.Item2,
		arg.Item3,
		arg.Item4,
		arg.Item5,
		arg.Item6,
		arg.Summoner1ID,
		arg.Summoner2ID,
		arg.PrimaryRuneStyle,
		arg.PrimaryRune0,
		arg.SecondaryRuneStyle,
	)
	return err
}

const listParticipantsByMatch = `
SELECT
    match_id, puuid, participant_id, team_id, champion_id, champion_name,
    riot_id_game_name, riot_id_tagline, role, lane, win,
    kills, deaths, assists, champ_level, total_minions_killed, vision_score, gold_earned,
    total_damage_dealt, physical_damage_dealt, magic_damage_dealt, true_damage_dealt, total_damage_taken,
    wards_placed, wards_killed,
    item0, item1, item2, item3, item4, item5, item6,
    summoner1_id, summoner2_id, primary_rune_style, primary_rune_0, secondary_rune_style
FROM match_participants
WHERE match_id = ?
ORDER BY participant_id
`

func (q *Queries) ListParticipantsByMatch(ctx context.Context, matchID string) ([]MatchParticipant, error) {
	rows, err := q.db.QueryContext(ctx, listParticipantsByMatch, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MatchParticipant
	for rows.Next() {
		var i MatchParticipant
		if err := rows.Scan(
			&i.MatchID,
			&i.Puuid,
			&i.ParticipantID,
			&i.TeamID,
			&i.ChampionID,
			&i.ChampionName,
			&i.RiotIDGameName,
			&i.RiotIDTagline,
			&i.Role,
			&i.Lane,
			&i.Win,
			&i.Kills,
			&i.Deaths,
			&i.Assists,
			&i.ChampLevel,
			&i.TotalMinionsKilled,
			&i.VisionScore,
			&i.GoldEarned,
			&i.TotalDamageDealt,
			&i.PhysicalDamageDealt,
			&i.MagicDamageDealt,
			&i.TrueDamageDealt,
			&i.TotalDamageTaken,
			&i.WardsPlaced,
			&i.WardsKilled,
			&i.Item0,
			&i.Item1,
			&i.Item2,
			&i.Item3,
			&i.Item4,
			&i.Item5,
			&i.Item6,
			&i.Summoner1ID,
			&i.Summoner2ID,
			&i.PrimaryRuneStyle,
			&i.PrimaryRune0,
			&i.SecondaryRuneStyle,
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
