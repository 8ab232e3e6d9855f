package service

import (
	"riftlens/internal/api"
	"riftlens/internal/domain"
)

func matchFromDTO(region domain.Region, matchID string, dto *api.MatchDTO) *domain.Match {
	id := dto.Metadata.MatchID
	if id == "" {
		id = matchID
	}
	return &domain.Match{
		MatchID:      id,
		Region:       region,
		QueueID:      dto.Info.QueueID,
		GameMode:     dto.Info.GameMode,
		GameDuration: dto.Info.GameDuration,
		GameVersion:  dto.Info.GameVersion,
		GameStartTS:  dto.Info.GameStartTimestamp,
	}
}

func participantsFromDTO(matchID string, dto *api.MatchDTO) []domain.MatchParticipant {
	out := make([]domain.MatchParticipant, 0, len(dto.Info.Participants))
	for _, p := range dto.Info.Participants {
		mp := domain.MatchParticipant{
			MatchID:             matchID,
			Puuid:               p.Puuid,
			ParticipantID:       p.ParticipantID,
			TeamID:              p.TeamID,
			ChampionID:          p.ChampionID,
			ChampionName:        p.ChampionName,
			RiotIDGameName:      p.RiotIDGameName,
			RiotIDTagline:       p.RiotIDTagline,
			Role:                domain.NormalizeRole(p.TeamPosition, p.Lane),
			Win:                 p.Win,
			Kills:               p.Kills,
			Deaths:              p.Deaths,
			Assists:             p.Assists,
			ChampLevel:          p.ChampLevel,
			TotalMinionsKilled:  p.TotalMinionsKilled + p.NeutralMinionsKilled,
			VisionScore:         p.VisionScore,
			GoldEarned:          p.GoldEarned,
			TotalDamageDealt:    p.TotalDamageDealtToChampions,
			PhysicalDamageDealt: p.PhysicalDamageDealtToChampions,
			MagicDamageDealt:    p.MagicDamageDealtToChampions,
			TrueDamageDealt:     p.TrueDamageDealtToChampions,
			TotalDamageTaken:    p.TotalDamageTaken,
			WardsPlaced:         p.WardsPlaced,
			WardsKilled:         p.WardsKilled,
			Items:               [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6},
			Summoner1ID:         p.Summoner1ID,
			Summoner2ID:         p.Summoner2ID,
		}
		if p.Lane != "" {
			lane := p.Lane
			mp.Lane = &lane
		}
		if styles := p.Perks.Styles; len(styles) > 0 {
			mp.PrimaryRuneStyle = intRef(styles[0].Style)
			if len(styles[0].Selections) > 0 {
				mp.PrimaryRune0 = intRef(styles[0].Selections[0].Perk)
			}
			if len(styles) > 1 {
				mp.SecondaryRuneStyle = intRef(styles[1].Style)
			}
		}
		out = append(out, mp)
	}
	return out
}

func intRef(v int) *int { return &v }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
