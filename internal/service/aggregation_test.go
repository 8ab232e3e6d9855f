package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedParticipants(t *testing.T, store *testStore, matchID, version string, rows []domain.MatchParticipant) {
	t.Helper()
	m := &domain.Match{
		MatchID:      matchID,
		Region:       "na1",
		QueueID:      420,
		GameMode:     "CLASSIC",
		GameDuration: 1800,
		GameVersion:  version,
		GameStartTS:  1000,
	}
	for i := range rows {
		rows[i].MatchID = matchID
		rows[i].Puuid = fmt.Sprintf("%s-p%d", matchID, i)
		rows[i].ParticipantID = i + 1
		if rows[i].TeamID == 0 {
			rows[i].TeamID = 100
		}
	}
	_, err := store.matches.InsertWithParticipants(context.Background(), m, rows)
	require.NoError(t, err)
}

func TestAggregationService_WorkedExample(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mid := strRef(domain.RoleMid)
	top := strRef(domain.RoleTop)
	seedParticipants(t, store, "NA1_A", "15.10.1.1", []domain.MatchParticipant{
		{ChampionID: 42, Role: mid, Win: true, Kills: 5, Deaths: 2, Assists: 4},
		{ChampionID: 42, Role: mid, Win: true, Kills: 7, Deaths: 1, Assists: 6},
		{ChampionID: 42, Role: mid, Win: false, Kills: 3, Deaths: 4, Assists: 2},
		{ChampionID: 1, Role: top, Win: false},
		{ChampionID: 1, Role: top, Win: true},
		{ChampionID: 2, Role: top, Win: false},
		{ChampionID: 3},
	})
	// 15.1 must not leak into 15.10
	seedParticipants(t, store, "NA1_B", "15.1.9.1", []domain.MatchParticipant{
		{ChampionID: 42, Role: mid, Win: false, Kills: 20},
	})

	svc := NewAggregationService(store.stats, zerolog.Nop())
	fixed := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	n, err := svc.Aggregate(ctx, "15.10")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	rows, err := store.stats.List(ctx, "15.10", "ALL", domain.RoleMid)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	x := rows[0]
	assert.Equal(t, 42, x.ChampionID)
	assert.Equal(t, "ALL", x.Tier)
	assert.Equal(t, 3, x.GamesPlayed)
	assert.Equal(t, 2, x.Wins)
	assert.InDelta(t, 5.0, x.AvgKills, 1e-9)
	assert.InDelta(t, 7.0/3.0, x.AvgDeaths, 1e-9)
	assert.InDelta(t, 4.0, x.AvgAssists, 1e-9)
	assert.Equal(t, 7, x.TotalGames)
	assert.Equal(t, domain.TierS, domain.TierFor(float64(x.Wins)/float64(x.GamesPlayed)*100))

	// picks mirror games and bans are not tracked
	assert.Equal(t, x.GamesPlayed, x.Picks)
	assert.Equal(t, 0, x.Bans)

	unknown, err := store.stats.List(ctx, "15.10", "ALL", domain.RoleUnknown)
	require.NoError(t, err)
	require.Len(t, unknown, 1)
	assert.Equal(t, 3, unknown[0].ChampionID)
}

func TestAggregationService_RerunOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mid := strRef(domain.RoleMid)

	seedParticipants(t, store, "NA1_A", "15.10.1.1", []domain.MatchParticipant{
		{ChampionID: 42, Role: mid, Win: true, Kills: 5},
	})
	svc := NewAggregationService(store.stats, zerolog.Nop())
	_, err := svc.Aggregate(ctx, "15.10")
	require.NoError(t, err)

	seedParticipants(t, store, "NA1_B", "15.10.2.1", []domain.MatchParticipant{
		{ChampionID: 42, Role: mid, Win: false, Kills: 1},
	})
	_, err = svc.Aggregate(ctx, "15.10")
	require.NoError(t, err)

	rows, err := store.stats.ListByChampion(ctx, 42, "15.10")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].GamesPlayed)
	assert.Equal(t, 1, rows[0].Wins)
	assert.InDelta(t, 3.0, rows[0].AvgKills, 1e-9)
	assert.Equal(t, 1, store.count(t, "champion_stats"))
}

func TestAggregationService_NoDataReturnsZero(t *testing.T) {
	store := newTestStore(t)
	svc := NewAggregationService(store.stats, zerolog.Nop())

	n, err := svc.Aggregate(context.Background(), "15.10")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, store.count(t, "champion_stats"))
}
