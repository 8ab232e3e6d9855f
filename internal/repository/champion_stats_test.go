package repository

import (
	"context"
	"testing"
	"time"

	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionStatsRepository_GroupMatchesPatchBucket(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	matches := NewMatchRepository(sqlDB, queries, zerolog.Nop())
	stats := NewChampionStatsRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	for _, m := range []*struct{ id, version string }{
		{"NA1_10", "15.10.684.1"},
		{"NA1_11", "15.9.1.1"},
		{"NA1_12", "15_10.1"},
		{"NA1_13", "15.1.5.1"},
	} {
		_, err := matches.InsertWithParticipants(ctx, fixtureMatch(m.id, m.version, 1), fixtureParticipants(m.id))
		require.NoError(t, err)
	}

	cases := []struct {
		prefix string
		total  int
	}{
		{"15.10", 10},
		{"15.1", 10},
		{"15.1.", 10},
		{"15.9", 10},
		{"15", 0},
		{"14.1", 0},
	}
	for _, tc := range cases {
		groups, total, err := stats.GroupByChampionRole(ctx, tc.prefix)
		require.NoError(t, err)
		assert.Equal(t, tc.total, total, tc.prefix)

		sum := 0
		for _, g := range groups {
			sum += g.GamesPlayed
			assert.Equal(t, tc.prefix, g.PatchVersion)
		}
		assert.Equal(t, total, sum, tc.prefix)
	}
}

func TestChampionStatsRepository_NullRoleGroupsAsUnknown(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	matches := NewMatchRepository(sqlDB, queries, zerolog.Nop())
	stats := NewChampionStatsRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	participants := fixtureParticipants("NA1_20")
	for i := range participants {
		participants[i].Role = nil
		participants[i].ChampionID = 7
	}
	_, err := matches.InsertWithParticipants(ctx, fixtureMatch("NA1_20", "15.10.1", 1), participants)
	require.NoError(t, err)

	groups, _, err := stats.GroupByChampionRole(ctx, "15.10")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.RoleUnknown, groups[0].Role)
	assert.Equal(t, 10, groups[0].GamesPlayed)
	assert.Equal(t, 5, groups[0].Wins)
}

func TestChampionStatsRepository_SaveOverwrites(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	stats := NewChampionStatsRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	row := domain.ChampionStat{
		ChampionID: 1, PatchVersion: "15.10", Tier: "ALL", Role: domain.RoleMid,
		GamesPlayed: 3, Wins: 2, Picks: 3, TotalGames: 7, AvgKills: 5, UpdatedAt: time.Now(),
	}
	require.NoError(t, stats.Save(ctx, []domain.ChampionStat{row}))

	row.GamesPlayed, row.Wins, row.Picks = 4, 1, 4
	require.NoError(t, stats.Save(ctx, []domain.ChampionStat{row}))

	got, err := stats.List(ctx, "15.10", "ALL", "ALL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].GamesPlayed)
	assert.Equal(t, 1, got[0].Wins)

	byRole, err := stats.List(ctx, "15.10", "ALL", domain.RoleTop)
	require.NoError(t, err)
	assert.Empty(t, byRole)
}
