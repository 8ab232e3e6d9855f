package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"riftlens/internal/api"
	"riftlens/internal/config"
	"riftlens/internal/database"
	"riftlens/internal/db"
	"riftlens/internal/domain"
	"riftlens/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRiot struct {
	mu sync.Mutex

	account     *api.AccountDTO
	accountErr  error
	summoner    *api.SummonerDTO
	summonerErr error
	league      []api.LeagueEntryDTO
	leagueErr   error
	matchIDs    []string
	matchIDsErr error
	matches     map[string]*api.MatchDTO
	matchErrs   map[string]error
	timeline    *api.TimelineDTO
	timelineErr error
	mastery     []api.MasteryDTO
	masteryErr  error

	accountCalls  atomic.Int32
	summonerCalls atomic.Int32
	leagueCalls   atomic.Int32
	matchCalls    atomic.Int32
	timelineCalls atomic.Int32
	masteryCount  atomic.Int32
}

func (f *fakeRiot) GetAccountByRiotID(ctx context.Context, region domain.Region, gameName, tagLine string) (*api.AccountDTO, error) {
	f.accountCalls.Add(1)
	return f.account, f.accountErr
}

func (f *fakeRiot) GetSummonerByPuuid(ctx context.Context, region domain.Region, puuid string) (*api.SummonerDTO, error) {
	f.summonerCalls.Add(1)
	return f.summoner, f.summonerErr
}

func (f *fakeRiot) GetLeagueEntries(ctx context.Context, region domain.Region, puuid string) ([]api.LeagueEntryDTO, error) {
	f.leagueCalls.Add(1)
	return f.league, f.leagueErr
}

func (f *fakeRiot) GetMatchIDs(ctx context.Context, region domain.Region, puuid string, start, count int) ([]string, error) {
	if f.matchIDsErr != nil {
		return nil, f.matchIDsErr
	}
	ids := f.matchIDs
	if len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

func (f *fakeRiot) GetMatch(ctx context.Context, region domain.Region, matchID string) (*api.MatchDTO, error) {
	f.matchCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.matchErrs[matchID]; err != nil {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("no fixture for %s: %w", matchID, api.ErrNotFound)
	}
	return m, nil
}

func (f *fakeRiot) GetMatchTimeline(ctx context.Context, region domain.Region, matchID string) (*api.TimelineDTO, error) {
	f.timelineCalls.Add(1)
	return f.timeline, f.timelineErr
}

func (f *fakeRiot) GetTopMastery(ctx context.Context, region domain.Region, puuid string, count int) ([]api.MasteryDTO, error) {
	f.masteryCount.Store(int32(count))
	return f.mastery, f.masteryErr
}

type testStore struct {
	db      *sql.DB
	players *repository.PlayerRepository
	matches *repository.MatchRepository
	stats   *repository.ChampionStatsRepository
	refs    *repository.ReferenceRepository
	history *repository.SyncHistoryRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	logger := zerolog.Nop()
	return &testStore{
		db:      sqlDB,
		players: repository.NewPlayerRepository(sqlDB, queries, logger),
		matches: repository.NewMatchRepository(sqlDB, queries, logger),
		stats:   repository.NewChampionStatsRepository(sqlDB, queries, logger),
		refs:    repository.NewReferenceRepository(sqlDB, queries, logger),
		history: repository.NewSyncHistoryRepository(sqlDB, queries, logger),
	}
}

func (s *testStore) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// fixtureMatchDTO builds a 10-player match where puuid-0..4 are blue and win.
func fixtureMatchDTO(id, version string, startTS int64) *api.MatchDTO {
	positions := []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}
	m := &api.MatchDTO{
		Metadata: api.MatchMetadataDTO{MatchID: id},
		Info: api.MatchInfoDTO{
			GameDuration:       1800,
			GameStartTimestamp: startTS,
			GameMode:           "CLASSIC",
			GameVersion:        version,
			QueueID:            420,
			Teams: []api.TeamDTO{
				{
					TeamID:     100,
					Win:        true,
					Bans:       []api.BanDTO{{ChampionID: 99, PickTurn: 1}},
					Objectives: map[string]api.ObjectiveDTO{"dragon": {Kills: 3}, "baron": {Kills: 1}, "tower": {Kills: 8}, "inhibitor": {Kills: 2}},
				},
				{TeamID: 200, Win: false},
			},
		},
	}
	for i := 0; i < 10; i++ {
		team := 100
		if i >= 5 {
			team = 200
		}
		p := api.ParticipantDTO{
			Puuid:                       fmt.Sprintf("puuid-%d", i),
			ParticipantID:               i + 1,
			TeamID:                      team,
			ChampionID:                  i + 1,
			ChampionName:                fmt.Sprintf("Champ%d", i+1),
			TeamPosition:                positions[i%5],
			Win:                         team == 100,
			Kills:                       i,
			Deaths:                      1,
			Assists:                     2,
			TotalMinionsKilled:          100,
			NeutralMinionsKilled:        20,
			GoldEarned:                  10000,
			TotalDamageDealtToChampions: 15000,
			Item0:                       3031,
		}
		p.Perks.Styles = []api.PerkStyleDTO{{Style: 8000}, {Style: 8100}}
		p.Perks.Styles[0].Selections = append(p.Perks.Styles[0].Selections, struct {
			Perk int `json:"perk"`
		}{Perk: 8005})
		m.Info.Participants = append(m.Info.Participants, p)
	}
	return m
}

func newIngestRiot(ids ...string) *fakeRiot {
	f := &fakeRiot{matchIDs: ids, matches: map[string]*api.MatchDTO{}, matchErrs: map[string]error{}}
	for i, id := range ids {
		f.matches[id] = fixtureMatchDTO(id, "15.10.1.1", int64(1000+i))
	}
	return f
}

func strRef(s string) *string { return &s }
