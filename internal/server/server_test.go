package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"riftlens/internal/api"
	"riftlens/internal/config"
	"riftlens/internal/database"
	"riftlens/internal/domain"
	"riftlens/internal/service"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayers struct {
	player       *domain.Player
	err          error
	gotRegion    domain.Region
	gotName      string
	masteryCount int
}

func (f *fakePlayers) Resolve(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error) {
	f.gotRegion, f.gotName = region, gameName
	return f.player, f.err
}

func (f *fakePlayers) Mastery(ctx context.Context, region domain.Region, puuid string, count int) ([]domain.MasteryEntry, error) {
	f.masteryCount = count
	return []domain.MasteryEntry{{ChampionID: 103, ChampionLevel: 7, ChampionPoints: 250000}}, f.err
}

type fakeMatches struct {
	count int
	err   error
}

func (f *fakeMatches) Ingest(ctx context.Context, region domain.Region, puuid string, count int) (service.IngestResult, error) {
	f.count = count
	if f.err != nil {
		return service.IngestResult{Summaries: []service.MatchSummary{}}, f.err
	}
	return service.IngestResult{Summaries: []service.MatchSummary{{MatchID: "NA1_1", ChampionName: "Ahri"}}}, nil
}

type fakeDetails struct{ err error }

func (f *fakeDetails) Get(ctx context.Context, matchID string) (*service.MatchDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.MatchDetail{MatchID: matchID}, nil
}

type fakeChampions struct {
	gotPatch string
	err      error
}

func (f *fakeChampions) TierList(ctx context.Context, patch, tier, role string) ([]service.ChampionTierEntry, error) {
	f.gotPatch = patch
	return []service.ChampionTierEntry{{ChampionID: 103, Role: "MID", Tier: "B"}}, nil
}

func (f *fakeChampions) Detail(ctx context.Context, championID int) (*service.ChampionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.ChampionDetail{ChampionID: championID}, nil
}

type fakeSync struct{}

func (fakeSync) Sync(ctx context.Context) (*service.SyncResult, error) {
	return &service.SyncResult{Success: true, SyncID: "abc", Version: "15.10.1", Champions: 170}, nil
}

func (fakeSync) History(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	return []domain.SyncRun{{ID: "abc", Version: "15.10.1", PatchPrefix: "15.10"}}, nil
}

type fakeLimits struct{}

func (fakeLimits) GetRateLimitInfo() api.RateLimitInfo {
	return api.RateLimitInfo{AppLimit: "20:1,100:120", AppCount: "1:1,1:120"}
}

type testServer struct {
	players   *fakePlayers
	matches   *fakeMatches
	details   *fakeDetails
	champions *fakeChampions
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	ts := &testServer{
		players:   &fakePlayers{},
		matches:   &fakeMatches{},
		details:   &fakeDetails{},
		champions: &fakeChampions{},
	}
	srv := NewServer(ts.players, ts.matches, ts.details, ts.champions, fakeSync{}, fakeLimits{}, sqlDB, NewValidator(), zerolog.Nop())
	ts.handler = srv.Routes()
	return ts
}

func (ts *testServer) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "rateLimit")
}

func TestGetPlayer(t *testing.T) {
	ts := newTestServer(t)
	ts.players.player = &domain.Player{
		Puuid:    "p-1",
		GameName: "Faker",
		TagLine:  "KR1",
		Region:   "kr",
		Solo:     &domain.RankedEntry{Tier: "CHALLENGER", Division: "I", Points: 1500, Wins: 30, Losses: 10},
	}

	rec := ts.do(http.MethodGet, "/api/players/KR/Faker/KR1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Region("kr"), ts.players.gotRegion)
	assert.Equal(t, "Faker", ts.players.gotName)

	body := decode[playerResponse](t, rec)
	assert.Equal(t, "p-1", body.Puuid)
	require.NotNil(t, body.Solo)
	assert.Equal(t, 75.0, body.Solo.WinRate)
	assert.Nil(t, body.Flex)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"player not found", fmt.Errorf("%w: x#y: boom", service.ErrPlayerNotFound), http.StatusNotFound},
		{"upstream 404", &api.Error{Kind: api.ErrNotFound, Status: 404}, http.StatusNotFound},
		{"rate limited", &api.Error{Kind: api.ErrRateLimited, Status: 429, RetryAfter: 7 * time.Second}, http.StatusServiceUnavailable},
		{"upstream", fmt.Errorf("failed to list match ids: %w", &api.Error{Kind: api.ErrUpstream, Status: 500}), http.StatusBadGateway},
		{"transport", &api.Error{Kind: api.ErrTransport}, http.StatusBadGateway},
		{"internal", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.matches.err = tc.err

			rec := ts.do(http.MethodGet, "/api/players/na1/by-id/p-1/matches")
			assert.Equal(t, tc.status, rec.Code)
			body := decode[errorResponse](t, rec)
			assert.NotEmpty(t, body.Error)
			switch tc.status {
			case http.StatusServiceUnavailable:
				assert.Equal(t, "7", rec.Header().Get("Retry-After"))
				assert.Equal(t, tc.err.Error(), body.Error)
				assert.Contains(t, body.Error, "upstream rate limited")
			case http.StatusBadGateway:
				assert.Equal(t, tc.err.Error(), body.Error)
			}
		})
	}
}

func TestGetMatches(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/players/euw1/by-id/p-1/matches")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, ts.matches.count)

	summaries := decode[[]service.MatchSummary](t, rec)
	require.Len(t, summaries, 1)
	assert.Equal(t, "NA1_1", summaries[0].MatchID)

	rec = ts.do(http.MethodGet, "/api/players/euw1/by-id/p-1/matches?count=500")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 500, ts.matches.count)
}

func TestValidation(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/players/atlantis/Faker/KR1",
		"/api/players/na1/by-id/p-1/matches?count=many",
		"/api/players/na1/by-id/p-1/mastery?count=1.5",
		"/api/matches/garbage",
		"/api/champions/abc",
		"/api/champions/0",
		"/api/sync/history?limit=x",
	} {
		rec := ts.do(http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetMastery(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/players/kr/by-id/p-1/mastery")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, ts.players.masteryCount)

	entries := decode[[]masteryResponse](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, 250000, entries[0].ChampionPoints)
}

func TestGetMatch(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/matches/NA1_5012345678")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NA1_5012345678", decode[service.MatchDetail](t, rec).MatchID)

	ts.details.err = fmt.Errorf("%w: NA1_1", service.ErrMatchNotFound)
	rec = ts.do(http.MethodGet, "/api/matches/NA1_1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChampions(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/champions?patch=15.10.1&role=MID")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "15.10.1", ts.champions.gotPatch)
	assert.Len(t, decode[[]service.ChampionTierEntry](t, rec), 1)

	rec = ts.do(http.MethodGet, "/api/champions/103")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 103, decode[service.ChampionDetail](t, rec).ChampionID)

	ts.champions.err = service.ErrChampionNotFound
	rec = ts.do(http.MethodGet, "/api/champions/99999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSync(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/sync")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[service.SyncResult](t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, 170, res.Champions)

	rec = ts.do(http.MethodGet, "/api/sync/history")
	require.Equal(t, http.StatusOK, rec.Code)
	runs := decode[[]syncRunResponse](t, rec)
	require.Len(t, runs, 1)
	assert.Equal(t, "15.10", runs[0].PatchPrefix)

	rec = ts.do(http.MethodGet, "/api/sync")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
