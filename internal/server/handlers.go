package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
	"riftlens/internal/constants"
	"riftlens/internal/domain"

	"github.com/go-chi/chi/v5"
)

type rankedResponse struct {
	Tier     string  `json:"tier"`
	Division string  `json:"rank"`
	Points   int     `json:"leaguePoints"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRate  float64 `json:"winRate"`
}

type playerResponse struct {
	Puuid         string          `json:"puuid"`
	GameName      string          `json:"gameName"`
	TagLine       string          `json:"tagLine"`
	Region        string          `json:"region"`
	SummonerID    *string         `json:"summonerId"`
	ProfileIconID int             `json:"profileIconId"`
	SummonerLevel int             `json:"summonerLevel"`
	Solo          *rankedResponse `json:"soloRanked"`
	Flex          *rankedResponse `json:"flexRanked"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type masteryResponse struct {
	ChampionID     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}

type syncRunResponse struct {
	ID              string    `json:"syncId"`
	Version         string    `json:"version"`
	PatchPrefix     string    `json:"patch"`
	Champions       int       `json:"champions"`
	Items           int       `json:"items"`
	Runes           int       `json:"runes"`
	AggregatedStats int       `json:"aggregatedStats"`
	CreatedAt       time.Time `json:"createdAt"`
}

type healthResponse struct {
	Status    string `json:"status"`
	RateLimit any    `json:"rateLimit,omitempty"`
}

type playerRequest struct {
	Region   string `json:"region" validate:"required,region"`
	GameName string `json:"name" validate:"required,max=32"`
	TagLine  string `json:"tag" validate:"required,max=8"`
}

type puuidRequest struct {
	Region string `json:"region" validate:"required,region"`
	Puuid  string `json:"puuid" validate:"required,max=128"`
}

type matchRequest struct {
	MatchID string `json:"matchId" validate:"required,matchid"`
}

type championRequest struct {
	ID int `json:"id" validate:"gt=0"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.log(r).Error().Err(err).Msg("database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	resp := healthResponse{Status: "ok"}
	if s.limits != nil {
		resp.RateLimit = s.limits.GetRateLimitInfo()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetPlayer(w http.ResponseWriter, r *http.Request) {
	req := playerRequest{
		Region:   chi.URLParam(r, "region"),
		GameName: chi.URLParam(r, "name"),
		TagLine:  chi.URLParam(r, "tag"),
	}
	if err := s.validate(req); err != nil {
		s.writeError(w, r, err)
		return
	}

	region, _ := domain.ParseRegion(req.Region)
	player, err := s.players.Resolve(r.Context(), region, req.GameName, req.TagLine)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) GetMatches(w http.ResponseWriter, r *http.Request) {
	region, puuid, ok := s.puuidParams(w, r)
	if !ok {
		return
	}
	count, err := intQuery(r, "count", constants.DefaultMatchCount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.matches.Ingest(r.Context(), region, puuid, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result.Summaries)
}

func (s *Server) GetMastery(w http.ResponseWriter, r *http.Request) {
	region, puuid, ok := s.puuidParams(w, r)
	if !ok {
		return
	}
	count, err := intQuery(r, "count", constants.DefaultMasteryCount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.players.Mastery(r.Context(), region, puuid, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]masteryResponse, len(entries))
	for i, e := range entries {
		resp[i] = masteryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetMatch(w http.ResponseWriter, r *http.Request) {
	req := matchRequest{MatchID: chi.URLParam(r, "matchID")}
	if err := s.validate(req); err != nil {
		s.writeError(w, r, err)
		return
	}

	detail, err := s.details.Get(r.Context(), req.MatchID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) ListChampions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := s.champions.TierList(r.Context(), q.Get("patch"), q.Get("tier"), q.Get("role"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) GetChampion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, invalidParam("id", "must be a number"))
		return
	}
	req := championRequest{ID: id}
	if err := s.validate(req); err != nil {
		s.writeError(w, r, err)
		return
	}

	detail, err := s.champions.Detail(r.Context(), req.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := s.sync.Sync(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) SyncHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", constants.DefaultSyncHistory)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	runs, err := s.sync.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]syncRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = syncRunResponse(run)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) puuidParams(w http.ResponseWriter, r *http.Request) (domain.Region, string, bool) {
	req := puuidRequest{
		Region: chi.URLParam(r, "region"),
		Puuid:  chi.URLParam(r, "puuid"),
	}
	if err := s.validate(req); err != nil {
		s.writeError(w, r, err)
		return "", "", false
	}
	region, _ := domain.ParseRegion(req.Region)
	return region, req.Puuid, true
}

// intQuery reads an optional integer query parameter. Range clamping is left to the services.
func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, "must be an integer")
	}
	return v, nil
}

func toPlayerResponse(p *domain.Player) playerResponse {
	return playerResponse{
		Puuid:         p.Puuid,
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		Region:        p.Region.String(),
		SummonerID:    p.SummonerID,
		ProfileIconID: p.ProfileIconID,
		SummonerLevel: p.SummonerLevel,
		Solo:          toRankedResponse(p.Solo),
		Flex:          toRankedResponse(p.Flex),
		UpdatedAt:     p.UpdatedAt,
	}
}

func toRankedResponse(e *domain.RankedEntry) *rankedResponse {
	if e == nil {
		return nil
	}
	return &rankedResponse{
		Tier:     e.Tier,
		Division: e.Division,
		Points:   e.Points,
		Wins:     e.Wins,
		Losses:   e.Losses,
		WinRate:  calculateWinRate(e.Wins, e.Losses),
	}
}

func calculateWinRate(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}
