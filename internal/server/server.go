package server

import (
	"context"
	"database/sql"
	"riftlens/internal/api"
	"riftlens/internal/domain"
	"riftlens/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PlayerAPI interface {
	Resolve(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error)
	Mastery(ctx context.Context, region domain.Region, puuid string, count int) ([]domain.MasteryEntry, error)
}

type MatchAPI interface {
	Ingest(ctx context.Context, region domain.Region, puuid string, count int) (service.IngestResult, error)
}

type MatchDetailAPI interface {
	Get(ctx context.Context, matchID string) (*service.MatchDetail, error)
}

type ChampionAPI interface {
	TierList(ctx context.Context, patch, tier, role string) ([]service.ChampionTierEntry, error)
	Detail(ctx context.Context, championID int) (*service.ChampionDetail, error)
}

type SyncAPI interface {
	Sync(ctx context.Context) (*service.SyncResult, error)
	History(ctx context.Context, limit int) ([]domain.SyncRun, error)
}

// RateLimitReporter exposes the last upstream rate-limit headers for /healthz.
type RateLimitReporter interface {
	GetRateLimitInfo() api.RateLimitInfo
}

type Server struct {
	players   PlayerAPI
	matches   MatchAPI
	details   MatchDetailAPI
	champions ChampionAPI
	sync      SyncAPI
	limits    RateLimitReporter
	db        *sql.DB
	validator *validator.Validate
	logger    zerolog.Logger
}

func NewServer(
	players PlayerAPI,
	matches MatchAPI,
	details MatchDetailAPI,
	champions ChampionAPI,
	sync SyncAPI,
	limits RateLimitReporter,
	db *sql.DB,
	validate *validator.Validate,
	logger zerolog.Logger,
) *Server {
	return &Server{
		players:   players,
		matches:   matches,
		details:   details,
		champions: champions,
		sync:      sync,
		limits:    limits,
		db:        db,
		validator: validate,
		logger:    logger,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/players/{region}", func(r chi.Router) {
			r.Get("/by-id/{puuid}/matches", s.GetMatches)
			r.Get("/by-id/{puuid}/mastery", s.GetMastery)
			r.Get("/{name}/{tag}", s.GetPlayer)
		})
		r.Get("/matches/{matchID}", s.GetMatch)
		r.Get("/champions", s.ListChampions)
		r.Get("/champions/{id}", s.GetChampion)
		r.Post("/sync", s.Sync)
		r.Get("/sync/history", s.SyncHistory)
	})

	return r
}
