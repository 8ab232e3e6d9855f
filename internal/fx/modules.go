package fx

import (
	"database/sql"
	"riftlens/internal/api"
	"riftlens/internal/config"
	"riftlens/internal/database"
	"riftlens/internal/db"
	"riftlens/internal/logger"
	"riftlens/internal/repository"
	"riftlens/internal/server"
	"riftlens/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(
		fx.Annotate(repository.NewPlayerRepository, fx.As(new(service.PlayerRepository))),
		fx.Annotate(repository.NewMatchRepository, fx.As(new(service.MatchRepository))),
		fx.Annotate(repository.NewChampionStatsRepository,
			fx.As(new(service.AggregationRepository)),
			fx.As(new(service.ChampionStatsReader)),
		),
		fx.Annotate(repository.NewReferenceRepository, fx.As(new(service.ReferenceRepository))),
		fx.Annotate(repository.NewSyncHistoryRepository, fx.As(new(service.SyncHistory))),
	),
	// api clients
	fx.Provide(
		fx.Annotate(api.NewRiotClient,
			fx.As(new(service.RiotGateway)),
			fx.As(new(server.RateLimitReporter)),
		),
		fx.Annotate(api.NewDataDragonClient, fx.As(new(service.ReferenceSource))),
	),
	// svc
	fx.Provide(
		fx.Annotate(service.NewPlayerService, fx.As(new(server.PlayerAPI))),
		fx.Annotate(service.NewMatchService, fx.As(new(server.MatchAPI))),
		fx.Annotate(service.NewMatchDetailService, fx.As(new(server.MatchDetailAPI))),
		fx.Annotate(service.NewChampionService, fx.As(new(server.ChampionAPI))),
		fx.Annotate(service.NewSyncService, fx.As(new(server.SyncAPI))),
		service.NewAggregationService,
	),
	// server
	fx.Provide(server.NewValidator),
	fx.Provide(server.NewServer),
)
