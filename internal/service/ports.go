package service

import (
	"context"
	"riftlens/internal/api"
	"riftlens/internal/domain"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrPlayerNotFound   = crerr.New("player not found")
	ErrMatchNotFound    = crerr.New("match not found")
	ErrChampionNotFound = crerr.New("champion not found")
	ErrInvalidRegion    = crerr.New("unknown region")
)

// RiotGateway is the upstream surface the services need. *api.RiotClient satisfies it.
type RiotGateway interface {
	GetAccountByRiotID(ctx context.Context, region domain.Region, gameName, tagLine string) (*api.AccountDTO, error)
	GetSummonerByPuuid(ctx context.Context, region domain.Region, puuid string) (*api.SummonerDTO, error)
	GetLeagueEntries(ctx context.Context, region domain.Region, puuid string) ([]api.LeagueEntryDTO, error)
	GetMatchIDs(ctx context.Context, region domain.Region, puuid string, start, count int) ([]string, error)
	GetMatch(ctx context.Context, region domain.Region, matchID string) (*api.MatchDTO, error)
	GetMatchTimeline(ctx context.Context, region domain.Region, matchID string) (*api.TimelineDTO, error)
	GetTopMastery(ctx context.Context, region domain.Region, puuid string, count int) ([]api.MasteryDTO, error)
}

// ReferenceSource serves the versioned static catalogs.
type ReferenceSource interface {
	LatestVersion(ctx context.Context) (string, error)
	Champions(ctx context.Context, version string) ([]domain.Champion, error)
	Items(ctx context.Context, version string) ([]domain.Item, error)
	Runes(ctx context.Context, version string) ([]domain.Rune, error)
}

type PlayerRepository interface {
	GetByRiotID(ctx context.Context, region domain.Region, gameName, tagLine string) (*domain.Player, error)
	Upsert(ctx context.Context, player *domain.Player) error
}

type MatchRepository interface {
	Exists(ctx context.Context, matchID string) (bool, error)
	Get(ctx context.Context, matchID string) (*domain.Match, error)
	InsertWithParticipants(ctx context.Context, match *domain.Match, participants []domain.MatchParticipant) (bool, error)
	SetTimeline(ctx context.Context, matchID string, timeline []byte) (bool, error)
	ListRecentByPuuid(ctx context.Context, puuid string, limit int) ([]domain.Match, error)
	Participants(ctx context.Context, matchID string) ([]domain.MatchParticipant, error)
}

type AggregationRepository interface {
	GroupByChampionRole(ctx context.Context, patchPrefix string) ([]domain.ChampionStat, int, error)
	Save(ctx context.Context, stats []domain.ChampionStat) error
}

type ChampionStatsReader interface {
	List(ctx context.Context, patch, tier, role string) ([]domain.ChampionStat, error)
	ListByChampion(ctx context.Context, championID int, patch string) ([]domain.ChampionStat, error)
}

type ReferenceRepository interface {
	SaveCatalog(ctx context.Context, champions []domain.Champion, items []domain.Item, runes []domain.Rune) error
	ListChampions(ctx context.Context) ([]domain.Champion, error)
	GetChampion(ctx context.Context, id int) (*domain.Champion, error)
}

type SyncHistory interface {
	Record(ctx context.Context, run domain.SyncRun) (string, error)
	List(ctx context.Context, limit int) ([]domain.SyncRun, error)
	Latest(ctx context.Context) (*domain.SyncRun, error)
}
