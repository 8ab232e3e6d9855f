package repository

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"riftlens/internal/config"
	"riftlens/internal/database"
	"riftlens/internal/db"
	"riftlens/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB, db.New(sqlDB)
}

func strPtr(s string) *string { return &s }

func fixtureMatch(id, version string, startTS int64) *domain.Match {
	return &domain.Match{
		MatchID:      id,
		Region:       "na1",
		QueueID:      420,
		GameMode:     "CLASSIC",
		GameDuration: 1800,
		GameVersion:  version,
		GameStartTS:  startTS,
	}
}

func fixtureParticipants(matchID string) []domain.MatchParticipant {
	roles := []string{domain.RoleTop, domain.RoleJungle, domain.RoleMid, domain.RoleADC, domain.RoleSupport}
	out := make([]domain.MatchParticipant, 10)
	for i := range out {
		team := 100
		if i >= 5 {
			team = 200
		}
		out[i] = domain.MatchParticipant{
			MatchID:       matchID,
			Puuid:         fmt.Sprintf("puuid-%d", i),
			ParticipantID: i + 1,
			TeamID:        team,
			ChampionID:    i + 1,
			ChampionName:  fmt.Sprintf("Champ%d", i+1),
			Role:          strPtr(roles[i%5]),
			Win:           team == 100,
			Kills:         i,
			Deaths:        1,
			Assists:       2,
		}
	}
	return out
}
