package constants

import "time"

const (
	PlayerRefreshTTL = 5 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	SyncTimeout        = 2 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

const (
	DefaultMatchCount = 20
	MinMatchCount     = 1
	MaxMatchCount     = 100

	DefaultMasteryCount = 7
	MinMasteryCount     = 1
	MaxMasteryCount     = 50

	ParticipantsPerMatch = 10

	DefaultSyncHistory = 10
	MaxSyncHistory     = 50
)

const (
	LadderQueueSolo = "RANKED_SOLO_5x5"
	LadderQueueFlex = "RANKED_FLEX_SR"
	StatTierAll     = "ALL"
)
