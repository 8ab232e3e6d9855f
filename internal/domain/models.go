package domain

import (
	"time"
)

type RankedEntry struct {
	Tier     string
	Division string
	Points   int
	Wins     int
	Losses   int
}

type Player struct {
	Puuid         string
	GameName      string
	TagLine       string
	Region        Region
	SummonerID    *string
	ProfileIconID int
	SummonerLevel int
	Solo          *RankedEntry // nil when unranked
	Flex          *RankedEntry
	UpdatedAt     time.Time
}

type Match struct {
	MatchID      string
	Region       Region
	QueueID      int
	GameMode     string
	GameDuration int // seconds
	GameVersion  string
	GameStartTS  int64 // epoch ms
	Timeline     []byte
	CreatedAt    time.Time
}

type MatchParticipant struct {
	MatchID             string
	Puuid               string
	ParticipantID       int
	TeamID              int
	ChampionID          int
	ChampionName        string
	RiotIDGameName      string
	RiotIDTagline       string
	Role                *string
	Lane                *string
	Win                 bool
	Kills               int
	Deaths              int
	Assists             int
	ChampLevel          int
	TotalMinionsKilled  int
	VisionScore         int
	GoldEarned          int
	TotalDamageDealt    int
	PhysicalDamageDealt int
	MagicDamageDealt    int
	TrueDamageDealt     int
	TotalDamageTaken    int
	WardsPlaced         int
	WardsKilled         int
	Items               [7]int
	Summoner1ID         int
	Summoner2ID         int
	PrimaryRuneStyle    *int
	PrimaryRune0        *int
	SecondaryRuneStyle  *int
}

// ChampionStat is one aggregated row keyed by champion, patch prefix, tier and role.
type ChampionStat struct {
	ChampionID   int
	PatchVersion string
	Tier         string
	Role         string
	GamesPlayed  int
	Wins         int
	Picks        int
	Bans         int
	TotalGames   int
	AvgKills     float64
	AvgDeaths    float64
	AvgAssists   float64
	UpdatedAt    time.Time
}

type Champion struct {
	ID           int
	Key          string
	Name         string
	Title        string
	ImageURL     string
	Tags         []string
	PatchVersion string
}

type Item struct {
	ID           int
	Name         string
	Description  string
	ImageURL     string
	Gold         int
	Tags         []string
	PatchVersion string
}

type Rune struct {
	ID           int
	Name         string
	Description  string
	ImageURL     string
	TreeID       int
	TreeName     string
	Slot         int
	PatchVersion string
}

type MasteryEntry struct {
	ChampionID     int
	ChampionLevel  int
	ChampionPoints int
	LastPlayTime   int64
}

// SyncRun records one reference-data refresh and the aggregation it triggered.
type SyncRun struct {
	ID              string
	Version         string
	PatchPrefix     string
	Champions       int
	Items           int
	Runes           int
	AggregatedStats int
	CreatedAt       time.Time
}
