package db

import (
	"time"
)

type Champion struct {
	ID           int64
	Key          string
	Name         string
	Title        string
	ImageUrl     string
	Tags         string
	PatchVersion string
}

type ChampionStat struct {
	ChampionID   int64
	PatchVersion string
	Tier         string
	Role         string
	GamesPlayed  int64
	Wins         int64
	Picks        int64
	Bans         int64
	TotalGames   int64
	AvgKills     float64
	AvgDeaths    float64
	AvgAssists   float64
	UpdatedAt    time.Time
}

type Item struct {
	ID           int64
	Name         string
	Description  string
	ImageUrl     string
	Gold         int64
	Tags         string
	PatchVersion string
}

type Match struct {
	MatchID      string
	Region       string
	QueueID      int64
	GameMode     string
	GameDuration int64
	GameVersion  string
	GameStartTs  int64
	Timeline     *string
	CreatedAt    time.Time
}

type MatchParticipant struct {
	MatchID             string
	Puuid               string
	ParticipantID       int64
	TeamID              int64
	ChampionID          int64
	ChampionName        string
	RiotIDGameName      string
	RiotIDTagline       string
	Role                *string
	Lane                *string
	Win                 bool
	Kills               int64
	Deaths              int64
	Assists             int64
	ChampLevel          int64
	TotalMinionsKilled  int64
	VisionScore         int64
	GoldEarned          int64
	TotalDamageDealt    int64
	PhysicalDamageDealt int64
	MagicDamageDealt    int64
	TrueDamageDealt     int64
	TotalDamageTaken    int64
	WardsPlaced         int64
	WardsKilled         int64
	Item0               int64
	Item1               int64
	Item2               int64
	Item3               int64
	Item4               int64
	Item5               int64
	Item6               int64
	Summoner1ID         int64
	Summoner2ID         int64
	PrimaryRuneStyle    *int64
	PrimaryRune0        *int64
	SecondaryRuneStyle  *int64
}

type Rune struct {
	ID           int64
	Name         string
	Description  string
	ImageUrl     string
	TreeID       int64
	TreeName     string
	Slot         int64
	PatchVersion string
}

type Summoner struct {
	Puuid         string
	GameName      string
	TagLine       string
	Region        string
	SummonerID    *string
	ProfileIconID int64
	SummonerLevel int64
	SoloTier      *string
	SoloRank      *string
	SoloLp        *int64
	SoloWins      *int64
	SoloLosses    *int64
	FlexTier      *string
	FlexRank      *string
	FlexLp        *int64
	FlexWins      *int64
	FlexLosses    *int64
	UpdatedAt     time.Time
}
