package api

type AccountDTO struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type SummonerDTO struct {
	ID            string `json:"id,omitempty"`
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

type LeagueEntryDTO struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type MasteryDTO struct {
	Puuid          string `json:"puuid"`
	ChampionID     int    `json:"championId"`
	ChampionLevel  int    `json:"championLevel"`
	ChampionPoints int    `json:"championPoints"`
	LastPlayTime   int64  `json:"lastPlayTime"`
}

type MatchDTO struct {
	Metadata MatchMetadataDTO `json:"metadata"`
	Info     MatchInfoDTO     `json:"info"`
}

type MatchMetadataDTO struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfoDTO struct {
	GameCreation       int64            `json:"gameCreation"`
	GameDuration       int              `json:"gameDuration"`
	GameStartTimestamp int64            `json:"gameStartTimestamp"`
	GameMode           string           `json:"gameMode"`
	GameVersion        string           `json:"gameVersion"`
	QueueID            int              `json:"queueId"`
	PlatformID         string           `json:"platformId"`
	Participants       []ParticipantDTO `json:"participants"`
	Teams              []TeamDTO        `json:"teams"`
}

type ParticipantDTO struct {
	Puuid                          string   `json:"puuid"`
	ParticipantID                  int      `json:"participantId"`
	TeamID                         int      `json:"teamId"`
	ChampionID                     int      `json:"championId"`
	ChampionName                   string   `json:"championName"`
	RiotIDGameName                 string   `json:"riotIdGameName"`
	RiotIDTagline                  string   `json:"riotIdTagline"`
	TeamPosition                   string   `json:"teamPosition"`
	Lane                           string   `json:"lane"`
	Win                            bool     `json:"win"`
	Kills                          int      `json:"kills"`
	Deaths                         int      `json:"deaths"`
	Assists                        int      `json:"assists"`
	ChampLevel                     int      `json:"champLevel"`
	TotalMinionsKilled             int      `json:"totalMinionsKilled"`
	NeutralMinionsKilled           int      `json:"neutralMinionsKilled"`
	VisionScore                    int      `json:"visionScore"`
	GoldEarned                     int      `json:"goldEarned"`
	TotalDamageDealtToChampions    int      `json:"totalDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int      `json:"physicalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int      `json:"magicDamageDealtToChampions"`
	TrueDamageDealtToChampions     int      `json:"trueDamageDealtToChampions"`
	TotalDamageTaken               int      `json:"totalDamageTaken"`
	WardsPlaced                    int      `json:"wardsPlaced"`
	WardsKilled                    int      `json:"wardsKilled"`
	Item0                          int      `json:"item0"`
	Item1                          int      `json:"item1"`
	Item2                          int      `json:"item2"`
	Item3                          int      `json:"item3"`
	Item4                          int      `json:"item4"`
	Item5                          int      `json:"item5"`
	Item6                          int      `json:"item6"`
	Summoner1ID                    int      `json:"summoner1Id"`
	Summoner2ID                    int      `json:"summoner2Id"`
	Perks                          PerksDTO `json:"perks"`
}

type PerksDTO struct {
	Styles []PerkStyleDTO `json:"styles"`
}

type PerkStyleDTO struct {
	Description string `json:"description"`
	Style       int    `json:"style"`
	Selections  []struct {
		Perk int `json:"perk"`
	} `json:"selections"`
}

type TeamDTO struct {
	TeamID     int                     `json:"teamId"`
	Win        bool                    `json:"win"`
	Bans       []BanDTO                `json:"bans"`
	Objectives map[string]ObjectiveDTO `json:"objectives"`
}

type BanDTO struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type ObjectiveDTO struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

type TimelineDTO struct {
	Metadata MatchMetadataDTO `json:"metadata"`
	Info     struct {
		FrameInterval int                `json:"frameInterval"`
		Frames        []TimelineFrameDTO `json:"frames"`
	} `json:"info"`
}

type TimelineFrameDTO struct {
	Timestamp         int64                               `json:"timestamp"`
	ParticipantFrames map[string]TimelineParticipantFrame `json:"participantFrames"`
	Events            []TimelineEventDTO                  `json:"events"`
}

type TimelineParticipantFrame struct {
	ParticipantID       int `json:"participantId"`
	TotalGold           int `json:"totalGold"`
	XP                  int `json:"xp"`
	Level               int `json:"level"`
	MinionsKilled       int `json:"minionsKilled"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
}

type TimelineEventDTO struct {
	Type         string    `json:"type"`
	Timestamp    int64     `json:"timestamp"`
	KillerID     *int      `json:"killerId,omitempty"`
	VictimID     *int      `json:"victimId,omitempty"`
	Position     *Position `json:"position,omitempty"`
	WardType     string    `json:"wardType,omitempty"`
	MonsterType  string    `json:"monsterType,omitempty"`
	BuildingType string    `json:"buildingType,omitempty"`
	TeamID       *int      `json:"teamId,omitempty"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}
