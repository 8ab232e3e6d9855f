package service

import (
	"sort"
	"strconv"
	"riftlens/internal/api"

	"github.com/bytedance/sonic"
)

var keptTimelineEvents = map[string]bool{
	"CHAMPION_KILL":      true,
	"ELITE_MONSTER_KILL": true,
	"BUILDING_KILL":      true,
	"WARD_PLACED":        true,
	"WARD_KILL":          true,
}

type Timeline struct {
	Frames []TimelineFrame `json:"frames"`
}

type TimelineFrame struct {
	Timestamp    int64                          `json:"timestamp"`
	BlueTeamGold int                            `json:"blueTeamGold"`
	RedTeamGold  int                            `json:"redTeamGold"`
	BlueTeamXP   int                            `json:"blueTeamXp"`
	RedTeamXP    int                            `json:"redTeamXp"`
	Participants map[string]ParticipantSnapshot `json:"participants"`
	Events       []TimelineEvent                `json:"events"`
}

type ParticipantSnapshot struct {
	Gold  int `json:"gold"`
	XP    int `json:"xp"`
	CS    int `json:"cs"`
	Level int `json:"level"`
}

type TimelineEvent struct {
	Type         string        `json:"type"`
	Timestamp    int64         `json:"timestamp"`
	KillerID     *int          `json:"killerId,omitempty"`
	VictimID     *int          `json:"victimId,omitempty"`
	Position     *api.Position `json:"position,omitempty"`
	WardType     string        `json:"wardType,omitempty"`
	MonsterType  string        `json:"monsterType,omitempty"`
	BuildingType string        `json:"buildingType,omitempty"`
	TeamID       *int          `json:"teamId,omitempty"`
}

// transformTimeline reduces the raw timeline to team gold/xp curves, per
// participant snapshots and the map events the match page draws. Participants
// 1-5 are the blue side.
func transformTimeline(raw *api.TimelineDTO) Timeline {
	frames := make([]TimelineFrame, 0, len(raw.Info.Frames))
	for _, f := range raw.Info.Frames {
		frame := TimelineFrame{
			Timestamp:    f.Timestamp,
			Participants: make(map[string]ParticipantSnapshot, len(f.ParticipantFrames)),
			Events:       []TimelineEvent{},
		}

		keys := make([]string, 0, len(f.ParticipantFrames))
		for k := range f.ParticipantFrames {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			pf := f.ParticipantFrames[k]
			pid := pf.ParticipantID
			if pid == 0 {
				pid, _ = strconv.Atoi(k)
			}
			frame.Participants[strconv.Itoa(pid)] = ParticipantSnapshot{
				Gold:  pf.TotalGold,
				XP:    pf.XP,
				CS:    pf.MinionsKilled + pf.JungleMinionsKilled,
				Level: pf.Level,
			}
			if pid <= 5 {
				frame.BlueTeamGold += pf.TotalGold
				frame.BlueTeamXP += pf.XP
			} else {
				frame.RedTeamGold += pf.TotalGold
				frame.RedTeamXP += pf.XP
			}
		}

		for _, e := range f.Events {
			if !keptTimelineEvents[e.Type] {
				continue
			}
			frame.Events = append(frame.Events, TimelineEvent{
				Type:         e.Type,
				Timestamp:    e.Timestamp,
				KillerID:     e.KillerID,
				VictimID:     e.VictimID,
				Position:     e.Position,
				WardType:     e.WardType,
				MonsterType:  e.MonsterType,
				BuildingType: e.BuildingType,
				TeamID:       e.TeamID,
			})
		}
		frames = append(frames, frame)
	}
	return Timeline{Frames: frames}
}

func encodeTimeline(t Timeline) ([]byte, error) {
	return sonic.Marshal(t)
}

func decodeTimeline(b []byte) (*Timeline, error) {
	var t Timeline
	if err := sonic.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
