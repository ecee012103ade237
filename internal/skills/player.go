package skills

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/xpchart/xpchart/internal/timestamp"
)

// GameMode is the account type reported by the API.
type GameMode uint8

const (
	GameModeNormal GameMode = iota
	GameModeIronman
	GameModeUltimateIronman
	GameModeHardcoreIronman
)

func (g GameMode) String() string {
	switch g {
	case GameModeNormal:
		return "Normal"
	case GameModeIronman:
		return "Ironman"
	case GameModeUltimateIronman:
		return "Ultimate Ironman"
	case GameModeHardcoreIronman:
		return "Hardcore Ironman"
	default:
		return fmt.Sprintf("GameMode(%d)", uint8(g))
	}
}

// Flag is a boolean the API encodes as 0 or 1.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "0", "false":
		*f = false
	case "1", "true":
		*f = true
	default:
		return fmt.Errorf("invalid flag value %s", b)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// PlayerInfo is account-level metadata. Pointer fields are optional and may
// be absent or null in the response.
type PlayerInfo struct {
	Username          string               `json:"Username"`
	Country           string               `json:"Country"`
	GameMode          GameMode             `json:"Game mode"`
	FreshStart        Flag                 `json:"fresh_start_account"`
	CombatLevel3      Flag                 `json:"Cb-3"`
	F2P               Flag                 `json:"F2p"`
	Banned            Flag                 `json:"Banned"`
	Disqualified      Flag                 `json:"Disqualified"`
	ClanPreference    *uint32              `json:"Clan preference"`
	LastChecked       *timestamp.Timestamp `json:"Last checked"`
	LastChanged       *timestamp.Timestamp `json:"Last changed"`
	LastChangedKC     *timestamp.Timestamp `json:"Last changed KC"`
	DatapointCooldown string               `json:"Datapoint Cooldown"`
}

// DecodePlayerInfo decodes the player_info payload. Missing mandatory fields
// are reported as *MalformedSnapshotError, the same as datapoint records.
func DecodePlayerInfo(raw []byte) (PlayerInfo, error) {
	if err := validateRecord(playerInfoSchema, raw); err != nil {
		return PlayerInfo{}, &MalformedSnapshotError{Record: "player info", Err: err}
	}

	var info PlayerInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return PlayerInfo{}, &MalformedSnapshotError{Record: "player info", Err: err}
	}
	return info, nil
}
