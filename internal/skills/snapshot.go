package skills

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Snapshot is one point-in-time measurement of every tracked skill for a
// player. Values are experience totals; Ehp is the derived efficiency score.
type Snapshot struct {
	Overall      uint64  `json:"Overall"`
	Attack       uint64  `json:"Attack"`
	Defence      uint64  `json:"Defence"`
	Strength     uint64  `json:"Strength"`
	Hitpoints    uint64  `json:"Hitpoints"`
	Ranged       uint64  `json:"Ranged"`
	Prayer       uint64  `json:"Prayer"`
	Magic        uint64  `json:"Magic"`
	Cooking      uint64  `json:"Cooking"`
	Woodcutting  uint64  `json:"Woodcutting"`
	Fletching    uint64  `json:"Fletching"`
	Fishing      uint64  `json:"Fishing"`
	Firemaking   uint64  `json:"Firemaking"`
	Crafting     uint64  `json:"Crafting"`
	Smithing     uint64  `json:"Smithing"`
	Mining       uint64  `json:"Mining"`
	Herblore     uint64  `json:"Herblore"`
	Agility      uint64  `json:"Agility"`
	Thieving     uint64  `json:"Thieving"`
	Slayer       uint64  `json:"Slayer"`
	Farming      uint64  `json:"Farming"`
	Runecraft    uint64  `json:"Runecraft"`
	Hunter       uint64  `json:"Hunter"`
	Construction uint64  `json:"Construction"`
	Ehp          float64 `json:"Ehp"`
}

// ErrMalformedSnapshot matches any *MalformedSnapshotError via errors.Is.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// MalformedSnapshotError reports a raw record that is missing a mandatory
// field or carries a value of the wrong type. Record names the payload kind
// and defaults to "snapshot".
type MalformedSnapshotError struct {
	Record string
	Err    error
}

func (e *MalformedSnapshotError) Error() string {
	record := e.Record
	if record == "" {
		record = "snapshot"
	}
	return fmt.Sprintf("malformed %s: %v", record, e.Err)
}

func (e *MalformedSnapshotError) Unwrap() error { return e.Err }

func (e *MalformedSnapshotError) Is(target error) bool {
	return target == ErrMalformedSnapshot
}

// DecodeSnapshot decodes one raw datapoint record. Every catalog skill and
// "Ehp" must be present; a missing key fails the record rather than leaving
// a zero in its place. Unknown keys are ignored.
func DecodeSnapshot(raw []byte) (Snapshot, error) {
	if err := validateRecord(snapshotSchema, raw); err != nil {
		return Snapshot{}, &MalformedSnapshotError{Err: err}
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, &MalformedSnapshotError{Err: err}
	}
	return snap, nil
}

// Value is a convenience for s.Value(&snap).
func (snap Snapshot) Value(s Skill) uint64 {
	return s.Value(&snap)
}
