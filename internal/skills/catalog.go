package skills

import (
	"fmt"
	"strings"
)

// Skill indexes the fixed catalog. Index 0 is Overall.
type Skill int

const (
	Overall Skill = iota
	Attack
	Defence
	Strength
	Hitpoints
	Ranged
	Prayer
	Magic
	Cooking
	Woodcutting
	Fletching
	Fishing
	Firemaking
	Crafting
	Smithing
	Mining
	Herblore
	Agility
	Thieving
	Slayer
	Farming
	Runecraft
	Hunter
	Construction
)

// Count is the number of selectable skills.
const Count = 24

// catalogEntry pairs a display name (which is also the API field key) with
// the accessor that reads it from a snapshot.
type catalogEntry struct {
	name string
	get  func(*Snapshot) uint64
}

var catalog = [Count]catalogEntry{
	{"Overall", func(s *Snapshot) uint64 { return s.Overall }},
	{"Attack", func(s *Snapshot) uint64 { return s.Attack }},
	{"Defence", func(s *Snapshot) uint64 { return s.Defence }},
	{"Strength", func(s *Snapshot) uint64 { return s.Strength }},
	{"Hitpoints", func(s *Snapshot) uint64 { return s.Hitpoints }},
	{"Ranged", func(s *Snapshot) uint64 { return s.Ranged }},
	{"Prayer", func(s *Snapshot) uint64 { return s.Prayer }},
	{"Magic", func(s *Snapshot) uint64 { return s.Magic }},
	{"Cooking", func(s *Snapshot) uint64 { return s.Cooking }},
	{"Woodcutting", func(s *Snapshot) uint64 { return s.Woodcutting }},
	{"Fletching", func(s *Snapshot) uint64 { return s.Fletching }},
	{"Fishing", func(s *Snapshot) uint64 { return s.Fishing }},
	{"Firemaking", func(s *Snapshot) uint64 { return s.Firemaking }},
	{"Crafting", func(s *Snapshot) uint64 { return s.Crafting }},
	{"Smithing", func(s *Snapshot) uint64 { return s.Smithing }},
	{"Mining", func(s *Snapshot) uint64 { return s.Mining }},
	{"Herblore", func(s *Snapshot) uint64 { return s.Herblore }},
	{"Agility", func(s *Snapshot) uint64 { return s.Agility }},
	{"Thieving", func(s *Snapshot) uint64 { return s.Thieving }},
	{"Slayer", func(s *Snapshot) uint64 { return s.Slayer }},
	{"Farming", func(s *Snapshot) uint64 { return s.Farming }},
	{"Runecraft", func(s *Snapshot) uint64 { return s.Runecraft }},
	{"Hunter", func(s *Snapshot) uint64 { return s.Hunter }},
	{"Construction", func(s *Snapshot) uint64 { return s.Construction }},
}

// SelectionError reports a skill index outside [0, Count). Reaching it
// means a caller skipped bounds checking; it is never a user error.
type SelectionError struct {
	Index int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("skill index %d out of range [0, %d)", e.Index, Count)
}

// FromIndex returns the skill at index i.
func FromIndex(i int) (Skill, error) {
	if i < 0 || i >= Count {
		return 0, &SelectionError{Index: i}
	}
	return Skill(i), nil
}

// MustIndex is FromIndex for indexes the caller has already bounded.
// It panics with *SelectionError otherwise.
func MustIndex(i int) Skill {
	s, err := FromIndex(i)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup finds a skill by name, ignoring case and surrounding space.
func Lookup(name string) (Skill, error) {
	name = strings.TrimSpace(name)
	for i, e := range catalog {
		if strings.EqualFold(e.name, name) {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skill %q", name)
}

// Names returns the catalog names in index order.
func Names() []string {
	out := make([]string, Count)
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}

// Valid reports whether s indexes the catalog.
func (s Skill) Valid() bool {
	return s >= 0 && s < Count
}

// Index returns s as a plain int.
func (s Skill) Index() int {
	return int(s)
}

func (s Skill) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return catalog[s].name
}

// Value reads this skill from snap. It panics with *SelectionError when s is
// outside the catalog.
func (s Skill) Value(snap *Snapshot) uint64 {
	if !s.Valid() {
		panic(&SelectionError{Index: int(s)})
	}
	return catalog[s].get(snap)
}
