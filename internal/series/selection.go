package series

import "github.com/xpchart/xpchart/internal/skills"

// Selection is the highlighted catalog entry, or none. The zero value is
// none. A present index is always inside the catalog.
type Selection struct {
	skill skills.Skill
	ok    bool
}

// None returns an empty selection.
func None() Selection {
	return Selection{}
}

// Select returns a selection of s. It panics with *skills.SelectionError if s
// is outside the catalog.
func Select(s skills.Skill) Selection {
	return Selection{skill: skills.MustIndex(int(s)), ok: true}
}

// Skill returns the selected skill, if any.
func (s Selection) Skill() (skills.Skill, bool) {
	return s.skill, s.ok
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool {
	return !s.ok
}

// Next moves down the catalog, wrapping from the last entry to the first.
// With nothing selected it selects the first entry.
func (s Selection) Next() Selection {
	if !s.ok {
		return Select(skills.Overall)
	}
	return Select(skills.Skill((int(s.skill) + 1) % skills.Count))
}

// Prev moves up the catalog, wrapping from the first entry to the last.
// With nothing selected it selects the first entry.
func (s Selection) Prev() Selection {
	if !s.ok {
		return Select(skills.Overall)
	}
	return Select(skills.Skill((int(s.skill) + skills.Count - 1) % skills.Count))
}

// Clear drops the selection.
func (s Selection) Clear() Selection {
	return None()
}

func (s Selection) String() string {
	if !s.ok {
		return "none"
	}
	return s.skill.String()
}
