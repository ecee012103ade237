package dataset

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
)

// ErrDuplicateTimestamp is returned by New when two entries share a key.
var ErrDuplicateTimestamp = errors.New("duplicate timestamp")

// Entry is one (timestamp, snapshot) pair.
type Entry struct {
	At       timestamp.Timestamp
	Snapshot skills.Snapshot
}

// Dataset is an immutable, chronologically ordered history of snapshots.
// The zero value and a nil *Dataset are both empty.
type Dataset struct {
	entries []Entry
}

// New builds a dataset from entries in any order. Keys must be unique.
func New(entries ...Entry) (*Dataset, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return a.At.Compare(b.At) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].At == sorted[i-1].At {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTimestamp, sorted[i].At)
		}
	}
	return &Dataset{entries: sorted}, nil
}

// FromMap builds a dataset from a keyed map; map keys are unique already.
func FromMap(m map[timestamp.Timestamp]skills.Snapshot) *Dataset {
	entries := make([]Entry, 0, len(m))
	for at, snap := range m {
		entries = append(entries, Entry{At: at, Snapshot: snap})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return a.At.Compare(b.At) })
	return &Dataset{entries: entries}
}

// IsEmpty reports whether the dataset has no entries.
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.entries) == 0
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of the entries in ascending timestamp order.
func (d *Dataset) Entries() []Entry {
	if d == nil {
		return nil
	}
	return slices.Clone(d.entries)
}

// All iterates entries in ascending timestamp order. It can be ranged over
// any number of times.
func (d *Dataset) All() iter.Seq2[timestamp.Timestamp, skills.Snapshot] {
	return func(yield func(timestamp.Timestamp, skills.Snapshot) bool) {
		if d == nil {
			return
		}
		for _, e := range d.entries {
			if !yield(e.At, e.Snapshot) {
				return
			}
		}
	}
}

// First returns the earliest entry.
func (d *Dataset) First() (Entry, bool) {
	if d.IsEmpty() {
		return Entry{}, false
	}
	return d.entries[0], true
}

// Last returns the latest entry.
func (d *Dataset) Last() (Entry, bool) {
	if d.IsEmpty() {
		return Entry{}, false
	}
	return d.entries[len(d.entries)-1], true
}

// Get returns the snapshot recorded at exactly at.
func (d *Dataset) Get(at timestamp.Timestamp) (skills.Snapshot, bool) {
	if d == nil {
		return skills.Snapshot{}, false
	}
	i, found := slices.BinarySearchFunc(d.entries, at, func(e Entry, t timestamp.Timestamp) int {
		return e.At.Compare(t)
	})
	if !found {
		return skills.Snapshot{}, false
	}
	return d.entries[i].Snapshot, true
}
