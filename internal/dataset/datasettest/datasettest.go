// Package datasettest builds small datasets for tests in other packages.
package datasettest

import (
	"testing"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
)

// Point describes one entry: a timestamp string plus overall and hunter
// experience. Other skills are derived from Overall so every field is set.
type Point struct {
	At      string
	Overall uint64
	Hunter  uint64
}

// Snapshot returns a fully populated snapshot for overall/hunter.
func Snapshot(overall, hunter uint64) skills.Snapshot {
	return skills.Snapshot{
		Overall:      overall,
		Attack:       overall / 10,
		Defence:      overall / 11,
		Strength:     overall / 12,
		Hitpoints:    overall / 13,
		Ranged:       overall / 14,
		Prayer:       overall / 15,
		Magic:        overall / 16,
		Cooking:      overall / 17,
		Woodcutting:  overall / 18,
		Fletching:    overall / 19,
		Fishing:      overall / 20,
		Firemaking:   overall / 21,
		Crafting:     overall / 22,
		Smithing:     overall / 23,
		Mining:       overall / 24,
		Herblore:     overall / 25,
		Agility:      overall / 26,
		Thieving:     overall / 27,
		Slayer:       overall / 28,
		Farming:      overall / 29,
		Runecraft:    overall / 30,
		Hunter:       hunter,
		Construction: overall / 31,
		Ehp:          float64(overall) / 1000,
	}
}

// MustParse parses s or fails the test.
func MustParse(tb testing.TB, s string) timestamp.Timestamp {
	tb.Helper()
	ts, err := timestamp.Parse(s)
	if err != nil {
		tb.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

// Build returns a dataset with one entry per point.
func Build(tb testing.TB, points ...Point) *dataset.Dataset {
	tb.Helper()
	entries := make([]dataset.Entry, 0, len(points))
	for _, p := range points {
		entries = append(entries, dataset.Entry{
			At:       MustParse(tb, p.At),
			Snapshot: Snapshot(p.Overall, p.Hunter),
		})
	}
	ds, err := dataset.New(entries...)
	if err != nil {
		tb.Fatalf("build dataset: %v", err)
	}
	return ds
}
