package series

import (
	"github.com/dustin/go-humanize"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
)

// Point is one plotted sample: X is seconds since the epoch, Y the skill
// value.
type Point struct {
	X float64
	Y float64
}

// Series is a time-ordered run of points for one skill.
type Series struct {
	Skill  skills.Skill
	Points []Point
}

// Reason explains why there is nothing to plot. It is not an error.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoSelection
	ReasonNoData
)

func (r Reason) String() string {
	switch r {
	case ReasonNoSelection:
		return "no skill selected"
	case ReasonNoData:
		return "no data"
	default:
		return ""
	}
}

// Why reports what Extract would be missing for ds and sel. No selection
// takes precedence over no data.
func Why(ds *dataset.Dataset, sel Selection) Reason {
	if sel.IsNone() {
		return ReasonNoSelection
	}
	if ds.IsEmpty() {
		return ReasonNoData
	}
	return ReasonNone
}

// Extract builds the series for the selected skill. It returns false when
// nothing is selected or ds is empty; use Why to tell the two apart.
func Extract(ds *dataset.Dataset, sel Selection) (Series, bool) {
	skill, ok := sel.Skill()
	if !ok || ds.IsEmpty() {
		return Series{}, false
	}
	return extract(ds, skill), true
}

// Secondary builds the fixed comparison series for skill, independent of
// the current selection. It panics with *skills.SelectionError if skill is
// outside the catalog.
func Secondary(ds *dataset.Dataset, skill skills.Skill) (Series, bool) {
	if !skill.Valid() {
		panic(&skills.SelectionError{Index: int(skill)})
	}
	if ds.IsEmpty() {
		return Series{}, false
	}
	return extract(ds, skill), true
}

func extract(ds *dataset.Dataset, skill skills.Skill) Series {
	points := make([]Point, 0, ds.Len())
	for at, snap := range ds.All() {
		points = append(points, Point{
			X: float64(at.Unix()),
			Y: float64(skill.Value(&snap)),
		})
	}
	return Series{Skill: skill, Points: points}
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Points)
}

// XValues and YValues split the points into parallel slices.
func (s Series) XValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

func (s Series) YValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Bounds are the plot axes for a series.
type Bounds struct {
	X Range
	Y Range
}

// Bounds returns X from the first to the last point and Y from 0 to the
// last point's value. Experience never decreases, so the last value is the
// maximum; a series that can fall would be clipped by these bounds.
// A single point collapses X to one value.
func (s Series) Bounds() (Bounds, bool) {
	if len(s.Points) == 0 {
		return Bounds{}, false
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	return Bounds{
		X: Range{Min: first.X, Max: last.X},
		Y: Range{Min: 0, Max: last.Y},
	}, true
}

// Labels are axis tick labels: X at start, midpoint and end; Y at 0 and the
// final value.
type Labels struct {
	X [3]string
	Y [2]string
}

// Labels formats axis labels from Bounds.
func (s Series) Labels() (Labels, bool) {
	b, ok := s.Bounds()
	if !ok {
		return Labels{}, false
	}
	start := int64(b.X.Min)
	end := int64(b.X.Max)
	mid := start + (end-start)/2

	return Labels{
		X: [3]string{
			timestamp.FromUnix(start).Date(),
			timestamp.FromUnix(mid).Date(),
			timestamp.FromUnix(end).Date(),
		},
		Y: [2]string{
			FormatValue(0),
			FormatValue(b.Y.Max),
		},
	}, true
}

// FormatValue renders v as a whole number with comma digit grouping.
func FormatValue(v float64) string {
	return humanize.Comma(int64(v))
}
