package series

import (
	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/skills"
)

// Chart is everything a renderer needs to draw one frame: the selected
// series, the comparison overlay, and axes derived from the selected series.
type Chart struct {
	Primary   Series
	Secondary Series
	Bounds    Bounds
	Labels    Labels
}

// Build assembles a Chart for sel with secondary as the overlay. When there
// is nothing to draw it returns the reason and a zero Chart.
func Build(ds *dataset.Dataset, sel Selection, secondary skills.Skill) (Chart, Reason) {
	primary, ok := Extract(ds, sel)
	if !ok {
		return Chart{}, Why(ds, sel)
	}
	overlay, _ := Secondary(ds, secondary)
	bounds, _ := primary.Bounds()
	labels, _ := primary.Labels()
	return Chart{
		Primary:   primary,
		Secondary: overlay,
		Bounds:    bounds,
		Labels:    labels,
	}, ReasonNone
}
