// Package export renders a series.Chart to a PNG image.
package export

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/xpchart/xpchart/internal/series"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 512

	// halfDay pads a collapsed time axis on either side.
	halfDay = 12 * 60 * 60
)

var (
	primaryColor   = drawing.ColorFromHex("D4A017")
	secondaryColor = drawing.ColorFromHex("2E8B57")
)

// ErrNothingToRender is returned for a chart without a primary series.
var ErrNothingToRender = errors.New("chart has no points")

// Options sizes the image.
type Options struct {
	Width  int
	Height int
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// PNG writes c to w as a PNG line chart using the same axes as the terminal
// view: X from first to last sample with three date ticks, Y from 0 to the
// final value.
func PNG(w io.Writer, c series.Chart, opts Options) error {
	if c.Primary.Len() == 0 {
		return ErrNothingToRender
	}
	opts = opts.withDefaults()

	xr, yr := paddedRanges(c.Bounds)
	mid := xr.Min + float64(int64(xr.Span())/2)

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks: []chart.Tick{
				{Value: xr.Min, Label: c.Labels.X[0]},
				{Value: mid, Label: c.Labels.X[1]},
				{Value: xr.Max, Label: c.Labels.X[2]},
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks: []chart.Tick{
				{Value: yr.Min, Label: c.Labels.Y[0]},
				{Value: yr.Max, Label: c.Labels.Y[1]},
			},
		},
		Series: []chart.Series{
			continuous(c.Primary, primaryColor),
		},
	}
	if c.Secondary.Len() > 0 {
		ch.Series = append(ch.Series, continuous(c.Secondary, secondaryColor))
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// paddedRanges widens collapsed axes so the renderer has a non-zero span.
func paddedRanges(b series.Bounds) (series.Range, series.Range) {
	x, y := b.X, b.Y
	if x.Span() <= 0 {
		x.Min -= halfDay
		x.Max += halfDay
	}
	if y.Span() <= 0 {
		y.Max = y.Min + 1
	}
	return x, y
}

func continuous(s series.Series, color drawing.Color) chart.ContinuousSeries {
	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
	if s.Len() == 1 {
		style.DotColor = color
		style.DotWidth = 4
	}
	return chart.ContinuousSeries{
		Name:    s.Skill.String(),
		XValues: s.XValues(),
		YValues: s.YValues(),
		Style:   style,
	}
}
