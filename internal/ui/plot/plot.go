// Package plot draws a series.Chart as a braille line chart with axis labels.
package plot

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/ui/theme"
)

// Minimum canvas size in cells. Smaller requests are clamped up.
const (
	MinCanvasWidth  = 10
	MinCanvasHeight = 3
)

// Series indexes on the canvas. Lower indexes win ties when a cell is shared.
const (
	primaryIdx = iota
	secondaryIdx
)

var brailleDots = [4][2]rune{
	{0x01, 0x08}, // top
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80}, // bottom
}

const brailleBlank = rune(0x2800)

type canvas struct {
	cw, ch int   // character dimensions
	pw, ph int   // pixel dimensions (cw*2, ch*4)
	grid   []int // flat [ph*pw], series index per pixel (-1 = empty)
}

func newCanvas(cw, ch int) *canvas {
	pw, ph := cw*2, ch*4
	grid := make([]int, pw*ph)
	for i := range grid {
		grid[i] = -1
	}
	return &canvas{cw: cw, ch: ch, pw: pw, ph: ph, grid: grid}
}

// set marks a pixel. Pixels outside the canvas are clipped.
func (c *canvas) set(px, py, idx int) {
	if px >= 0 && px < c.pw && py >= 0 && py < c.ph {
		c.grid[py*c.pw+px] = idx
	}
}

// drawLine rasterizes the part of the segment that lies on the canvas and
// returns the number of steps taken.
func (c *canvas) drawLine(x0, y0, x1, y1 float64, idx int) int {
	x0, y0, x1, y1, ok := c.clip(x0, y0, x1, y1)
	if !ok {
		return 0
	}
	dx := x1 - x0
	dy := y1 - y0
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		c.set(int(math.Round(x0)), int(math.Round(y0)), idx)
		return 1
	}
	xInc := dx / steps
	yInc := dy / steps
	x, y := x0, y0
	n := int(steps)
	for i := 0; i <= n; i++ {
		c.set(int(math.Round(x)), int(math.Round(y)), idx)
		x += xInc
		y += yInc
	}
	return n + 1
}

// clip trims a segment to the pixel rectangle (Liang-Barsky). ok is false
// when no part of it is visible.
func (c *canvas) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, float64(c.pw-1) - x0},
		{-dy, y0},
		{dy, float64(c.ph-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// plot draws pts as a connected line scaled into b and returns the number
// of rasterization steps taken.
func (c *canvas) plot(pts []series.Point, b series.Bounds, idx int) int {
	steps := 0
	for i, p := range pts {
		px, py := c.scale(p, b)
		if i == 0 {
			steps += c.drawLine(px, py, px, py, idx)
			continue
		}
		prevX, prevY := c.scale(pts[i-1], b)
		steps += c.drawLine(prevX, prevY, px, py, idx)
	}
	return steps
}

// scale maps a data point to pixel coordinates. A collapsed X range puts
// every point in the middle column; a collapsed Y range puts it on the
// baseline. Out-of-range values land off canvas and are clipped.
func (c *canvas) scale(p series.Point, b series.Bounds) (float64, float64) {
	px := float64((c.pw - 1) / 2)
	if span := b.X.Span(); span > 0 {
		px = (p.X - b.X.Min) / span * float64(c.pw-1)
	}

	py := float64(c.ph - 1)
	if span := b.Y.Span(); span > 0 {
		py = float64(c.ph-1) - (p.Y-b.Y.Min)/span*float64(c.ph-1)
	}
	return px, py
}

// cells returns each character cell's braille rune and the series that owns
// most of its dots, or -1 for an empty cell.
func (c *canvas) cells() ([][]rune, [][]int) {
	runes := make([][]rune, c.ch)
	owners := make([][]int, c.ch)
	for cy := 0; cy < c.ch; cy++ {
		runes[cy] = make([]rune, c.cw)
		owners[cy] = make([]int, c.cw)
		for cx := 0; cx < c.cw; cx++ {
			pattern := brailleBlank
			var counts [2]int
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					si := c.grid[(cy*4+dy)*c.pw+cx*2+dx]
					if si >= 0 {
						pattern |= brailleDots[dy][dx]
						counts[si]++
					}
				}
			}
			runes[cy][cx] = pattern
			switch {
			case pattern == brailleBlank:
				owners[cy][cx] = -1
			case counts[secondaryIdx] > counts[primaryIdx]:
				owners[cy][cx] = secondaryIdx
			default:
				owners[cy][cx] = primaryIdx
			}
		}
	}
	return runes, owners
}

// Render draws chart into a block of at most width x height cells: a Y
// axis labelled at 0 and the final value, the braille canvas, and an X axis
// labelled at the start, midpoint and end dates.
func Render(chart series.Chart, width, height int) string {
	yLabelW := max(lipgloss.Width(chart.Labels.Y[0]), lipgloss.Width(chart.Labels.Y[1]))

	// Y labels, the axis line, and one row each for the X axis and labels.
	cw := max(width-yLabelW-1, MinCanvasWidth)
	ch := max(height-2, MinCanvasHeight)

	c := newCanvas(cw, ch)
	c.plot(chart.Secondary.Points, chart.Bounds, secondaryIdx)
	c.plot(chart.Primary.Points, chart.Bounds, primaryIdx)
	runes, owners := c.cells()

	styles := [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.SeriesPrimary),
		lipgloss.NewStyle().Foreground(theme.SeriesSecondary),
	}
	axis := theme.Axis

	var sb strings.Builder
	for cy := 0; cy < ch; cy++ {
		label := ""
		switch cy {
		case 0:
			label = chart.Labels.Y[1]
		case ch - 1:
			label = chart.Labels.Y[0]
		}
		sb.WriteString(axis.Render(padLeft(label, yLabelW) + "│"))
		for cx := 0; cx < cw; cx++ {
			if owners[cy][cx] < 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(styles[owners[cy][cx]].Render(string(runes[cy][cx])))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(axis.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", cw)))
	sb.WriteByte('\n')
	sb.WriteString(axis.Render(strings.Repeat(" ", yLabelW+1) + xLabelRow(chart.Labels.X, cw)))
	return sb.String()
}

// xLabelRow places the start label flush left, the end label flush right
// and the midpoint label centred. Labels that would overlap are dropped,
// middle first.
func xLabelRow(labels [3]string, width int) string {
	row := []rune(strings.Repeat(" ", width))
	put := func(s string, at int) bool {
		r := []rune(s)
		if at < 0 || at+len(r) > width {
			return false
		}
		for i := at; i < at+len(r); i++ {
			if row[i] != ' ' {
				return false
			}
		}
		copy(row[at:], r)
		return true
	}

	start, mid, end := labels[0], labels[1], labels[2]
	put(start, 0)
	endAt := width - len([]rune(end))
	if endAt >= len([]rune(start))+1 {
		put(end, endAt)
	}
	midAt := (width - len([]rune(mid))) / 2
	if midAt > len([]rune(start)) && midAt+len([]rune(mid)) < endAt {
		put(mid, midAt)
	}
	return string(row)
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// Legend renders the colored series names.
func Legend(chart series.Chart) string {
	swatch := func(c color.Color, name string) string {
		return lipgloss.NewStyle().Foreground(c).Render("━━ " + name)
	}
	parts := []string{swatch(theme.SeriesPrimary, chart.Primary.Skill.String())}
	if chart.Secondary.Len() > 0 {
		parts = append(parts, swatch(theme.SeriesSecondary, chart.Secondary.Skill.String()))
	}
	return strings.Join(parts, "   ")
}
