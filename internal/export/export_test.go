package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpchart/xpchart/internal/dataset/datasettest"
	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/skills"
)

func build(t *testing.T, points ...datasettest.Point) series.Chart {
	t.Helper()
	c, reason := series.Build(datasettest.Build(t, points...), series.Select(skills.Overall), skills.Hunter)
	require.Equal(t, series.ReasonNone, reason)
	return c
}

func TestPNG(t *testing.T) {
	c := build(t,
		datasettest.Point{At: "2023-01-01 00:00:00", Overall: 100, Hunter: 10},
		datasettest.Point{At: "2023-01-11 00:00:00", Overall: 200, Hunter: 20},
		datasettest.Point{At: "2023-01-21 00:00:00", Overall: 300, Hunter: 30},
	)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c, Options{Width: 640, Height: 320, Title: "Overall"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestPNGDefaultSize(t *testing.T) {
	c := build(t,
		datasettest.Point{At: "2023-01-01 00:00:00", Overall: 100},
		datasettest.Point{At: "2023-01-02 00:00:00", Overall: 150},
	)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c, Options{}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestPNGDegenerateRanges(t *testing.T) {
	tests := []struct {
		name   string
		points []datasettest.Point
	}{
		{"single point", []datasettest.Point{{At: "2023-01-01 00:00:00", Overall: 500, Hunter: 5}}},
		{"all zero", []datasettest.Point{
			{At: "2023-01-01 00:00:00"},
			{At: "2023-01-02 00:00:00"},
		}},
		{"single zero point", []datasettest.Point{{At: "2023-01-01 00:00:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PNG(&buf, build(t, tt.points...), Options{Width: 320, Height: 200}))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
		})
	}
}

func TestPNGNothingToRender(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PNG(&buf, series.Chart{}, Options{}), ErrNothingToRender)
	assert.Zero(t, buf.Len())
}

func TestPaddedRanges(t *testing.T) {
	x, y := paddedRanges(series.Bounds{
		X: series.Range{Min: 1000, Max: 1000},
		Y: series.Range{Min: 0, Max: 0},
	})
	assert.Equal(t, series.Range{Min: 1000 - halfDay, Max: 1000 + halfDay}, x)
	assert.Equal(t, series.Range{Min: 0, Max: 1}, y)

	b := series.Bounds{X: series.Range{Min: 1, Max: 2}, Y: series.Range{Min: 0, Max: 9}}
	x, y = paddedRanges(b)
	assert.Equal(t, b.X, x)
	assert.Equal(t, b.Y, y)
}
