package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
}

func TestIsCompactWidth(t *testing.T) {
	assert.True(t, IsCompactWidth(CompactWidthThreshold-1))
	assert.False(t, IsCompactWidth(CompactWidthThreshold))
}

func TestRenderHeader(t *testing.T) {
	h := ansi.Strip(RenderHeader("Skill progression", "Posemann", 80))
	assert.Contains(t, h, "xpchart")
	assert.Contains(t, h, "Skill progression")
	assert.Contains(t, h, "Posemann")
	assert.Equal(t, 3, len(strings.Split(h, "\n")))
}

func TestRenderFooter(t *testing.T) {
	f := ansi.Strip(RenderFooter([]KeyHint{
		{Key: "q", Description: "Quit"},
		{Key: "/", Description: "Player"},
	}, 80))
	assert.Contains(t, f, "q Quit")
	assert.Contains(t, f, "/ Player")
}

func TestRenderFrame(t *testing.T) {
	frame := RenderFrame("H", "body", "F", 20, 6)
	lines := strings.Split(ansi.Strip(frame), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "H", lines[0])
	assert.Equal(t, "F", lines[5])
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := ansi.Strip(RenderMinSizeMessage(40, 10))
	assert.Contains(t, msg, "Terminal too small")
	assert.Contains(t, msg, "40 x 10")
}
