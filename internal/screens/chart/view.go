package chart

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/tracker"
	"github.com/xpchart/xpchart/internal/ui/layout"
	"github.com/xpchart/xpchart/internal/ui/plot"
	"github.com/xpchart/xpchart/internal/ui/theme"
)

// Status summarises the tracker for the header.
func (s *ChartScreen) Status() string {
	st := s.tracker.State()
	if st.Pending != nil {
		return spinnerFrames[s.frame] + " " + st.Pending.Player
	}
	switch st.Phase {
	case tracker.Loaded:
		return st.Player
	case tracker.Failed:
		return st.Player + " (failed)"
	default:
		return "no player"
	}
}

func (s *ChartScreen) View(width, height int) string {
	var top []string
	if s.editing {
		top = append(top, theme.Body.Render("  Player: ")+s.input.View())
	}
	if s.notice != "" {
		top = append(top, lipgloss.NewStyle().Foreground(theme.Accent).Render("  "+s.notice))
	}
	header := strings.Join(top, "\n")
	bodyHeight := height - lipgloss.Height(header)
	if header == "" {
		bodyHeight = height
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	// Panel border and padding take four columns and two rows.
	panelH := max(bodyHeight-2, 1)

	var body string
	if layout.IsCompactWidth(width) {
		body = theme.Panel.Render(s.mainView(max(width-4, 1), panelH))
	} else {
		list := theme.Panel.Render(s.list.View(bodyHeight - 2))
		panelW := max(width-lipgloss.Width(list)-1-4, 1)
		main := theme.Panel.Render(s.mainView(panelW, panelH))
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", main)
	}
	if header == "" {
		return body
	}
	return header + "\n" + body
}

// mainView renders the chart or the message that replaces it.
func (s *ChartScreen) mainView(width, height int) string {
	st := s.tracker.State()

	if st.Pending != nil && st.Dataset.IsEmpty() {
		return message(width, height, theme.Pending,
			fmt.Sprintf("%s Fetching %s...", spinnerFrames[s.frame], st.Pending.Player))
	}

	switch st.Phase {
	case tracker.Uninitialized:
		return message(width, height, theme.Hint, "Press / to look up a player")
	case tracker.Failed:
		return message(width, height, theme.Failed,
			fmt.Sprintf("Could not load %s\n\n%s", st.Player, st.Err))
	}

	c, reason := series.Build(st.Dataset, s.list.Selection, s.secondary)
	switch reason {
	case series.ReasonNoSelection:
		return message(width, height, theme.Hint, "Select a skill with ↑↓")
	case series.ReasonNoData:
		return message(width, height, theme.Hint,
			fmt.Sprintf("No datapoints recorded for %s", st.Player))
	}

	latest := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s xp", c.Labels.Y[1]))
	legend := plot.Legend(c) + "   " + latest
	return legend + "\n" + plot.Render(c, width, height-1)
}

func message(width, height int, style lipgloss.Style, text string) string {
	return style.
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}
