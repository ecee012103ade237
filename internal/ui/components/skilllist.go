package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/ui/theme"
)

// SkillListWidth is the rendered width of a SkillList, marker included.
const SkillListWidth = 16

// SkillList is a vertical list of every catalog skill with the current
// selection highlighted. Up and down wrap; esc clears the selection.
type SkillList struct {
	Selection series.Selection
}

// NewSkillList creates a list with sel highlighted.
func NewSkillList(sel series.Selection) SkillList {
	return SkillList{Selection: sel}
}

// Init returns nil (no initial command).
func (l SkillList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (l SkillList) Update(msg tea.Msg) (SkillList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		l.Selection = l.Selection.Prev()
	case "down", "j":
		l.Selection = l.Selection.Next()
	case "esc":
		l.Selection = l.Selection.Clear()
	}
	return l, nil
}

// View renders up to height rows, scrolled so the selection stays visible.
func (l SkillList) View(height int) string {
	names := skills.Names()
	if height <= 0 || height > len(names) {
		height = len(names)
	}

	cur, ok := l.Selection.Skill()
	start := 0
	if ok && cur.Index() >= height {
		start = cur.Index() - height + 1
	}

	rows := make([]string, 0, height)
	for i := start; i < start+height; i++ {
		if ok && i == cur.Index() {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Width(SkillListWidth).
				Render("▸ "+names[i]))
		} else {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(SkillListWidth).
				Render("  "+names[i]))
		}
	}
	return strings.Join(rows, "\n")
}
