package info

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/xpchart/xpchart/internal/screen"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
	"github.com/xpchart/xpchart/internal/ui/layout"
	"github.com/xpchart/xpchart/internal/ui/theme"
)

// Source loads account metadata. *temple.Client implements it.
type Source interface {
	PlayerInfo(ctx context.Context, player string) (skills.PlayerInfo, error)
}

type infoLoadedMsg struct {
	Info skills.PlayerInfo
	Err  error
}

// InfoScreen shows account metadata for one player.
type InfoScreen struct {
	source  Source
	player  string
	info    skills.PlayerInfo
	loaded  bool
	errMsg  string
	nowFunc func() time.Time
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)
var _ screen.StatusProvider = (*InfoScreen)(nil)

// New creates an InfoScreen for player.
func New(source Source, player string) *InfoScreen {
	return &InfoScreen{
		source:  source,
		player:  player,
		nowFunc: time.Now,
	}
}

func (s *InfoScreen) Init() tea.Cmd {
	return s.load()
}

func (s *InfoScreen) load() tea.Cmd {
	source, player := s.source, s.player
	return func() tea.Msg {
		info, err := source.PlayerInfo(context.Background(), player)
		return infoLoadedMsg{Info: info, Err: err}
	}
}

func (s *InfoScreen) Title() string {
	return "Player info"
}

func (s *InfoScreen) Status() string {
	return s.player
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case infoLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.info = msg.Info
			s.errMsg = ""
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "r" {
			s.loaded = false
			s.errMsg = ""
			return s, s.load()
		}
	}
	return s, nil
}

func (s *InfoScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  Loading %s...", s.player))
	}

	i := s.info
	rows := [][2]string{
		{"Username", i.Username},
		{"Country", i.Country},
		{"Game mode", i.GameMode.String()},
		{"Fresh start", yesNo(bool(i.FreshStart))},
		{"Level 3 combat", yesNo(bool(i.CombatLevel3))},
		{"Free to play", yesNo(bool(i.F2P))},
		{"Banned", yesNo(bool(i.Banned))},
		{"Disqualified", yesNo(bool(i.Disqualified))},
		{"Clan preference", clanPreference(i.ClanPreference)},
		{"Last checked", s.stamp(i.LastChecked)},
		{"Last changed", s.stamp(i.LastChanged)},
		{"Last changed KC", s.stamp(i.LastChangedKC)},
		{"Datapoint cooldown", i.DatapointCooldown},
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("  " + labelStyle.Render(r[0]) + valueStyle.Render(r[1]) + "\n")
	}
	return b.String()
}

func (s *InfoScreen) stamp(ts *timestamp.Timestamp) string {
	if ts == nil {
		return "never"
	}
	return fmt.Sprintf("%s (%s)", ts, humanize.RelTime(ts.Time(), s.nowFunc(), "ago", "from now"))
}

func clanPreference(p *uint32) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *p)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
