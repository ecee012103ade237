package chart

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xpchart/xpchart/internal/router"
	"github.com/xpchart/xpchart/internal/screen"
	"github.com/xpchart/xpchart/internal/screens/info"
	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/tracker"
	"github.com/xpchart/xpchart/internal/ui/components"
	"github.com/xpchart/xpchart/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const busyNotice = "A fetch is already running"

// Options configures a ChartScreen.
type Options struct {
	Tracker *tracker.Tracker

	// Info backs the player info screen. Nil disables it.
	Info info.Source

	// Player is fetched on Init when set.
	Player string

	// Secondary is the overlay skill drawn under every selection.
	Secondary skills.Skill

	// Selection is the initially highlighted skill.
	Selection series.Selection
}

// ChartScreen shows one player's skill history: a skill list on the left and
// the selected skill's chart on the right. "/" opens the player prompt.
type ChartScreen struct {
	tracker   *tracker.Tracker
	info      info.Source
	initial   string
	secondary skills.Skill

	list    components.SkillList
	editing bool
	input   components.TextInput
	notice  string
	frame   int
}

var _ screen.Screen = (*ChartScreen)(nil)
var _ screen.KeyHintProvider = (*ChartScreen)(nil)
var _ screen.StatusProvider = (*ChartScreen)(nil)

// New creates a ChartScreen.
func New(opts Options) *ChartScreen {
	return &ChartScreen{
		tracker:   opts.Tracker,
		info:      opts.Info,
		initial:   opts.Player,
		secondary: opts.Secondary,
		list:      components.NewSkillList(opts.Selection),
	}
}

func (s *ChartScreen) Init() tea.Cmd {
	if s.initial == "" {
		return s.openPrompt("")
	}
	return s.startFetch(s.initial)
}

func (s *ChartScreen) Title() string {
	return "Skill progression"
}

// Selection returns the highlighted skill.
func (s *ChartScreen) Selection() series.Selection {
	return s.list.Selection
}

func (s *ChartScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Fetch"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Skill"},
		{Key: "Esc", Description: "Clear"},
		{Key: "/", Description: "Player"},
		{Key: "r", Description: "Refresh"},
	}
	if s.info != nil {
		hints = append(hints, layout.KeyHint{Key: "i", Description: "Info"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
}

func (s *ChartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		if s.tracker.Complete(msg.Ticket, msg.Dataset, msg.Err) {
			s.notice = ""
		}
		return s, nil

	case spinnerTickMsg:
		if s.tracker.State().Pending == nil {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyPressMsg:
		if s.editing {
			return s.handleEditKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChartScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "q":
		return s, tea.Quit
	case "/", "p":
		return s, s.openPrompt(s.tracker.State().Player)
	case "r":
		st := s.tracker.State()
		switch {
		case st.Pending != nil:
			s.notice = busyNotice
			return s, nil
		case st.Player == "":
			return s, s.openPrompt("")
		}
		return s, s.startFetch(st.Player)
	case "i":
		player := s.tracker.State().Player
		if s.info == nil || player == "" {
			return s, nil
		}
		next := info.New(s.info, player)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ChartScreen) handleEditKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		player := s.input.Value()
		if player == "" {
			return s, nil
		}
		s.editing = false
		return s, s.startFetch(player)
	case "esc":
		s.editing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChartScreen) openPrompt(initial string) tea.Cmd {
	s.editing = true
	s.input = components.NewPlayerNameInput(initial)
	return s.input.Init()
}

// startFetch reserves the tracker's fetch slot and returns the command that
// performs the request off the UI goroutine.
func (s *ChartScreen) startFetch(player string) tea.Cmd {
	tk, err := s.tracker.Begin(player)
	if err != nil {
		if errors.Is(err, tracker.ErrFetchInFlight) {
			s.notice = busyNotice
		} else {
			s.notice = err.Error()
		}
		return nil
	}
	s.notice = ""
	s.frame = 0
	return tea.Batch(s.fetchCmd(tk), spinnerTick())
}

func (s *ChartScreen) fetchCmd(tk tracker.Ticket) tea.Cmd {
	tr := s.tracker
	return func() tea.Msg {
		ds, err := tr.Fetch(context.Background(), tk)
		return fetchDoneMsg{Ticket: tk, Dataset: ds, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
