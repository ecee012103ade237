package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/router"
	"github.com/xpchart/xpchart/internal/screens/chart"
	"github.com/xpchart/xpchart/internal/screens/info"
	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/tracker"
)

type emptyFetcher struct{}

func (emptyFetcher) Datapoints(context.Context, string, int64) (*dataset.Dataset, error) {
	return &dataset.Dataset{}, nil
}

type emptyInfo struct{}

func (emptyInfo) PlayerInfo(context.Context, string) (skills.PlayerInfo, error) {
	return skills.PlayerInfo{}, nil
}

func testModel() AppModel {
	return newAppModel(Options{
		Tracker:   tracker.New(emptyFetcher{}),
		Info:      emptyInfo{},
		Secondary: skills.Hunter,
		Selection: series.Select(skills.Overall),
	})
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEscAtRootReachesChartScreen(t *testing.T) {
	m := testModel()
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	cs, ok := m.router.Active().(*chart.ChartScreen)
	require.True(t, ok)
	assert.True(t, cs.Selection().IsNone())
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := testModel()
	_, _ = m.Update(router.PushScreenMsg{Screen: info.New(emptyInfo{}, "alice")})
	require.Equal(t, 2, m.router.Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

// drain runs cmd and any batched commands, returning every message produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func TestFetchCompletesUnderPushedScreen(t *testing.T) {
	tr := tracker.New(emptyFetcher{})
	m := newAppModel(Options{
		Tracker:   tr,
		Info:      emptyInfo{},
		Player:    "alice",
		Secondary: skills.Hunter,
	})
	fetch := m.Init()
	require.NotNil(t, tr.State().Pending)

	_, _ = m.Update(router.PushScreenMsg{Screen: info.New(emptyInfo{}, "alice")})
	require.Equal(t, 2, m.router.Depth())

	for _, msg := range drain(fetch) {
		_, _ = m.Update(msg)
	}

	st := tr.State()
	assert.Nil(t, st.Pending)
	assert.Equal(t, tracker.Loaded, st.Phase)
	assert.Equal(t, "alice", st.Player)
	assert.NoError(t, tr.Refresh(context.Background(), "alice"))
}

func TestWindowSize(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)
	assert.Equal(t, 120, am.width)
	assert.Equal(t, 40, am.height)

	v := am.View()
	assert.True(t, v.AltScreen)
}
