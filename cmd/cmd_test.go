package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpchart/xpchart/internal/export"
	"github.com/xpchart/xpchart/internal/series"
)

const datapointsBody = `{"data": {
  "2023-01-01 00:00:00": {"Overall": 1000, "Attack": 10, "Defence": 10, "Strength": 10, "Hitpoints": 10,
    "Ranged": 10, "Prayer": 10, "Magic": 10, "Cooking": 10, "Woodcutting": 10, "Fletching": 10,
    "Fishing": 10, "Firemaking": 10, "Crafting": 10, "Smithing": 10, "Mining": 10, "Herblore": 10,
    "Agility": 10, "Thieving": 10, "Slayer": 10, "Farming": 10, "Runecraft": 10, "Hunter": 100,
    "Construction": 10, "Ehp": 1.5},
  "2023-01-03 00:00:00": {"Overall": 2500, "Attack": 10, "Defence": 10, "Strength": 10, "Hitpoints": 10,
    "Ranged": 10, "Prayer": 10, "Magic": 10, "Cooking": 10, "Woodcutting": 10, "Fletching": 10,
    "Fishing": 10, "Firemaking": 10, "Crafting": 10, "Smithing": 10, "Mining": 10, "Herblore": 10,
    "Agility": 10, "Thieving": 10, "Slayer": 10, "Farming": 10, "Runecraft": 10, "Hunter": 1600,
    "Construction": 10, "Ehp": 3}
}}`

const playerInfoBody = `{"data": {"Username": "Posemann", "Country": "NL", "Game mode": 1,
  "fresh_start_account": 0, "Cb-3": 0, "F2p": 1, "Banned": 0, "Disqualified": 0,
  "Clan preference": null, "Last checked": "2023-01-03 00:00:00", "Last changed": null,
  "Last changed KC": null, "Datapoint Cooldown": "-"}}`

func newAPI(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/player_datapoints.php", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("player") {
		case "Posemann":
			_, _ = w.Write([]byte(datapointsBody))
		case "newbie":
			_, _ = w.Write([]byte(`{"data": []}`))
		default:
			_, _ = w.Write([]byte(`{"error": {"Code": 402, "Message": "Player not found in database"}}`))
		}
	})
	mux.HandleFunc("/player_info.php", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(playerInfoBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes the root command with args against api and returns stdout.
func run(t *testing.T, api string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--api-url", api, "--log-file", "", "--skill", "Overall"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "http://unused", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xpchart")
}

func TestSkillList(t *testing.T) {
	out, err := run(t, "http://unused", "skill", "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 0  Overall")
	assert.Contains(t, out, "23  Construction")
	assert.Contains(t, out, "24 skills")
}

func TestStats(t *testing.T) {
	out, err := run(t, newAPI(t), "stats", "Posemann")
	require.NoError(t, err)
	assert.Contains(t, out, "Posemann: 2 datapoints from 2023-01-01 00:00:00 to 2023-01-03 00:00:00")
	assert.Contains(t, out, "+1,500")
	assert.Contains(t, out, "Hunter")
	assert.Contains(t, out, "Efficient hours played: 3.00")
}

func TestStatsEmpty(t *testing.T) {
	out, err := run(t, newAPI(t), "stats", "newbie")
	require.NoError(t, err)
	assert.Contains(t, out, "No datapoints recorded for newbie.")
}

func TestStatsUnknownPlayer(t *testing.T) {
	_, err := run(t, newAPI(t), "stats", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Player not found")
}

func TestHistory(t *testing.T) {
	out, err := run(t, newAPI(t), "history", "Posemann", "--skill", "Hunter", "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "2023-01-01 00:00:00")
	assert.Contains(t, out, "1,600")
	assert.Contains(t, out, "+1,500")
	assert.Contains(t, out, "2 of 2 datapoints")

	out, err = run(t, newAPI(t), "history", "Posemann", "--skill", "Hunter", "--limit", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "2023-01-01 00:00:00")
	assert.Contains(t, out, "1 of 2 datapoints")
}

func TestInfo(t *testing.T) {
	out, err := run(t, newAPI(t), "info", "Posemann")
	require.NoError(t, err)
	assert.Contains(t, out, "Game mode:       Ironman")
	assert.Contains(t, out, "Free to play:    true")
	assert.Contains(t, out, "Last changed:    never")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	out, err := run(t, newAPI(t), "export", "Posemann", "--out", path, "--width", "320", "--height", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	_, err := run(t, newAPI(t), "export", "newbie", "--out", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
	assert.NoFileExists(t, path)
}

func TestWritePNGRemovesFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	err := writePNG(path, series.Chart{}, export.Options{})
	require.ErrorIs(t, err, export.ErrNothingToRender)
	assert.NoFileExists(t, path)
}

func TestInvalidSecondary(t *testing.T) {
	_, err := run(t, newAPI(t), "stats", "Posemann", "--secondary", "Sailing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secondary_skill")

	// Flags persist between runs of the shared root command.
	_, err = run(t, newAPI(t), "stats", "Posemann", "--secondary", "Hunter")
	require.NoError(t, err)
}
