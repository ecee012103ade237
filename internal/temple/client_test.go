package temple

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

// newTestServer serves body for every request and records the last one.
func newTestServer(t *testing.T, status int, body []byte) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestDatapoints(t *testing.T) {
	srv, last := newTestServer(t, http.StatusOK, readFixture(t, "datapoints.json"))
	c := NewClient(WithBaseURL(srv.URL+"/"), WithUserAgent("xpchart-test"))

	ds, err := c.Datapoints(context.Background(), "  Posemann ", UnboundedWindow)
	require.NoError(t, err)

	assert.Equal(t, "/player_datapoints.php", last.URL.Path)
	assert.Equal(t, "Posemann", last.URL.Query().Get("player"))
	assert.Equal(t, "1000000000", last.URL.Query().Get("time"))
	assert.Equal(t, "xpchart-test", last.Header.Get("User-Agent"))

	require.Equal(t, 3, ds.Len())
	entries := ds.Entries()
	assert.Equal(t, "2023-01-15 09:00:00", entries[0].At.String())
	assert.Equal(t, "2023-02-10 12:30:45", entries[1].At.String())
	assert.Equal(t, "2023-03-01 18:22:05", entries[2].At.String())

	assert.Equal(t, uint64(36685352), entries[0].Snapshot.Overall)
	assert.Equal(t, uint64(1200000), entries[0].Snapshot.Attack)
	assert.Equal(t, uint64(1729200), entries[2].Snapshot.Hunter)
	assert.InDelta(t, 526.8, entries[2].Snapshot.Ehp, 1e-9)
}

func TestDatapointsGzip(t *testing.T) {
	body := readFixture(t, "datapoints.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write(body)
		_ = gz.Close()
	}))
	t.Cleanup(srv.Close)

	ds, err := NewClient(WithBaseURL(srv.URL)).Datapoints(context.Background(), "Posemann", 60)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestDatapointsEmptyData(t *testing.T) {
	for _, body := range []string{`{"data":{}}`, `{"data":[]}`, `{"data":null}`} {
		t.Run(body, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, []byte(body))
			ds, err := NewClient(WithBaseURL(srv.URL)).Datapoints(context.Background(), "x", 60)
			require.NoError(t, err)
			assert.True(t, ds.IsEmpty())
		})
	}
}

func TestDatapointsEmptyPlayer(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Datapoints(context.Background(), "   ", 60)
	assert.ErrorIs(t, err, ErrEmptyPlayer)

	_, err = c.PlayerInfo(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPlayer)
}

func TestDatapointsMissingHitpointsFailsWholeFetch(t *testing.T) {
	body := strings.Replace(string(readFixture(t, "datapoints.json")),
		`"Hitpoints": 1321933,`, "", 1)
	require.NotContains(t, body, `"Hitpoints": 1321933,`)

	srv, _ := newTestServer(t, http.StatusOK, []byte(body))
	ds, err := NewClient(WithBaseURL(srv.URL)).Datapoints(context.Background(), "Posemann", 60)
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, skills.ErrMalformedSnapshot)
	assert.Contains(t, err.Error(), "2023-02-10 12:30:45")
}

func TestDatapointsBadTimestampFailsWholeFetch(t *testing.T) {
	body := strings.Replace(string(readFixture(t, "datapoints.json")),
		`"2023-02-10 12:30:45"`, `"2023-02-10T12:30:45Z"`, 1)

	srv, _ := newTestServer(t, http.StatusOK, []byte(body))
	_, err := NewClient(WithBaseURL(srv.URL)).Datapoints(context.Background(), "Posemann", 60)

	var pe *timestamp.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "2023-02-10T12:30:45Z", pe.Value)
}

func TestDatapointsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "boom",
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
				assert.Equal(t, "boom", se.Body)
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, http.StatusNotFound, se.StatusCode)
			},
		},
		{
			name:   "api error body",
			status: http.StatusOK,
			body:   `{"error":{"Code":402,"Message":"Player not found in database"}}`,
			check: func(t *testing.T, err error) {
				var ae *APIError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, 402, ae.Code)
				assert.Contains(t, err.Error(), "Player not found")
			},
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   `<html>`,
			check: func(t *testing.T, err error) {
				var de *DecodeError
				require.ErrorAs(t, err, &de)
			},
		},
		{
			name:   "empty body",
			status: http.StatusOK,
			check: func(t *testing.T, err error) {
				var de *DecodeError
				require.ErrorAs(t, err, &de)
			},
		},
		{
			name:   "no data member",
			status: http.StatusOK,
			body:   `{"other":1}`,
			check: func(t *testing.T, err error) {
				var de *DecodeError
				require.ErrorAs(t, err, &de)
			},
		},
		{
			name:   "data is a string",
			status: http.StatusOK,
			body:   `{"data":"nope"}`,
			check: func(t *testing.T, err error) {
				var de *DecodeError
				require.ErrorAs(t, err, &de)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, []byte(tt.body))
			ds, err := NewClient(WithBaseURL(srv.URL)).Datapoints(context.Background(), "Posemann", 60)
			require.Error(t, err)
			assert.Nil(t, ds)
			tt.check(t, err)
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(url)).Datapoints(context.Background(), "Posemann", 60)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.URL, "player_datapoints.php")
}

func TestContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, readFixture(t, "datapoints.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(WithBaseURL(srv.URL)).Datapoints(ctx, "Posemann", 60)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlayerInfo(t *testing.T) {
	srv, last := newTestServer(t, http.StatusOK, readFixture(t, "player_info.json"))

	info, err := NewClient(WithBaseURL(srv.URL)).PlayerInfo(context.Background(), "Posemann")
	require.NoError(t, err)

	assert.Equal(t, "/player_info.php", last.URL.Path)
	assert.Equal(t, "Posemann", last.URL.Query().Get("player"))
	assert.Equal(t, "Posemann", info.Username)
	assert.Equal(t, "NL", info.Country)
	assert.Equal(t, skills.GameModeNormal, info.GameMode)
	require.NotNil(t, info.LastChecked)
	assert.Equal(t, "2023-03-01 18:22:05", info.LastChecked.String())
	assert.Nil(t, info.LastChangedKC)
	assert.Nil(t, info.ClanPreference)
}

func TestDecodeDatapointsDirect(t *testing.T) {
	ds, err := DecodeDatapoints([]byte("  {}  "))
	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())

	_, err = DecodeDatapoints([]byte(`{"2023-01-01 00:00:00": {"Overall": 1}}`))
	assert.ErrorIs(t, err, skills.ErrMalformedSnapshot)
}
