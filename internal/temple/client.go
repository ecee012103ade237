// Package temple is a client for the TempleOSRS stats API.
package temple

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/timestamp"
)

const (
	DefaultBaseURL = "https://templeosrs.com/api"

	// UnboundedWindow asks for every datapoint the API has.
	UnboundedWindow int64 = 1_000_000_000

	maxErrorBody = 512
)

// Client talks to the API. It has no request timeout of its own; callers
// bound requests through the context if they want one.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client. The default transport negotiates gzip.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Transport: gzhttp.Transport(http.DefaultTransport)},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Responses are wrapped as {"data": ...} or {"error": {...}}.
type apiErrorBody struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

// PlayerInfo fetches account metadata for player.
func (c *Client) PlayerInfo(ctx context.Context, player string) (skills.PlayerInfo, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return skills.PlayerInfo{}, ErrEmptyPlayer
	}

	data, err := c.get(ctx, "player_info.php", url.Values{"player": {player}})
	if err != nil {
		return skills.PlayerInfo{}, err
	}
	return skills.DecodePlayerInfo(data)
}

// Datapoints fetches the skill history of player going back window seconds.
// The whole response must decode: one bad timestamp or record fails the call.
func (c *Client) Datapoints(ctx context.Context, player string, window int64) (*dataset.Dataset, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, ErrEmptyPlayer
	}

	data, err := c.get(ctx, "player_datapoints.php", url.Values{
		"player": {player},
		"time":   {strconv.FormatInt(window, 10)},
	})
	if err != nil {
		return nil, err
	}
	return DecodeDatapoints(data)
}

// DecodeDatapoints turns the "data" object of a datapoints response into a
// dataset. An empty object, an empty array or null yields an empty dataset.
func DecodeDatapoints(data []byte) (*dataset.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return &dataset.Dataset{}, nil
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &DecodeError{Err: err}
	}

	out := make(map[timestamp.Timestamp]skills.Snapshot, len(records))
	for _, key := range slices.Sorted(maps.Keys(records)) {
		at, err := timestamp.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("datapoint %q: %w", key, err)
		}
		snap, err := skills.DecodeSnapshot(records[key])
		if err != nil {
			return nil, fmt.Errorf("datapoint %s: %w", key, err)
		}
		out[at] = snap
	}
	return dataset.FromMap(out), nil
}

// get performs one GET and returns the envelope's data member.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("url", u).Msg("api request failed")
		return nil, &TransportError{URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        u,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var env map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		return nil, &DecodeError{Err: err}
	}
	if raw, ok := env["error"]; ok && !isNull(raw) {
		var body apiErrorBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("error member: %w", err)}
		}
		return nil, &APIError{Code: body.Code, Message: body.Message}
	}
	data, ok := env["data"]
	if !ok {
		return nil, &DecodeError{Err: errors.New("response has no data member")}
	}
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return data, nil
}

func isNull(raw json.RawMessage) bool {
	s := string(bytes.TrimSpace(raw))
	return s == "" || s == "null"
}
