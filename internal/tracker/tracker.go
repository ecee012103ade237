// Package tracker owns the loaded dataset and the fetch lifecycle around it.
//
// A tracker starts Uninitialized. Each fetch either succeeds, replacing the
// dataset wholesale and moving to Loaded, or fails, clearing the dataset and
// moving to Failed with the attempted player name and cause. At most one
// fetch is in flight; completions for anything but the in-flight ticket are
// dropped.
package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/temple"
)

// ErrFetchInFlight is returned by Begin while a previous fetch is pending.
var ErrFetchInFlight = errors.New("a fetch is already in progress")

// ErrEmptyPlayer is returned by Begin for a blank player name.
var ErrEmptyPlayer = temple.ErrEmptyPlayer

// Phase is the tracker's coarse state.
type Phase int

const (
	Uninitialized Phase = iota
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads a player's datapoints. *temple.Client implements it.
type Fetcher interface {
	Datapoints(ctx context.Context, player string, window int64) (*dataset.Dataset, error)
}

// Ticket identifies one fetch attempt.
type Ticket struct {
	ID     uuid.UUID
	Player string
}

// State is a read-only view of the tracker.
type State struct {
	Phase Phase

	// Player is the loaded player when Loaded, or the attempted player
	// when Failed.
	Player string

	// Err is the cause of the last failure; nil unless Failed.
	Err error

	// Dataset is the loaded history; empty unless Loaded.
	Dataset *dataset.Dataset

	// Pending is set while a fetch is in flight.
	Pending *Ticket
}

// Tracker is safe for use from multiple goroutines, but only one fetch may
// be outstanding at a time.
type Tracker struct {
	fetcher Fetcher
	window  int64
	log     zerolog.Logger

	mu      sync.Mutex
	store   dataset.Store
	phase   Phase
	player  string
	err     error
	pending *Ticket
	started time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithWindow sets how many seconds of history each fetch requests.
func WithWindow(seconds int64) Option {
	return func(t *Tracker) { t.window = seconds }
}

// WithLogger sets the logger for fetch lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// New creates an Uninitialized tracker.
func New(f Fetcher, opts ...Option) *Tracker {
	t := &Tracker{
		fetcher: f,
		window:  temple.UnboundedWindow,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := State{
		Phase:   t.phase,
		Player:  t.player,
		Err:     t.err,
		Dataset: t.store.Current(),
	}
	if t.pending != nil {
		p := *t.pending
		s.Pending = &p
	}
	return s
}

// Begin reserves the fetch slot for player. The caller must pass the ticket
// to Fetch and then Complete.
func (t *Tracker) Begin(player string) (Ticket, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return Ticket{}, ErrEmptyPlayer
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		return Ticket{}, ErrFetchInFlight
	}
	tk := Ticket{ID: uuid.New(), Player: player}
	t.pending = &tk
	t.started = time.Now()

	t.log.Info().
		Str("request_id", tk.ID.String()).
		Str("player", player).
		Msg("fetch started")
	return tk, nil
}

// Fetch performs the request for tk. It does not touch tracker state, so it
// can run on another goroutine.
func (t *Tracker) Fetch(ctx context.Context, tk Ticket) (*dataset.Dataset, error) {
	return t.fetcher.Datapoints(ctx, tk.Player, t.window)
}

// Complete applies the outcome of tk. It reports false and changes nothing
// if tk is not the in-flight ticket.
func (t *Tracker) Complete(tk Ticket, ds *dataset.Dataset, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == nil || t.pending.ID != tk.ID {
		t.log.Warn().
			Str("request_id", tk.ID.String()).
			Str("player", tk.Player).
			Msg("dropping stale fetch result")
		return false
	}
	elapsed := time.Since(t.started)
	t.pending = nil
	t.player = tk.Player

	if err != nil {
		t.store.Clear()
		t.phase = Failed
		t.err = err
		t.log.Error().
			Err(err).
			Str("request_id", tk.ID.String()).
			Str("player", tk.Player).
			Dur("elapsed", elapsed).
			Msg("fetch failed")
		return true
	}

	t.store.Replace(ds)
	t.phase = Loaded
	t.err = nil
	t.log.Info().
		Str("request_id", tk.ID.String()).
		Str("player", tk.Player).
		Int("entries", ds.Len()).
		Dur("elapsed", elapsed).
		Msg("fetch completed")
	return true
}

// Refresh runs Begin, Fetch and Complete in sequence. It returns the fetch
// error, which is also recorded in the Failed state.
func (t *Tracker) Refresh(ctx context.Context, player string) error {
	tk, err := t.Begin(player)
	if err != nil {
		return err
	}
	ds, err := t.Fetch(ctx, tk)
	t.Complete(tk, ds, err)
	return err
}
