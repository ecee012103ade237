package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/config"
	"github.com/xpchart/xpchart/internal/logging"
	"github.com/xpchart/xpchart/internal/series"
	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/temple"
	"github.com/xpchart/xpchart/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "xpchart [player]",
	Short: "Chart Old School RuneScape skill progression",
	Long: "xpchart fetches a player's experience history from TempleOSRS and charts it in the terminal.\n" +
		"Pick a skill with the arrow keys; Hunter is drawn alongside for comparison.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		player := ""
		if len(args) == 1 {
			player = args[0]
		}
		return runApp(cmd, player)
	},
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("api-url", "", "Stats API base URL (overrides XPCHART_API_BASE_URL)")
	pf.Int64("window", 0, "Seconds of history to request (overrides XPCHART_API_TIME_WINDOW)")
	pf.String("secondary", "", "Skill drawn alongside the selection (default Hunter)")
	pf.String("skill", "", "Skill to select on start")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	pf.String("log-file", "", "Log file path; empty string disables logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(skillCmd)
}

// env is the per-invocation dependency set shared by every command.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	client *temple.Client
	closer io.Closer
}

// newEnv loads configuration and builds the logger and API client.
func newEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("command", cmd.Name()).Logger()

	client := temple.NewClient(
		temple.WithBaseURL(cfg.API.BaseURL),
		temple.WithUserAgent(cfg.API.UserAgent),
		temple.WithLogger(log),
	)
	return &env{cfg: cfg, log: log, client: client, closer: closer}, nil
}

func (e *env) Close() {
	_ = e.closer.Close()
}

func (e *env) tracker() *tracker.Tracker {
	return tracker.New(e.client,
		tracker.WithWindow(e.cfg.API.TimeWindow),
		tracker.WithLogger(e.log),
	)
}

// skill returns the configured skill, falling back to Overall.
func (e *env) skill() skills.Skill {
	if s, ok := e.cfg.DefaultSelection(); ok {
		return s
	}
	return skills.Overall
}

// load fetches player's history or returns why it could not.
func (e *env) load(ctx context.Context, player string) (tracker.State, error) {
	tr := e.tracker()
	if err := tr.Refresh(ctx, player); err != nil {
		if errors.Is(err, tracker.ErrEmptyPlayer) {
			return tracker.State{}, err
		}
		return tracker.State{}, fmt.Errorf("fetch %s: %w", player, err)
	}
	return tr.State(), nil
}

// build assembles the chart for the configured skill or explains why there
// is nothing to draw.
func (e *env) build(st tracker.State) (series.Chart, error) {
	c, reason := series.Build(st.Dataset, series.Select(e.skill()), e.cfg.Secondary())
	if reason != series.ReasonNone {
		return series.Chart{}, fmt.Errorf("%s: %s", st.Player, reason)
	}
	return c, nil
}
