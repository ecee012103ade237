package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/app"
	"github.com/xpchart/xpchart/internal/series"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, player string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{
		Tracker:   e.tracker(),
		Info:      e.client,
		Player:    player,
		Secondary: e.cfg.Secondary(),
		Logger:    e.log,
	}
	if s, ok := e.cfg.DefaultSelection(); ok {
		opts.Selection = series.Select(s)
	}

	e.log.Info().Str("player", player).Msg("starting ui")
	return app.Run(opts)
}
