package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/timestamp"
)

var infoCmd = &cobra.Command{
	Use:   "info <player>",
	Short: "Show account metadata for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		i, err := e.client.PlayerInfo(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch info for %s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Username:        %s\n", i.Username)
		fmt.Fprintf(out, "Country:         %s\n", i.Country)
		fmt.Fprintf(out, "Game mode:       %s\n", i.GameMode)
		fmt.Fprintf(out, "Fresh start:     %v\n", bool(i.FreshStart))
		fmt.Fprintf(out, "Level 3 combat:  %v\n", bool(i.CombatLevel3))
		fmt.Fprintf(out, "Free to play:    %v\n", bool(i.F2P))
		fmt.Fprintf(out, "Banned:          %v\n", bool(i.Banned))
		fmt.Fprintf(out, "Disqualified:    %v\n", bool(i.Disqualified))
		if i.ClanPreference != nil {
			fmt.Fprintf(out, "Clan preference: %d\n", *i.ClanPreference)
		}
		fmt.Fprintf(out, "Last checked:    %s\n", orNever(i.LastChecked))
		fmt.Fprintf(out, "Last changed:    %s\n", orNever(i.LastChanged))
		fmt.Fprintf(out, "Last changed KC: %s\n", orNever(i.LastChangedKC))
		fmt.Fprintf(out, "Cooldown:        %s\n", i.DatapointCooldown)
		return nil
	},
}

func orNever(ts *timestamp.Timestamp) string {
	if ts == nil {
		return "never"
	}
	return ts.String()
}
