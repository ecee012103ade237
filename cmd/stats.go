package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/skills"
)

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "Show the latest experience per skill and the gain over the window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		first, ok := st.Dataset.First()
		if !ok {
			fmt.Fprintf(out, "No datapoints recorded for %s.\n", st.Player)
			return nil
		}
		last, _ := st.Dataset.Last()

		fmt.Fprintf(out, "%s: %d datapoints from %s to %s\n\n",
			st.Player, st.Dataset.Len(), first.At, last.At)

		// Header.
		fmt.Fprintf(out, "%-14s  %15s  %15s\n", "Skill", "Experience", "Gained")
		fmt.Fprintln(out, strings.Repeat("─", 48))

		for i := 0; i < skills.Count; i++ {
			s := skills.MustIndex(i)
			now := s.Value(&last.Snapshot)
			then := s.Value(&first.Snapshot)
			gained := "-"
			if now > then {
				gained = "+" + humanize.Comma(int64(now-then))
			}
			fmt.Fprintf(out, "%-14s  %15s  %15s\n", s, humanize.Comma(int64(now)), gained)
		}

		fmt.Fprintf(out, "\nEfficient hours played: %s\n", humanize.FormatFloat("#,###.##", last.Snapshot.Ehp))
		return nil
	},
}
