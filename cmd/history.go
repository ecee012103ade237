package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <player>",
	Short: "List every datapoint for one skill (--skill, default Overall)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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

		if st.Dataset.IsEmpty() {
			fmt.Fprintf(out, "No datapoints recorded for %s.\n", st.Player)
			return nil
		}

		skill := e.skill()
		entries := st.Dataset.Entries()
		start := 0
		if limit > 0 && len(entries) > limit {
			start = len(entries) - limit
		}

		// Header.
		fmt.Fprintf(out, "%-19s  %15s  %13s\n", "Timestamp", skill, "Change")
		fmt.Fprintln(out, strings.Repeat("─", 51))

		for i := start; i < len(entries); i++ {
			v := skill.Value(&entries[i].Snapshot)
			change := ""
			if i > 0 {
				prev := skill.Value(&entries[i-1].Snapshot)
				change = signed(int64(v) - int64(prev))
			}
			fmt.Fprintf(out, "%-19s  %15s  %13s\n", entries[i].At, humanize.Comma(int64(v)), change)
		}

		fmt.Fprintf(out, "\n%d of %d datapoints\n", len(entries)-start, len(entries))
		return nil
	},
}

func signed(d int64) string {
	if d > 0 {
		return "+" + humanize.Comma(d)
	}
	return humanize.Comma(d)
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Show only the most recent N datapoints")
}
