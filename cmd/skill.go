package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, name := range skills.Names() {
			fmt.Fprintf(out, "%2d  %s\n", i, name)
		}
		fmt.Fprintf(out, "\n%d skills\n", skills.Count)
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
}
