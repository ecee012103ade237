package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xpchart/xpchart/internal/export"
	"github.com/xpchart/xpchart/internal/series"
)

var exportCmd = &cobra.Command{
	Use:   "export <player>",
	Short: "Render the chart for one skill (--skill, default Overall) to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		c, err := e.build(st)
		if err != nil {
			return err
		}

		if outPath == "" {
			outPath = fmt.Sprintf("%s-%s.png",
				strings.ReplaceAll(st.Player, " ", "_"), strings.ToLower(c.Primary.Skill.String()))
		}
		opts := export.Options{
			Width:  width,
			Height: height,
			Title:  fmt.Sprintf("%s: %s", st.Player, c.Primary.Skill),
		}
		if err := writePNG(outPath, c, opts); err != nil {
			return err
		}

		e.log.Info().Str("path", outPath).Msg("chart exported")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
		return nil
	},
}

// writePNG renders c to path. A file left incomplete by a failed render is
// removed.
func writePNG(path string, c series.Chart, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.PNG(f, c, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file (default <player>-<skill>.png)")
	exportCmd.Flags().Int("width", export.DefaultWidth, "Image width in pixels")
	exportCmd.Flags().Int("height", export.DefaultHeight, "Image height in pixels")
}
