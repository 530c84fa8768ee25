package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/fillbar/internal/palette"
	"github.com/pablasso/fillbar/internal/render"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		progress float64
		format   string
		cols     int
		rows     int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame at a given progress",
		Long: `Render draws the bar once at --progress and prints it.

Formats:
  text  styled terminal frame (default)
  json  fill geometry and label, for use by other renderers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := root.loadBar(cmd)
			if err != nil {
				return err
			}
			b.UpdateProgressInstant(progress)

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(b.Snapshot())
			case "text":
				bg, err := palette.Parse(cfg.Background)
				if err != nil {
					return err
				}
				r := render.Renderer{Scale: cfg.Scale, Background: bg}
				_, err = fmt.Fprintln(out, r.Frame(b.Snapshot(), cols, rows))
				return err
			default:
				return fmt.Errorf("invalid format %q (valid: text, json)", format)
			}
		},
	}

	addBarFlags(cmd.Flags())
	cmd.Flags().Float64Var(&progress, "progress", 0, "progress to draw, clamped into [0,1]")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|json")
	cmd.Flags().IntVar(&cols, "cols", 80, "frame width in terminal cells")
	cmd.Flags().IntVar(&rows, "rows", 24, "frame height in terminal cells")
	return cmd
}
