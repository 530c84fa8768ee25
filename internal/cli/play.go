package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/fillbar/internal/palette"
	"github.com/pablasso/fillbar/internal/tui"
)

func newPlayCmd(root *rootOptions) *cobra.Command {
	var exitWhenDone bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the configured scene in the terminal",
		Long: `Play runs the scene from fillbar.yaml (or the built-in demo scene) full screen.

Keys:
  space  pause / resume
  r      restart the scene
  →      skip the current step
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := root.loadBar(cmd)
			if err != nil {
				return err
			}
			bg, err := palette.Parse(cfg.Background)
			if err != nil {
				return err
			}

			return tui.Run(b, cfg.Scene, tui.Options{
				FPS:          cfg.FPS,
				Scale:        cfg.Scale,
				Background:   bg,
				ExitWhenDone: exitWhenDone,
			})
		},
	}

	addBarFlags(cmd.Flags())
	cmd.Flags().BoolVar(&exitWhenDone, "exit", false, "quit when the scene finishes")
	return cmd
}
