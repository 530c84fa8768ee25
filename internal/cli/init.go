package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/fillbar/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default " + config.FileName,
		Long:  "Creates a config file with the default bar and demo scene. Existing files are left alone.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.Write(path, config.Default()); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists; edit it or pass another path", path)
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Wrote", path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit the bar and scene sections")
	fmt.Fprintln(out, "  2. Run: fillbar play")
	return nil
}
