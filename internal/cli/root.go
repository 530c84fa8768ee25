package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/config"
	"github.com/pablasso/fillbar/internal/version"
)

const debugLogFile = "fillbar-debug.log"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	debug      bool
	logFile    *os.File
}

// NewRootCmd builds the fillbar command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "fillbar",
		Short: "Animated progress bar for the terminal",
		Long: `fillbar draws a progress bar whose fill grows at any angle and animates it
frame by frame. Bars and scenes are configured in fillbar.yaml or with flags.`,
		Version:           version.String(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.setupLogging,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default ./"+config.FileName+")")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"write debug logs to "+debugLogFile)

	root.AddCommand(newPlayCmd(opts), newRenderCmd(opts), newInitCmd())
	return root, opts
}

// Execute runs the root command with args.
func Execute(args ...string) error {
	root, opts := newRootCmd()
	root.SetArgs(args)
	return opts.run(root)
}

// run executes root and closes the debug log whether or not the command
// succeeded.
func (o *rootOptions) run(root *cobra.Command) error {
	err := root.Execute()
	if cerr := o.closeLogging(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (o *rootOptions) setupLogging(cmd *cobra.Command, args []string) error {
	if !o.debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	// The TUI owns the terminal, so logs go to a file.
	f, err := tea.LogToFile(debugLogFile, "fillbar")
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	o.logFile = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("debug logging enabled", "command", cmd.Name(), "version", version.Version)
	return nil
}

func (o *rootOptions) closeLogging() error {
	if o.logFile == nil {
		return nil
	}
	// detaches both slog and the std log output from the file
	slog.SetDefault(slog.New(slog.DiscardHandler))
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// loadBar reads the config for cmd and builds the bar it describes.
func (o *rootOptions) loadBar(cmd *cobra.Command) (*config.Config, *bar.Bar, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(wd, o.configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	b, err := cfg.NewBar()
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("bar created", "width", b.Config().Width, "height", b.Config().Height, "angle", b.Config().Angle)
	return cfg, b, nil
}
