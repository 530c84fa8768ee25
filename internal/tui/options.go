package tui

import colorful "github.com/lucasb-eyer/go-colorful"

// Options configures TUI startup behavior.
type Options struct {
	// FPS is the frame rate of the update loop. Zero uses DefaultFPS.
	FPS int
	// Scale is pixels per scene unit. Zero fits the scene to the terminal.
	Scale float64
	// Background is the terminal color the bar background is blended onto.
	Background colorful.Color
	// ExitWhenDone quits once the scene has finished playing.
	ExitWhenDone bool
}

// DefaultFPS is used when Options.FPS is not set.
const DefaultFPS = 30
