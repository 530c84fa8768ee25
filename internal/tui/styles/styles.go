// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#58C4DD") // Blue accent, matches the default fill
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#83C167") // Green once the scene is done
	warningColor   = lipgloss.Color("#F0AC5F") // Gold for paused

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// MeterStyle for the compact progress readout
	MeterStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// SuccessStyle for the finished state
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// PausedStyle for the paused state
	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)
)
