package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/fillbar/internal/tui/styles"
)

// StatusBar renders a one-line bar with status items on the left and a
// right-aligned hint.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render joins items with " • " and pads to width, placing right at the end
// when it fits.
func (s StatusBar) Render(width int, items []string, right string) string {
	left := strings.Join(items, " • ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if right == "" || gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left)
	}
	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
