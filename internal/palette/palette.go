// Package palette resolves bar colors from names or hex strings.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var named = map[string]string{
	"BLACK":  "#000000",
	"BLUE":   "#58C4DD",
	"GOLD":   "#F0AC5F",
	"GRAY":   "#888888",
	"GREY":   "#888888",
	"GREEN":  "#83C167",
	"ORANGE": "#FF862F",
	"PINK":   "#D147BD",
	"PURPLE": "#9A72AC",
	"RED":    "#FC6255",
	"TEAL":   "#5CD0B3",
	"WHITE":  "#FFFFFF",
	"YELLOW": "#FFFF00",
}

// Parse accepts a palette name (case-insensitive), #rgb or #rrggbb.
func Parse(s string) (colorful.Color, error) {
	v := strings.TrimSpace(s)
	if hex, ok := named[strings.ToUpper(v)]; ok {
		v = hex
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("unknown color %q (valid: %s, #rgb or #rrggbb)", s, strings.Join(Names(), ", "))
	}
	return c, nil
}

// MustParse is Parse for values already validated.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for k := range named {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Over composites fg at the given opacity onto bg.
func Over(fg, bg colorful.Color, opacity float64) colorful.Color {
	return bg.BlendRgb(fg, opacity).Clamped()
}

// Lip converts c for use in lipgloss styles.
func Lip(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
