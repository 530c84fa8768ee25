package components

import (
	"fmt"
	"strings"

	"github.com/pablasso/fillbar/internal/geom"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Meter renders a compact progress readout like: ■■■■□□□□ 50%
type Meter struct {
	Value float64 // progress in [0,1]
	Width int     // character width of the bar portion
}

// NewMeter creates a new Meter instance.
func NewMeter(value float64, width int) Meter {
	return Meter{Value: value, Width: width}
}

// View returns the rendered meter string.
func (m Meter) View() string {
	if m.Width <= 0 {
		return ""
	}

	v := geom.Clamp01(m.Value)
	filled := int(v * float64(m.Width))
	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, m.Width-filled)

	return fmt.Sprintf("%s %d%%", bar, int(v*100))
}
