package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/geom"
	"github.com/pablasso/fillbar/internal/palette"
)

// The scene frame fitted to the canvas when Renderer.Scale is zero. A bar at
// the default position (0, -3.5) sits near the bottom of this frame.
const (
	FrameWidth  = 14 + 2.0/9
	FrameHeight = 8.0
)

// StrokeUnit converts Config.BorderWidth into scene units.
const StrokeUnit = 0.01

// Renderer draws bar snapshots.
type Renderer struct {
	// Scale is pixels per scene unit. Zero fits the scene frame to the canvas.
	Scale float64
	// Background is the color the bar background is blended onto.
	Background colorful.Color
}

// NewRenderer returns a Renderer that fits the frame onto a black terminal.
func NewRenderer() Renderer {
	return Renderer{}
}

// ScaleFor returns the pixels-per-unit used for a canvas.
func (r Renderer) ScaleFor(c *Canvas) float64 {
	if r.Scale > 0 {
		return r.Scale
	}
	return math.Min(float64(c.Width)/FrameWidth, float64(c.Height)/FrameHeight)
}

// Frame renders s onto a cols x rows canvas and returns the styled text.
func (r Renderer) Frame(s bar.Snapshot, cols, rows int) string {
	return r.Rasterize(s, cols, rows).String()
}

// Rasterize draws background, border, fill and label in that order.
func (r Renderer) Rasterize(s bar.Snapshot, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	if c.Width == 0 || c.Height == 0 {
		return c
	}
	scale := r.ScaleFor(c)
	cfg := s.Config

	fillColor := palette.MustParse(cfg.FillColor)
	borderColor := palette.MustParse(cfg.BorderColor)
	background := palette.Over(palette.MustParse(cfg.BackgroundColor), r.Background, bar.BackgroundOpacity)

	mask := geom.RoundedRect{Rect: s.Fill.Box, Radius: cfg.CornerRadius}
	fillMask := geom.RoundedRect{Rect: s.Fill.Shape, Radius: cfg.CornerRadius}

	border := 0.0
	if cfg.BorderWidth > 0 {
		// keep a visible outline at low resolutions
		border = math.Max(cfg.BorderWidth*StrokeUnit, 0.5/scale)
	}

	center := geom.Vec2{X: cfg.Position.X, Y: cfg.Position.Y}
	halfW := float64(c.Width) / 2
	halfH := float64(c.Height) / 2

	for py := 0; py < c.Height; py++ {
		for px := 0; px < c.Width; px++ {
			scene := geom.Vec2{
				X: (float64(px) + 0.5 - halfW) / scale,
				Y: (halfH - (float64(py) + 0.5)) / scale,
			}
			local := s.Fill.ToLocal(scene.Sub(center))

			if !mask.Contains(local) {
				continue
			}
			col := background
			if border > 0 && mask.Distance(local) > -border {
				col = borderColor
			}
			if !s.Fill.Empty && fillMask.Contains(local) {
				col = fillColor
			}
			c.Set(px, py, col)
		}
	}

	if s.Label.Visible {
		r.drawLabel(c, s, scale)
	}
	return c
}

func (r Renderer) drawLabel(c *Canvas, s bar.Snapshot, scale float64) {
	col, row := labelCell(c, s, scale)
	c.PutText(col, row, s.Label.Text, palette.MustParse(s.Label.Color))
}

// labelCell returns the cell where the label starts so that it is centred on
// the bar center.
func labelCell(c *Canvas, s bar.Snapshot, scale float64) (col, row int) {
	cx := float64(c.Width)/2 + s.Config.Position.X*scale
	cy := float64(c.Height)/2 - s.Config.Position.Y*scale

	n := len([]rune(s.Label.Text))
	return int(math.Round(cx)) - n/2, int(math.Floor(cy / 2))
}
