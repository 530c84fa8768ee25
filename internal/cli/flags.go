package cli

import (
	"github.com/spf13/pflag"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/config"
)

// addBarFlags registers the flags that override bar settings. Values are
// picked up through config.Load only when set on the command line.
func addBarFlags(fs *pflag.FlagSet) {
	d := bar.DefaultConfig()

	fs.Float64("width", d.Width, "bar width in scene units")
	fs.Float64("height", d.Height, "bar height in scene units")
	fs.Float64("x", d.Position.X, "bar center x")
	fs.Float64("y", d.Position.Y, "bar center y")
	fs.String("fill-color", d.FillColor, "fill color (palette name or #rrggbb)")
	fs.String("background-color", d.BackgroundColor, "background color")
	fs.String("border-color", d.BorderColor, "border color")
	fs.Float64("border-width", d.BorderWidth, "border width (0 disables)")
	fs.Float64("corner-radius", d.CornerRadius, "corner radius in scene units")
	fs.Bool("show-percentage", d.ShowPercentage, "draw the percentage label")
	fs.Int("percentage-font-size", d.PercentageFontSize, "percentage label font size")
	fs.String("percentage-color", d.PercentageColor, "percentage label color")
	fs.String("percentage-font", d.PercentageFont, "percentage label font family")
	fs.Float64("angle", d.Angle, "fill direction in degrees, counter-clockwise from the right")
	fs.String("duration", "", "default auto-progress duration, e.g. 10s")

	fs.Int("fps", config.DefaultFPS, "frames per second")
	fs.Float64("scale", 0, "pixels per scene unit (0 fits the scene to the terminal)")
	fs.String("background", config.DefaultBackground, "terminal background the bar is blended onto")
}
