package config

import (
	"github.com/spf13/viper"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/scene"
)

const (
	DefaultFPS        = 30
	DefaultBackground = "#000000"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	d := bar.DefaultConfig()
	return &Config{
		FPS:        DefaultFPS,
		Background: DefaultBackground,
		Bar: BarConfig{
			Width:              d.Width,
			Height:             d.Height,
			Position:           Position{X: d.Position.X, Y: d.Position.Y, Z: d.Position.Z},
			FillColor:          d.FillColor,
			BackgroundColor:    d.BackgroundColor,
			BorderColor:        d.BorderColor,
			BorderWidth:        d.BorderWidth,
			CornerRadius:       d.CornerRadius,
			ShowPercentage:     d.ShowPercentage,
			PercentageFontSize: d.PercentageFontSize,
			PercentageColor:    d.PercentageColor,
			PercentageFont:     d.PercentageFont,
			Angle:              d.Angle,
		},
		Scene: scene.DefaultSteps(),
	}
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("fps", d.FPS)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("background", d.Background)

	v.SetDefault("bar.width", d.Bar.Width)
	v.SetDefault("bar.height", d.Bar.Height)
	v.SetDefault("bar.position.x", d.Bar.Position.X)
	v.SetDefault("bar.position.y", d.Bar.Position.Y)
	v.SetDefault("bar.position.z", d.Bar.Position.Z)
	v.SetDefault("bar.fill_color", d.Bar.FillColor)
	v.SetDefault("bar.background_color", d.Bar.BackgroundColor)
	v.SetDefault("bar.border_color", d.Bar.BorderColor)
	v.SetDefault("bar.border_width", d.Bar.BorderWidth)
	v.SetDefault("bar.corner_radius", d.Bar.CornerRadius)
	v.SetDefault("bar.show_percentage", d.Bar.ShowPercentage)
	v.SetDefault("bar.percentage_font_size", d.Bar.PercentageFontSize)
	v.SetDefault("bar.percentage_color", d.Bar.PercentageColor)
	v.SetDefault("bar.percentage_font", d.Bar.PercentageFont)
	v.SetDefault("bar.angle", d.Bar.Angle)
	v.SetDefault("bar.duration", d.Bar.Duration)
}
