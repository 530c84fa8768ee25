package bar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pablasso/fillbar/internal/geom"
	"github.com/pablasso/fillbar/internal/palette"
)

// DefaultAutoDuration is used by AutoProgress when neither the call nor the
// config sets a duration.
const DefaultAutoDuration = 5 * time.Second

// BackgroundOpacity is the opacity of the background fill color.
const BackgroundOpacity = 0.3

// Point is a scene position. Z is carried for hosts with depth and ignored by
// the terminal renderer.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Config is fixed when a Bar is created.
type Config struct {
	Width              float64       `json:"width"`
	Height             float64       `json:"height"`
	Position           Point         `json:"position"`
	FillColor          string        `json:"fill_color"`
	BackgroundColor    string        `json:"background_color"`
	BorderColor        string        `json:"border_color"`
	BorderWidth        float64       `json:"border_width"`
	CornerRadius       float64       `json:"corner_radius"`
	ShowPercentage     bool          `json:"show_percentage"`
	PercentageFontSize int           `json:"percentage_font_size"`
	PercentageColor    string        `json:"percentage_color"`
	PercentageFont     string        `json:"percentage_font"`
	Angle              float64       `json:"angle"`
	Duration           time.Duration `json:"duration"`
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Width:              10,
		Height:             0.3,
		Position:           Point{Y: -3.5},
		FillColor:          "BLUE",
		BackgroundColor:    "GRAY",
		BorderColor:        "WHITE",
		BorderWidth:        2,
		CornerRadius:       0.1,
		ShowPercentage:     true,
		PercentageFontSize: 28,
		PercentageColor:    "WHITE",
		PercentageFont:     "Arial",
	}
}

// ValidationError describes one invalid construction parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	invalid := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	positive := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			invalid(field, "must be a positive number, got %v", v)
		}
	}
	nonNegative := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			invalid(field, "must not be negative, got %v", v)
		}
	}
	color := func(field, v string) {
		if _, err := palette.Parse(v); err != nil {
			invalid(field, "%v", err)
		}
	}

	positive("width", c.Width)
	positive("height", c.Height)
	nonNegative("border_width", c.BorderWidth)
	nonNegative("corner_radius", c.CornerRadius)
	color("fill_color", c.FillColor)
	color("background_color", c.BackgroundColor)
	color("border_color", c.BorderColor)
	color("percentage_color", c.PercentageColor)
	if c.PercentageFontSize <= 0 {
		invalid("percentage_font_size", "must be positive, got %d", c.PercentageFontSize)
	}
	if c.Duration < 0 {
		invalid("duration", "must not be negative, got %v", c.Duration)
	}
	if math.IsNaN(c.Angle) || math.IsInf(c.Angle, 0) {
		invalid("angle", "must be finite, got %v", c.Angle)
	}

	return errors.Join(errs...)
}

// Option customizes a Config.
type Option func(*Config)

// WithWidth sets the bar length in scene units.
func WithWidth(w float64) Option { return func(c *Config) { c.Width = w } }

// WithHeight sets the bar thickness in scene units.
func WithHeight(h float64) Option { return func(c *Config) { c.Height = h } }

// WithPosition sets the center of the bar in scene units.
func WithPosition(x, y, z float64) Option {
	return func(c *Config) { c.Position = Point{X: x, Y: y, Z: z} }
}

// WithFillColor sets the fill color, a palette name or hex string.
func WithFillColor(s string) Option { return func(c *Config) { c.FillColor = s } }

// WithBackgroundColor sets the color drawn at BackgroundOpacity behind the fill.
func WithBackgroundColor(s string) Option { return func(c *Config) { c.BackgroundColor = s } }

// WithBorderColor sets the outline color.
func WithBorderColor(s string) Option { return func(c *Config) { c.BorderColor = s } }

// WithBorderWidth sets the outline width. Zero disables the border.
func WithBorderWidth(w float64) Option { return func(c *Config) { c.BorderWidth = w } }

// WithCornerRadius sets the radius of the rounded corners.
func WithCornerRadius(r float64) Option { return func(c *Config) { c.CornerRadius = r } }

// WithShowPercentage toggles the percentage label.
func WithShowPercentage(b bool) Option { return func(c *Config) { c.ShowPercentage = b } }

// WithPercentageFontSize sets the label font size.
func WithPercentageFontSize(n int) Option { return func(c *Config) { c.PercentageFontSize = n } }

// WithPercentageColor sets the label color.
func WithPercentageColor(s string) Option { return func(c *Config) { c.PercentageColor = s } }

// WithPercentageFont sets the label font family.
func WithPercentageFont(s string) Option { return func(c *Config) { c.PercentageFont = s } }

// WithAngle rotates the bar so that it fills towards deg degrees,
// counter-clockwise from horizontal-right. Any finite value is accepted and
// normalized.
func WithAngle(deg float64) Option { return func(c *Config) { c.Angle = deg } }

// WithDuration sets the default AutoProgress duration.
func WithDuration(d time.Duration) Option { return func(c *Config) { c.Duration = d } }

// WithConfig replaces the whole config.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

func (c Config) normalized() Config {
	c.Angle = geom.NormalizeAngle(c.Angle)
	return c
}
