package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/scene"
)

// FileName is the config file looked up in the working directory.
const FileName = "fillbar.yaml"

// Config holds everything needed to play a scene.
type Config struct {
	FPS        int          `mapstructure:"fps" yaml:"fps"`
	Scale      float64      `mapstructure:"scale" yaml:"scale"`
	Background string       `mapstructure:"background" yaml:"background"`
	Bar        BarConfig    `mapstructure:"bar" yaml:"bar"`
	Scene      []scene.Step `mapstructure:"scene" yaml:"scene"`
}

// BarConfig mirrors bar.Config in a file-friendly form.
type BarConfig struct {
	Width              float64  `mapstructure:"width" yaml:"width"`
	Height             float64  `mapstructure:"height" yaml:"height"`
	Position           Position `mapstructure:"position" yaml:"position"`
	FillColor          string   `mapstructure:"fill_color" yaml:"fill_color"`
	BackgroundColor    string   `mapstructure:"background_color" yaml:"background_color"`
	BorderColor        string   `mapstructure:"border_color" yaml:"border_color"`
	BorderWidth        float64  `mapstructure:"border_width" yaml:"border_width"`
	CornerRadius       float64  `mapstructure:"corner_radius" yaml:"corner_radius"`
	ShowPercentage     bool     `mapstructure:"show_percentage" yaml:"show_percentage"`
	PercentageFontSize int      `mapstructure:"percentage_font_size" yaml:"percentage_font_size"`
	PercentageColor    string   `mapstructure:"percentage_color" yaml:"percentage_color"`
	PercentageFont     string   `mapstructure:"percentage_font" yaml:"percentage_font"`
	Angle              float64  `mapstructure:"angle" yaml:"angle"`
	// Duration is the default auto-progress duration, e.g. "10s". Empty
	// means unset.
	Duration string `mapstructure:"duration" yaml:"duration,omitempty"`
}

// Position is the bar center in scene units.
type Position struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
	Z float64 `mapstructure:"z" yaml:"z"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"fps":                  "fps",
	"scale":                "scale",
	"background":           "background",
	"width":                "bar.width",
	"height":               "bar.height",
	"x":                    "bar.position.x",
	"y":                    "bar.position.y",
	"fill-color":           "bar.fill_color",
	"background-color":     "bar.background_color",
	"border-color":         "bar.border_color",
	"border-width":         "bar.border_width",
	"corner-radius":        "bar.corner_radius",
	"show-percentage":      "bar.show_percentage",
	"percentage-font-size": "bar.percentage_font_size",
	"percentage-color":     "bar.percentage_color",
	"percentage-font":      "bar.percentage_font",
	"angle":                "bar.angle",
	"duration":             "bar.duration",
}

// Load reads configuration. An explicit path must exist; otherwise
// fillbar.yaml in dir is used when present and defaults apply when it is not.
// Flags that were set on the command line override file values.
func Load(dir, path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Scene) == 0 {
		cfg.Scene = scene.DefaultSteps()
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// BarOptions converts the bar section into constructor options.
func (c *Config) BarOptions() ([]bar.Option, error) {
	b := c.Bar
	opts := []bar.Option{
		bar.WithWidth(b.Width),
		bar.WithHeight(b.Height),
		bar.WithPosition(b.Position.X, b.Position.Y, b.Position.Z),
		bar.WithFillColor(b.FillColor),
		bar.WithBackgroundColor(b.BackgroundColor),
		bar.WithBorderColor(b.BorderColor),
		bar.WithBorderWidth(b.BorderWidth),
		bar.WithCornerRadius(b.CornerRadius),
		bar.WithShowPercentage(b.ShowPercentage),
		bar.WithPercentageFontSize(b.PercentageFontSize),
		bar.WithPercentageColor(b.PercentageColor),
		bar.WithPercentageFont(b.PercentageFont),
		bar.WithAngle(b.Angle),
	}

	if strings.TrimSpace(b.Duration) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(b.Duration))
		if err != nil {
			return nil, fmt.Errorf("invalid bar duration %q: %w", b.Duration, err)
		}
		opts = append(opts, bar.WithDuration(d))
	}
	return opts, nil
}

// NewBar builds the configured bar.
func (c *Config) NewBar() (*bar.Bar, error) {
	opts, err := c.BarOptions()
	if err != nil {
		return nil, err
	}
	return bar.New(opts...)
}
