// Package bar implements the animated progress bar widget: its construction
// options, progress state, fill geometry and the animations that drive it.
package bar

import (
	"fmt"
	"time"

	"github.com/pablasso/fillbar/internal/geom"
)

// Updater is called once per frame while attached to a Bar.
type Updater func(b *Bar, dt time.Duration)

// Bar is a progress bar. It is not safe for concurrent use; a single host
// loop drives it.
type Bar struct {
	cfg      Config
	progress float64
	fill     geom.Fill
	updaters []Updater
}

// Label describes the percentage text drawn over the bar.
type Label struct {
	Text     string `json:"text"`
	Font     string `json:"font"`
	FontSize int    `json:"font_size"`
	Color    string `json:"color"`
	Visible  bool   `json:"visible"`
}

// Snapshot is the drawable state of a Bar at one instant.
type Snapshot struct {
	Config   Config    `json:"config"`
	Progress float64   `json:"progress"`
	Fill     geom.Fill `json:"fill"`
	Label    Label     `json:"label"`
}

// New creates a Bar at progress 0. Invalid options fail with a
// *ValidationError (joined when there are several).
func New(opts ...Option) (*Bar, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("progress bar: %w", err)
	}

	b := &Bar{cfg: cfg.normalized()}
	b.redraw()
	return b, nil
}

// Config returns the construction settings with the angle normalized.
func (b *Bar) Config() Config {
	return b.cfg
}

// Progress returns the current progress in [0,1].
func (b *Bar) Progress() float64 {
	return b.progress
}

// Geometry returns the fill computed for the current progress.
func (b *Bar) Geometry() geom.Fill {
	return b.fill
}

// Label returns the percentage label. It is visible while ShowPercentage is
// set and progress is below 1.
func (b *Bar) Label() Label {
	return Label{
		Text:     fmt.Sprintf("%d%%", int(b.progress*100)),
		Font:     b.cfg.PercentageFont,
		FontSize: b.cfg.PercentageFontSize,
		Color:    b.cfg.PercentageColor,
		Visible:  b.cfg.ShowPercentage && b.progress < 1,
	}
}

// Snapshot captures everything a renderer needs.
func (b *Bar) Snapshot() Snapshot {
	return Snapshot{
		Config:   b.cfg,
		Progress: b.progress,
		Fill:     b.fill,
		Label:    b.Label(),
	}
}

// UpdateProgressInstant sets progress without animating and recomputes the
// fill at once.
func (b *Bar) UpdateProgressInstant(v float64) {
	b.progress = geom.Clamp01(v)
	b.redraw()
}

// AddUpdater attaches fn to run on every Tick.
func (b *Bar) AddUpdater(fn Updater) {
	b.updaters = append(b.updaters, fn)
}

// ClearUpdaters detaches every updater.
func (b *Bar) ClearUpdaters() {
	b.updaters = nil
}

// Updaters returns the number of attached updaters.
func (b *Bar) Updaters() int {
	return len(b.updaters)
}

// Tick runs the attached updaters. An updater may detach itself.
func (b *Bar) Tick(dt time.Duration) {
	for _, fn := range append([]Updater(nil), b.updaters...) {
		fn(b, dt)
	}
}

func (b *Bar) redraw() {
	b.fill = geom.ComputeFill(b.progress, b.cfg.Angle, b.cfg.Width, b.cfg.Height, b.cfg.CornerRadius)
}
