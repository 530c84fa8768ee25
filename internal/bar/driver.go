package bar

import (
	"log/slog"
	"time"

	"github.com/pablasso/fillbar/internal/anim"
	"github.com/pablasso/fillbar/internal/geom"
)

// SetProgress returns an animation that moves progress linearly from its
// value when the animation begins to v over transition. v is clamped into
// [0,1]. A transition of zero or less jumps straight to v.
func (b *Bar) SetProgress(v float64, transition time.Duration) anim.Animation {
	if transition < 0 {
		transition = 0
	}
	return &tween{bar: b, to: geom.Clamp01(v), d: transition}
}

type tween struct {
	bar      *Bar
	from, to float64
	d        time.Duration
}

func (t *tween) Begin()                  { t.from = t.bar.progress }
func (t *tween) Finish()                 {}
func (t *tween) Duration() time.Duration { return t.d }

func (t *tween) Interpolate(alpha float64) {
	if alpha >= 1 {
		t.bar.UpdateProgressInstant(t.to)
		return
	}
	t.bar.UpdateProgressInstant(t.from + (t.to-t.from)*alpha)
}

// AutoProgress returns an animation that advances progress from start to end
// over duration, mapping elapsed time linearly to progress. A duration of
// zero or less falls back to the configured Duration and then to
// DefaultAutoDuration.
//
// When the animation begins the bar jumps to start, existing updaters are
// cleared and a time-driven updater is attached. The updater is detached once
// the animation completes with progress at end.
func (b *Bar) AutoProgress(duration time.Duration, start, end float64) anim.Animation {
	if duration <= 0 {
		duration = b.cfg.Duration
	}
	if duration <= 0 {
		duration = DefaultAutoDuration
	}
	return &autoRun{
		bar:      b,
		duration: duration,
		start:    geom.Clamp01(start),
		end:      geom.Clamp01(end),
	}
}

// Start runs AutoProgress from 0 to 1 with the configured duration.
func (b *Bar) Start() anim.Animation {
	return b.AutoProgress(0, 0, 1)
}

type autoRun struct {
	bar        *Bar
	duration   time.Duration
	start, end float64

	elapsed  time.Duration
	detached bool
}

func (r *autoRun) Duration() time.Duration { return r.duration }

func (r *autoRun) Begin() {
	r.elapsed = 0
	r.detached = false
	r.bar.UpdateProgressInstant(r.start)
	r.bar.ClearUpdaters()
	r.bar.AddUpdater(r.update)
}

// Interpolate moves the time tracker; the attached updater turns it into
// progress on the next tick.
func (r *autoRun) Interpolate(alpha float64) {
	r.elapsed = time.Duration(alpha * float64(r.duration))
	if alpha >= 1 {
		r.detach()
	}
}

func (r *autoRun) Finish() {
	r.detach()
}

func (r *autoRun) detach() {
	if r.detached {
		return
	}
	r.elapsed = r.duration
	r.update(r.bar, 0)
	r.bar.ClearUpdaters()
	r.detached = true
	slog.Debug("auto progress finished", "duration", r.duration, "progress", r.bar.progress)
}

func (r *autoRun) update(b *Bar, _ time.Duration) {
	switch {
	case r.elapsed <= 0:
		b.UpdateProgressInstant(r.start)
	case r.elapsed >= r.duration:
		b.UpdateProgressInstant(r.end)
	default:
		frac := float64(r.elapsed) / float64(r.duration)
		b.UpdateProgressInstant(r.start + frac*(r.end-r.start))
	}
}
