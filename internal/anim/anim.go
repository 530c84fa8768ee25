// Package anim plays time-based animations one frame at a time.
//
// Everything here runs on the caller's goroutine. A host loop calls
// Player.Advance once per rendered frame with the elapsed time since the
// previous frame.
package anim

import "time"

// Animation interpolates some state as alpha goes from 0 to 1 over Duration.
type Animation interface {
	// Begin is called once, right before the first Interpolate.
	Begin()
	Interpolate(alpha float64)
	// Finish is called once, after Interpolate(1).
	Finish()
	Duration() time.Duration
}

// Ticker is advanced once per frame after animations have been interpolated.
type Ticker interface {
	Tick(dt time.Duration)
}

// Func adapts a plain alpha callback into an Animation.
type Func struct {
	d  time.Duration
	fn func(alpha float64)
}

// NewFunc returns an Animation that calls fn with alpha for d.
func NewFunc(d time.Duration, fn func(alpha float64)) *Func {
	return &Func{d: d, fn: fn}
}

func (f *Func) Begin()                  {}
func (f *Func) Finish()                 {}
func (f *Func) Duration() time.Duration { return f.d }

func (f *Func) Interpolate(alpha float64) {
	if f.fn != nil {
		f.fn(alpha)
	}
}

// Wait returns an Animation that does nothing for d.
func Wait(d time.Duration) Animation {
	return NewFunc(d, nil)
}
