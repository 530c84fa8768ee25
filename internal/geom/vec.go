// Package geom computes the filled portion of a rotated progress bar for a
// given progress value and angle.
//
// Coordinates are y-up. A bar's local frame spans [0,width]x[0,height] with x
// along the bar; the scene frame is that box rotated about its center.
package geom

import "math"

// Vec2 is a point or direction in bar-local units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Rect is an axis-aligned rectangle. Min is the bottom-left corner.
type Rect struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// RectWH returns the rectangle [0,w]x[0,h].
func RectWH(w, h float64) Rect {
	return Rect{Max: Vec2{w, h}}
}

// Width returns the horizontal size of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical size of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Area returns width*height, or 0 for inverted rectangles.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsEmpty reports whether r has no interior.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether pt lies inside r, edges included.
func (r Rect) Contains(pt Vec2) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Corners returns the four corners counter-clockwise from Min.
func (r Rect) Corners() []Vec2 {
	return []Vec2{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

// Clamp01 clamps v into [0,1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
