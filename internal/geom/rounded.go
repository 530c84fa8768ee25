package geom

import "math"

// RoundedRect is a rectangle with circular corners.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// Distance returns the signed distance from pt to the outline: negative
// inside, positive outside. The radius is capped at half the shorter side.
func (r RoundedRect) Distance(pt Vec2) float64 {
	c := r.Rect.Center()
	hw := r.Rect.Width() / 2
	hh := r.Rect.Height() / 2
	rad := math.Max(0, math.Min(r.Radius, math.Min(hw, hh)))

	qx := math.Abs(pt.X-c.X) - hw + rad
	qy := math.Abs(pt.Y-c.Y) - hh + rad
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - rad
}

// Contains reports whether pt is inside the rounded outline.
func (r RoundedRect) Contains(pt Vec2) bool {
	if r.Rect.IsEmpty() {
		return false
	}
	return r.Distance(pt) <= 0
}
