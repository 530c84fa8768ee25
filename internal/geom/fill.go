package geom

import "math"

// Fill is the filled portion of a bar of length width and thickness height,
// rotated so that its length runs along Direction.
//
// Box, Bounds and Shape are in bar-local coordinates: x runs along the bar
// from the edge the fill starts at, y runs across it. Polygon and Outline are
// in scene orientation, relative to the bar center.
type Fill struct {
	Progress  float64 `json:"progress"`
	Angle     float64 `json:"angle"`
	Direction Vec2    `json:"direction"`
	// Normal is Direction turned a quarter turn counter-clockwise.
	Normal Vec2 `json:"normal"`
	// Extent is how far the fill front has travelled along Direction.
	Extent float64 `json:"extent"`
	// Span is the extent at progress 1, the bar length.
	Span float64 `json:"span"`
	Box  Rect    `json:"box"`
	// Bounds is the exact filled region, [0,Extent]x[0,height].
	Bounds Rect `json:"bounds"`
	// Shape is Bounds grown so that a rounded-corner mask of the configured
	// radius keeps its shape.
	Shape Rect `json:"shape"`
	// Size is the scene-space width and height of the axis-aligned box
	// around the fill.
	Size    Vec2   `json:"size"`
	Polygon []Vec2 `json:"polygon,omitempty"`
	Outline []Vec2 `json:"outline"`
	Empty   bool   `json:"empty"`
}

// ComputeFill returns the region of a width x height bar covered at the given
// progress when the bar is rotated to angle degrees. progress is clamped into
// [0,1] and angle normalized into [0,360).
func ComputeFill(progress, angle, width, height, cornerRadius float64) Fill {
	p := Clamp01(progress)
	a := NormalizeAngle(angle)
	w := math.Max(width, 0)
	h := math.Max(height, 0)
	d := Direction(a)

	f := Fill{
		Progress:  p,
		Angle:     a,
		Direction: d,
		Normal:    Vec2{0 - d.Y, d.X}, // 0 - d.Y keeps +0 at angle 0
		Span:      w,
		Extent:    p * w,
		Box:       RectWH(w, h),
	}
	f.Bounds = RectWH(f.Extent, h)
	f.Outline = f.toSceneAll(f.Box.Corners())

	if p == 0 || f.Bounds.IsEmpty() {
		f.Empty = true
		f.Shape = f.Bounds
		return f
	}

	f.Shape = f.minShape(cornerRadius)
	f.Polygon = f.toSceneAll(f.Bounds.Corners())
	f.Size = Vec2{
		X: math.Abs(d.X)*f.Extent + math.Abs(f.Normal.X)*h,
		Y: math.Abs(d.Y)*f.Extent + math.Abs(f.Normal.Y)*h,
	}
	return f
}

// minShape grows the fill length so it is at least twice the corner radius,
// keeping a radius 0.2 fill at 0.4 or longer. Growth is capped at the bar
// length. The thickness is the bar height; when that is below twice the
// radius the rounded mask clamps its radius to half the thickness.
func (f *Fill) minShape(radius float64) Rect {
	s := f.Bounds
	if radius <= 0 || s.Width() >= 2*radius {
		return s
	}
	s.Max.X = math.Min(2*radius, f.Box.Width())
	return s
}

// ToLocal maps pt, given relative to the bar center in scene orientation,
// into bar-local coordinates.
func (f Fill) ToLocal(pt Vec2) Vec2 {
	c := f.Box.Center()
	return Vec2{pt.Dot(f.Direction) + c.X, pt.Dot(f.Normal) + c.Y}
}

// ToScene maps a bar-local point to scene orientation relative to the bar
// center.
func (f Fill) ToScene(pt Vec2) Vec2 {
	c := f.Box.Center()
	return f.Direction.Scale(pt.X - c.X).Add(f.Normal.Scale(pt.Y - c.Y))
}

func (f Fill) toSceneAll(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, pt := range pts {
		out[i] = f.ToScene(pt)
	}
	return out
}

// Contains reports whether the bar-local point pt is drawn as filled.
func (f Fill) Contains(pt Vec2) bool {
	return !f.Empty && f.Shape.Contains(pt)
}
