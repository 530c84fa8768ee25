package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{725, 5},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		assert.Equal(t, tt.want, got, "NormalizeAngle(%v)", tt.in)
		assert.False(t, math.Signbit(got), "NormalizeAngle(%v) returned negative zero", tt.in)
	}
}

func TestDirection_AxisAlignedIsExact(t *testing.T) {
	assert.Equal(t, Vec2{1, 0}, Direction(0))
	assert.Equal(t, Vec2{0, 1}, Direction(90))
	assert.Equal(t, Vec2{-1, 0}, Direction(180))
	assert.Equal(t, Vec2{0, -1}, Direction(270))
	assert.Equal(t, Vec2{0, -1}, Direction(-90))
	assert.Equal(t, Vec2{1, 0}, Direction(720))
}

func TestDirection_Oblique(t *testing.T) {
	d := Direction(30)
	assert.InDelta(t, math.Sqrt(3)/2, d.X, 1e-12)
	assert.InDelta(t, 0.5, d.Y, 1e-12)
	assert.InDelta(t, 1, math.Hypot(d.X, d.Y), 1e-12)
}

func polygonArea(pts []Vec2) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(sum) / 2
}

func sceneBounds(pts []Vec2) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min = Vec2{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)}
		r.Max = Vec2{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)}
	}
	return r
}

func assertRectInDelta(t *testing.T, want, got Rect, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-12, msgAndArgs...)
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-12, msgAndArgs...)
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-12, msgAndArgs...)
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-12, msgAndArgs...)
}

func TestComputeFill_AxisAlignedExtentIsExact(t *testing.T) {
	const w, h = 10.0, 0.3
	progresses := []float64{0.1, 0.25, 1.0 / 3, 0.5, 0.7, 0.99, 1}

	for _, p := range progresses {
		for _, angle := range []float64{0, 180} {
			f := ComputeFill(p, angle, w, h, 0)
			assert.Equal(t, p*w, f.Extent, "angle %v p=%v", angle, p)
			assert.Equal(t, p*w, f.Bounds.Width(), "angle %v p=%v", angle, p)
			assert.Equal(t, Vec2{p * w, h}, f.Size, "angle %v p=%v", angle, p)
		}
		for _, angle := range []float64{90, 270} {
			f := ComputeFill(p, angle, w, h, 0)
			assert.Equal(t, p*w, f.Extent, "angle %v p=%v", angle, p)
			assert.Equal(t, Vec2{h, p * w}, f.Size, "angle %v p=%v", angle, p)
		}
	}
}

func TestComputeFill_RotatesBar(t *testing.T) {
	// a 2x0.3 bar at 90 degrees stands upright and fills bottom-up
	f := ComputeFill(0.5, 90, 2, 0.3, 0)
	assertRectInDelta(t, Rect{Min: Vec2{-0.15, -1}, Max: Vec2{0.15, 1}}, sceneBounds(f.Outline))
	assertRectInDelta(t, Rect{Min: Vec2{-0.15, -1}, Max: Vec2{0.15, 0}}, sceneBounds(f.Polygon))
}

func TestComputeFill_AnchorEdges(t *testing.T) {
	tests := []struct {
		angle float64
		want  Rect
	}{
		{0, Rect{Min: Vec2{-2, -1}, Max: Vec2{0, 1}}},
		{90, Rect{Min: Vec2{-1, -2}, Max: Vec2{1, 0}}},
		{180, Rect{Min: Vec2{0, -1}, Max: Vec2{2, 1}}},
		{270, Rect{Min: Vec2{-1, 0}, Max: Vec2{1, 2}}},
	}

	for _, tt := range tests {
		f := ComputeFill(0.5, tt.angle, 4, 2, 0)
		assert.Equal(t, Rect{Max: Vec2{2, 2}}, f.Bounds, "angle %v", tt.angle)
		assertRectInDelta(t, tt.want, sceneBounds(f.Polygon), "angle %v", tt.angle)
	}
}

func TestComputeFill_FullProgressCoversBox(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 135, 180, 200, 270, 315} {
		f := ComputeFill(1, angle, 10, 0.4, 0.1)
		assert.Equal(t, f.Box, f.Bounds, "angle %v", angle)
		assert.Equal(t, f.Outline, f.Polygon, "angle %v", angle)
		assert.InDelta(t, 4.0, polygonArea(f.Polygon), 1e-9, "angle %v", angle)
		assert.False(t, f.Empty)
	}
}

func TestComputeFill_DiagonalCoversRotatedBox(t *testing.T) {
	const w, h = 4.0, 0.3
	f := ComputeFill(1, 45, w, h, 0)

	for _, local := range []Vec2{{0.01, 0.01}, {3.99, 0.29}, {3.99, 0.01}, {0.01, 0.29}, {2, 0.15}} {
		scene := f.ToScene(local)
		assert.True(t, f.Contains(f.ToLocal(scene)), "local %v at scene %v", local, scene)
	}
	// corner of the unrotated box is outside the rotated bar
	assert.False(t, f.Contains(f.ToLocal(Vec2{2, 0.15})))

	side := (w + h) / math.Sqrt2
	assert.InDelta(t, side, f.Size.X, 1e-12)
	assert.InDelta(t, side, f.Size.Y, 1e-12)
}

func TestComputeFill_ZeroProgressIsEmpty(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 180, 270, 300} {
		f := ComputeFill(0, angle, 10, 0.4, 0.1)
		assert.True(t, f.Empty, "angle %v", angle)
		assert.Zero(t, f.Bounds.Area(), "angle %v", angle)
		assert.Zero(t, f.Shape.Area(), "angle %v", angle)
		assert.Nil(t, f.Polygon)
		assert.Len(t, f.Outline, 4)
		assert.False(t, f.Contains(Vec2{0.01, 0.2}))
	}
}

func TestComputeFill_ClampsProgress(t *testing.T) {
	assert.Equal(t, ComputeFill(1, 30, 5, 1, 0.1), ComputeFill(1.5, 30, 5, 1, 0.1))
	assert.Equal(t, ComputeFill(0, 30, 5, 1, 0.1), ComputeFill(-0.2, 30, 5, 1, 0.1))
	assert.Equal(t, ComputeFill(0.3, 30, 5, 1, 0.1), ComputeFill(0.3, 390, 5, 1, 0.1))
}

func TestComputeFill_ObliqueAreaGrowsWithProgress(t *testing.T) {
	prev := 0.0
	for p := 0.1; p <= 1.0; p += 0.1 {
		area := polygonArea(ComputeFill(p, 60, 10, 1, 0).Polygon)
		assert.InDelta(t, p*10, area, 1e-9, "p=%v", p)
		assert.Greater(t, area, prev, "p=%v", p)
		prev = area
	}
}

func TestFill_LocalSceneRoundTrip(t *testing.T) {
	f := ComputeFill(0.5, 33, 6, 1, 0)
	for _, local := range []Vec2{{0, 0}, {1.5, 0.25}, {6, 1}} {
		back := f.ToLocal(f.ToScene(local))
		assert.InDelta(t, local.X, back.X, 1e-12)
		assert.InDelta(t, local.Y, back.Y, 1e-12)
	}
	// the bar center maps to the middle of the box
	assert.Equal(t, f.Box.Center(), f.ToLocal(Vec2{}))
}

func TestComputeFill_MinimumShape(t *testing.T) {
	for _, angle := range []float64{0, 180, 45} {
		f := ComputeFill(0.01, angle, 10, 1, 0.2)
		assert.InDelta(t, 0.1, f.Extent, 1e-12)
		assert.InDelta(t, 0.1, f.Bounds.Width(), 1e-12)
		assert.GreaterOrEqual(t, f.Shape.Width(), 0.4, "angle %v", angle)
		assert.Equal(t, 0.0, f.Shape.Min.X, "grows away from the start edge")
		assert.True(t, f.Contains(Vec2{0.35, 0.5}))
	}
}

func TestComputeFill_MinimumShapeCappedByBar(t *testing.T) {
	f := ComputeFill(0.01, 0, 10, 0.3, 0.2)
	assert.Equal(t, 0.4, f.Shape.Width())
	assert.Equal(t, 0.3, f.Shape.Height(), "thickness stays the bar height")

	f = ComputeFill(0.5, 0, 0.3, 1, 0.2)
	assert.Equal(t, 0.3, f.Shape.Width(), "capped at the bar length")
}

func TestComputeFill_Idempotent(t *testing.T) {
	assert.Equal(t, ComputeFill(0.5, 33, 10, 0.3, 0.1), ComputeFill(0.5, 33, 10, 0.3, 0.1))
}

func TestRoundedRect_Contains(t *testing.T) {
	r := RoundedRect{Rect: RectWH(4, 2), Radius: 1}

	assert.True(t, r.Contains(Vec2{2, 1}))
	assert.True(t, r.Contains(Vec2{0.1, 1}))
	// corner cut off by the radius
	assert.False(t, r.Contains(Vec2{0.05, 0.05}))
	assert.False(t, r.Contains(Vec2{5, 1}))

	assert.InDelta(t, -1.0, r.Distance(Vec2{2, 1}), 1e-12)
	assert.InDelta(t, 0.0, r.Distance(Vec2{2, 0}), 1e-12)
}

func TestRoundedRect_EmptyRect(t *testing.T) {
	r := RoundedRect{Rect: RectWH(0, 2), Radius: 0.5}
	assert.False(t, r.Contains(Vec2{0, 1}))
}

func TestRect_Geometry(t *testing.T) {
	r := Rect{Min: Vec2{1, 2}, Max: Vec2{5, 4}}

	assert.Equal(t, Vec2{4, 2}, r.Size())
	assert.Equal(t, Vec2{3, 3}, r.Center())
	assert.Equal(t, 8.0, r.Area())
	assert.Equal(t, 8.0, polygonArea(r.Corners()))
	assert.True(t, r.Contains(Vec2{5, 4}), "edges are inside")
	assert.False(t, r.Contains(Vec2{0, 3}))
	assert.Zero(t, Rect{Min: Vec2{2, 2}, Max: Vec2{1, 3}}.Area())
}
