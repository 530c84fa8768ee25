package geom

import "math"

// NormalizeAngle maps deg into [0,360). Non-finite input maps to 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-14 + 360 rounds up to 360
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}

// Direction returns the unit vector for deg, measured counter-clockwise from
// horizontal-right. The four axis angles return exact vectors so that fills
// along them carry no trigonometric error.
func Direction(deg float64) Vec2 {
	a := NormalizeAngle(deg)
	switch a {
	case 0:
		return Vec2{1, 0}
	case 90:
		return Vec2{0, 1}
	case 180:
		return Vec2{-1, 0}
	case 270:
		return Vec2{0, -1}
	}
	rad := a * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}
