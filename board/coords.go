package board

// Vec is a position in pixel space.
type Vec struct {
	X, Y float64
}

// Size is the pixel extent of a drawing surface.
type Size struct {
	W, H float64
}

func (s Size) empty() bool { return s.W <= 0 || s.H <= 0 }

// ToPixel projects a normalized point onto a canvas of the given size.
func ToPixel(p Point, size Size) Vec {
	return Vec{X: p.X * size.W, Y: p.Y * size.H}
}

// ToNormalized is the inverse of ToPixel. A degenerate canvas maps every
// pixel to the origin.
func ToNormalized(v Vec, size Size) Point {
	if size.empty() {
		return Point{}
	}
	return Point{X: v.X / size.W, Y: v.Y / size.H}
}

func dist2(a, b Vec) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
