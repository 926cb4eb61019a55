package internal

import "math"

// An AngleFunc maps an offset from the center to a key that sorts the same way
// as the offset's true angle. It must be total and deterministic.
type AngleFunc func(d Point) float64

// PseudoAngle is a cheap, monotonic substitute for atan2. It returns a value in
// [0, 1), starting at the negative x axis and increasing counterclockwise. The
// zero offset maps to 0.
func PseudoAngle(d Point) float64 {
	sum := math.Abs(d.X) + math.Abs(d.Y)
	if sum == 0 {
		return 0
	}
	p := d.X / sum
	if d.Y > 0 {
		return (3 - p) / 4
	}
	return (1 + p) / 4
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Orient2D(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Reports whether q lies inside or on the triangle abc, which must be
// counterclockwise.
func InTriangle(a, b, c, q Point) bool {
	return Orient2D(a, b, q) >= 0 && Orient2D(b, c, q) >= 0 && Orient2D(c, a, q) >= 0
}
