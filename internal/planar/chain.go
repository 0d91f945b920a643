package planar

import "math"

// ChainPitch is the pitch of a standard 1/2" bicycle chain, in millimetres.
const ChainPitch = 12.7

// SprocketRadius returns the effective pitch-circle radius of a sprocket with
// the given number of teeth.
func SprocketRadius(teeth int) float64 {
	return float64(teeth) * ChainPitch / (2 * math.Pi)
}

// ChainLength returns the length of a closed chain wrapped around two circles:
// both straight spans plus the arc wrapped on each circle.
//
// When the centre distance does not exceed the radius difference (one circle
// nested in the other) the raw centre distance is returned.
func ChainLength(from, to Point, r1, r2 float64) float64 {
	d := Distance(from, to)
	if d == 0 || d < math.Abs(r1-r2) {
		return d
	}
	dr := r1 - r2
	span := math.Sqrt(max(0, d*d-dr*dr))
	return 2*span + math.Pi*(r1+r2) + 2*dr*Asin(dr/d)
}

// TangentPoints returns the points where the upper external common tangent of
// the two circles touches the first and the second circle.
//
// The asin argument is clamped, so circles that are too close still produce a
// real (if meaningless) pair of points.
func TangentPoints(c1 Point, r1 float64, c2 Point, r2 float64) (t1, t2 Point) {
	d := Distance(c1, c2)
	if d == 0 {
		up := Point{X: 0, Y: 1}
		return c1.Add(up.Mul(r1)), c2.Add(up.Mul(r2))
	}
	phi := Angle(c1, c2)
	offset := math.Pi/2 - Asin((r1-r2)/d)

	// Two external tangents; the upper one has the normal pointing up.
	normal := phi + offset
	if alt := phi - offset; math.Sin(alt) > math.Sin(normal) {
		normal = alt
	}
	return c1.Polar(r1, normal), c2.Polar(r2, normal)
}

// TransformByReferenceLine carries i0, a point fixed relative to the reference
// segment p0→a0, onto the moved segment p1→a1. The offset from p0 is rotated by
// the change in segment direction and translated to p1; segment length plays
// no part.
func TransformByReferenceLine(p0, a0, i0, p1, a1 Point) Point {
	dTheta := Angle(p1, a1) - Angle(p0, a0)
	return p1.Add(i0.Sub(p0).Rotate(dTheta))
}
