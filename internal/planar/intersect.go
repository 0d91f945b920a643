package planar

import "math"

// ParallelTolerance is the determinant magnitude below which two lines are
// treated as parallel.
const ParallelTolerance = 1e-4

// LineIntersection returns the intersection of the infinite line through p1,p2
// with the infinite line through p3,p4. ok is false when the lines are
// parallel. The result is not clipped to either segment.
func LineIntersection(p1, p2, p3, p4 Point) (pt Point, ok bool) {
	det := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(det) < ParallelTolerance {
		return Point{}, false
	}
	a := p1.X*p2.Y - p1.Y*p2.X
	b := p3.X*p4.Y - p3.Y*p4.X
	return Point{
		X: (a*(p3.X-p4.X) - (p1.X-p2.X)*b) / det,
		Y: (a*(p3.Y-p4.Y) - (p1.Y-p2.Y)*b) / det,
	}, true
}

// CircleIntersection returns the two intersection points of the circle of
// radius r1 around c1 and the circle of radius r2 around c2.
//
// ok is false when the circles are disjoint, when one contains the other, or
// when the centres coincide. Tangent circles yield two coincident points.
//
// Index 0 lies to the left of the directed line c1→c2 and index 1 to the
// right, so the ordering depends only on the inputs.
func CircleIntersection(c1 Point, r1 float64, c2 Point, r2 float64) (pts [2]Point, ok bool) {
	d := Distance(c1, c2)
	if d == 0 || d > r1+r2 || d < math.Abs(r1-r2) {
		return pts, false
	}
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(max(0, r1*r1-a*a))

	dir := c2.Sub(c1).Mul(1 / d)
	base := c1.Add(dir.Mul(a))
	perp := Point{X: -dir.Y, Y: dir.X}

	pts[0] = base.Add(perp.Mul(h))
	pts[1] = base.Sub(perp.Mul(h))
	return pts, true
}

// PointLineDistance returns the signed perpendicular distance from p to the
// line through a and b. The sign is positive when p lies to the left of the
// directed line a→b. A degenerate line (a == b) returns the distance to a.
func PointLineDistance(p, a, b Point) float64 {
	dir := b.Sub(a)
	l := dir.Length()
	if l == 0 {
		return Distance(p, a)
	}
	return dir.Cross(p.Sub(a)) / l
}

// YAtX returns the y coordinate of the line through a and b at the given x.
// ok is false for a vertical line.
func YAtX(a, b Point, x float64) (float64, bool) {
	dx := b.X - a.X
	if math.Abs(dx) < ParallelTolerance {
		return 0, false
	}
	return a.Y + (b.Y-a.Y)*(x-a.X)/dx, true
}
