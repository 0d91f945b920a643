// Package planar provides the 2D vector, line and circle primitives used by the
// suspension solver. Everything here is a pure function of its arguments.
//
// Coordinates are millimetres in the sagittal plane: x points forward (toward
// the front wheel), y points up, and the ground is the line y = 0. Angles are
// radians unless a name says otherwise.
package planar

import "math"

// Point is a 2D point or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rotate returns the vector rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Polar returns the point at distance r from p in direction angle.
func (p Point) Polar(r, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X + r*cos, Y: p.Y + r*sin}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// Angle returns the direction of b as seen from a, atan2(Δy, Δx).
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// RotateAbout rotates p by angle radians around center.
func RotateAbout(p, center Point, angle float64) Point {
	return center.Add(p.Sub(center).Rotate(angle))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Asin is math.Asin with its argument clamped to [-1, 1]. NaN maps to 0.
func Asin(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Asin(max(-1, min(1, x)))
}

// Acos is math.Acos with its argument clamped to [-1, 1]. NaN maps to π/2.
func Acos(x float64) float64 {
	if math.IsNaN(x) {
		return math.Pi / 2
	}
	return math.Acos(max(-1, min(1, x)))
}
