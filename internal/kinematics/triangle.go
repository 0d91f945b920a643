package kinematics

import (
	"math"

	"go.uber.org/zap"

	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

// RigidTriangle is the fixed {main pivot, shock eye, rear axle} triangle of the
// swingarm, solved once at top-out.
//
// EyeIndex selects which circle-circle intersection is the shock eye and
// AxlePositive selects which side of the pivot→eye line the axle lies on. Every
// stroke sample reuses both choices, so the linkage can never flip to its mirror
// image part-way through the stroke.
type RigidTriangle struct {
	PivotEye     float64 `json:"pivotEye"`
	PivotAxle    float64 `json:"pivotAxle"`
	EyeAxle      float64 `json:"eyeAxle"`
	EyeIndex     int     `json:"eyeIndex"`
	AxlePositive bool    `json:"axlePositive"`

	// Fallback is set when the top-out linkage could not be solved and the
	// triangle was built from nominal geometry values instead.
	Fallback bool `json:"fallback,omitempty"`
}

// SolveRigidTriangle determines the swingarm triangle at top-out (shock at its
// eye-to-eye length, rear wheel on the ground).
//
// The shock eye is the intersection candidate with the greater x and the axle
// is the candidate with the smaller x: the swingarm always trails the pivot.
// When either cannot be found the nominal fallback triangle is returned.
func SolveRigidTriangle(g geometry.Geometry) RigidTriangle {
	pivot, mount := g.Pivot(), g.ShockFrameMount()

	eyes, ok := planar.CircleIntersection(pivot, g.ShockSwingarmMountDistance, mount, g.ShockETE)
	if !ok {
		Logger().Warn("shock cannot reach the swingarm mount at top-out, using fallback triangle",
			zap.Float64("shockETE", g.ShockETE),
			zap.Float64("mountDistance", g.ShockSwingarmMountDistance))
		return fallbackTriangle(g)
	}
	eyeIndex := 0
	if eyes[1].X > eyes[0].X {
		eyeIndex = 1
	}
	eye := eyes[eyeIndex]

	axle, ok := topOutAxle(g)
	if !ok {
		Logger().Warn("swingarm too short to reach the ground, using fallback triangle",
			zap.Float64("swingarmLength", g.SwingarmLength),
			zap.Float64("pivotHeight", pivot.Y))
		return fallbackTriangle(g)
	}

	tri := RigidTriangle{
		PivotEye:  planar.Distance(pivot, eye),
		PivotAxle: planar.Distance(pivot, axle),
		EyeAxle:   planar.Distance(eye, axle),
		EyeIndex:  eyeIndex,
	}

	tri.AxlePositive = true
	pos, okPos := tri.axleFrom(pivot, eye)
	tri.AxlePositive = false
	neg, okNeg := tri.axleFrom(pivot, eye)
	if !okPos || !okNeg {
		// The eye coincides with the pivot, so the lever arm has no direction.
		Logger().Warn("shock eye sits on the main pivot, using fallback triangle",
			zap.Float64("pivotEye", tri.PivotEye),
			zap.Float64("pivotAxle", tri.PivotAxle))
		return fallbackTriangle(g)
	}
	tri.AxlePositive = planar.Distance(pos, axle) <= planar.Distance(neg, axle)
	return tri
}

// fallbackTriangle treats the shock mount distance as both the pivot→eye and
// pivot→axle length, which keeps the solve finite but visibly wrong.
func fallbackTriangle(g geometry.Geometry) RigidTriangle {
	return RigidTriangle{
		PivotEye:     g.ShockSwingarmMountDistance,
		PivotAxle:    g.ShockSwingarmMountDistance,
		EyeAxle:      0,
		EyeIndex:     0,
		AxlePositive: true,
		Fallback:     true,
	}
}

// topOutAxle places the rear axle at wheel-radius height, one swingarm length
// behind the pivot. ok is false when the swingarm cannot reach that height.
func topOutAxle(g geometry.Geometry) (planar.Point, bool) {
	pivot := g.Pivot()
	r := g.RearWheelRadius()
	dy := pivot.Y - r
	h2 := g.SwingarmLength*g.SwingarmLength - dy*dy
	if h2 < 0 {
		return planar.Point{}, false
	}
	return planar.Pt(pivot.X-math.Sqrt(h2), r), true
}

// axleFrom places the axle from the pivot and shock eye using the fixed side
// lengths (law of cosines at the pivot). ok is false when the three lengths do
// not form a triangle.
func (t RigidTriangle) axleFrom(pivot, eye planar.Point) (planar.Point, bool) {
	if t.PivotEye <= 0 || t.PivotAxle <= 0 {
		return planar.Point{}, false
	}
	cos := (t.PivotEye*t.PivotEye + t.PivotAxle*t.PivotAxle - t.EyeAxle*t.EyeAxle) /
		(2 * t.PivotEye * t.PivotAxle)
	if math.IsNaN(cos) || math.Abs(cos) > 1+1e-9 {
		return planar.Point{}, false
	}
	angleAtPivot := planar.Acos(cos)
	if !t.AxlePositive {
		angleAtPivot = -angleAtPivot
	}
	return pivot.Polar(t.PivotAxle, planar.Angle(pivot, eye)+angleAtPivot), true
}
