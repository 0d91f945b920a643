package kinematics

import (
	"math"

	"go.uber.org/zap"

	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

// SampleStroke solves the linkage for one shock-stroke distance and returns the
// provisional state of the first pass: positions, shock length, wheel travel
// and pitch (against an uncompressed fork).
//
// The shock eye uses the candidate index and the axle uses the side fixed by
// tri. The whole assembly is then translated vertically so the rear wheel
// rests on the ground.
func SampleStroke(g geometry.Geometry, tri RigidTriangle, stroke float64) State {
	s := State{
		Stroke:        stroke,
		ShockLength:   g.ShockETE - stroke,
		BottomBracket: g.BottomBracket(),
		Pivot:         g.Pivot(),
		ShockMount:    g.ShockFrameMount(),
	}

	eyes, ok := planar.CircleIntersection(s.Pivot, tri.PivotEye, s.ShockMount, s.ShockLength)
	if !ok {
		Logger().Debug("shock eye unreachable", zap.Float64("stroke", stroke), zap.Float64("shockLength", s.ShockLength))
		s.Degenerate = true
		return s
	}
	eye := eyes[tri.EyeIndex]

	axle, ok := tri.axleFrom(s.Pivot, eye)
	if !ok || !axle.IsFinite() {
		Logger().Debug("swingarm triangle infeasible", zap.Float64("stroke", stroke))
		s.Degenerate = true
		return s
	}

	shift := planar.Pt(0, g.RearWheelRadius()-axle.Y)
	s.RearAxle = axle.Add(shift)
	s.ShockEye = eye.Add(shift)
	s.Pivot = s.Pivot.Add(shift)
	s.ShockMount = s.ShockMount.Add(shift)
	s.BottomBracket = s.BottomBracket.Add(shift)

	front := g.FrontAxle(s.BottomBracket, g.ForkLength)
	s.PitchAngle = pitchAngle(s.RearAxle, front, g.RearWheelRadius(), g.FrontWheelRadius())
	s.Travel = math.Abs(g.BBHeight - s.BottomBracket.Y)

	// A fallback triangle solves, but nothing derived from it is meaningful.
	s.Degenerate = tri.Fallback
	return s
}

// pitchAngle returns, in degrees, the angle of the common ground tangent of the
// rear and front wheels. Rotating the frame by minus this angle about the rear
// axle puts both wheels on the ground.
func pitchAngle(rear, front planar.Point, rearRadius, frontRadius float64) float64 {
	d := planar.Distance(rear, front)
	if d == 0 {
		return 0
	}
	return planar.Degrees(planar.Angle(rear, front) - planar.Asin((frontRadius-rearRadius)/d))
}
