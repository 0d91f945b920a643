// Package geometry defines the frame, fork, linkage, shock and drivetrain
// parameters of a single-pivot rear suspension, along with the frame-fixed
// points derived from them.
//
// All lengths are millimetres and all angles are degrees. Offsets named
// "...X/...Y" are measured from the bottom bracket. At top-out the bottom
// bracket sits at (0, BBHeight) with the rear wheel on the ground (y = 0) and
// the bike facing +x.
package geometry

import (
	"math"

	"github.com/cxd309/suspension-engine/internal/planar"
)

// IdlerType selects where (and whether) a chain idler is mounted.
type IdlerType string

const (
	IdlerNone     IdlerType = "none"
	IdlerFrame    IdlerType = "frame"
	IdlerSwingarm IdlerType = "swingarm"
)

// Valid reports whether t is one of the known idler mount types.
func (t IdlerType) Valid() bool {
	switch t {
	case IdlerNone, IdlerFrame, IdlerSwingarm:
		return true
	}
	return false
}

// Geometry is the complete, read-only input to one analysis run. It is
// serialised field-for-field into saved sessions.
type Geometry struct {
	// Frame
	BBHeight       float64 `json:"bbHeight"`
	Stack          float64 `json:"stack"`
	Reach          float64 `json:"reach"`
	HeadAngle      float64 `json:"headAngle"`
	HeadTubeLength float64 `json:"headTubeLength"`
	SeatAngle      float64 `json:"seatAngle"`
	SeatTubeLength float64 `json:"seatTubeLength"`

	// Fork
	ForkLength float64 `json:"forkLength"` // axle-to-crown along the steering axis
	ForkOffset float64 `json:"forkOffset"` // perpendicular to the steering axis
	ForkTravel float64 `json:"forkTravel"`

	// Linkage
	SwingarmLength float64 `json:"swingarmLength"`
	PivotX         float64 `json:"pivotX"`
	PivotY         float64 `json:"pivotY"`

	// Shock
	ShockFrameMountX           float64 `json:"shockFrameMountX"`
	ShockFrameMountY           float64 `json:"shockFrameMountY"`
	ShockSwingarmMountDistance float64 `json:"shockSwingarmMountDistance"` // pivot to shock eye
	ShockStroke                float64 `json:"shockStroke"`
	ShockETE                   float64 `json:"shockETE"`        // eye-to-eye at top-out
	ShockSpringRate            float64 `json:"shockSpringRate"` // N/mm

	// Drivetrain
	ChainringTeeth   int       `json:"chainringTeeth"`
	CogTeeth         int       `json:"cogTeeth"`
	IdlerTeeth       int       `json:"idlerTeeth"`
	IdlerType        IdlerType `json:"idlerType"`
	IdlerX           float64   `json:"idlerX"` // at top-out for a swingarm idler
	IdlerY           float64   `json:"idlerY"`
	ChainringOffsetX float64   `json:"chainringOffsetX"`
	ChainringOffsetY float64   `json:"chainringOffsetY"`

	// Rider
	CenterOfMassX float64 `json:"centerOfMassX"`
	CenterOfMassY float64 `json:"centerOfMassY"`

	// Wheels
	FrontWheelDiameter float64 `json:"frontWheelDiameter"`
	RearWheelDiameter  float64 `json:"rearWheelDiameter"`
}

// Default returns an enduro-style 29er that sits level at top-out.
func Default() Geometry {
	return Geometry{
		BBHeight:       330,
		Stack:          625,
		Reach:          490,
		HeadAngle:      64,
		HeadTubeLength: 110,
		SeatAngle:      77,
		SeatTubeLength: 430,

		ForkLength: 557,
		ForkOffset: 44,
		ForkTravel: 160,

		SwingarmLength: 440,
		PivotX:         20,
		PivotY:         90,

		ShockFrameMountX:           289.5,
		ShockFrameMountY:           3,
		ShockSwingarmMountDistance: 190,
		ShockStroke:                65,
		ShockETE:                   210,
		ShockSpringRate:            60,

		ChainringTeeth: 32,
		CogTeeth:       24,
		IdlerTeeth:     16,
		IdlerType:      IdlerNone,
		IdlerX:         40,
		IdlerY:         120,

		CenterOfMassX: 150,
		CenterOfMassY: 770,

		FrontWheelDiameter: 750,
		RearWheelDiameter:  750,
	}
}

// FrontWheelRadius returns half the front wheel diameter.
func (g Geometry) FrontWheelRadius() float64 { return g.FrontWheelDiameter / 2 }

// RearWheelRadius returns half the rear wheel diameter.
func (g Geometry) RearWheelRadius() float64 { return g.RearWheelDiameter / 2 }

// BottomBracket returns the bottom bracket position at top-out.
func (g Geometry) BottomBracket() planar.Point {
	return planar.Pt(0, g.BBHeight)
}

// Pivot returns the main pivot position at top-out.
func (g Geometry) Pivot() planar.Point {
	return g.BottomBracket().Add(planar.Pt(g.PivotX, g.PivotY))
}

// ShockFrameMount returns the frame-side shock mount position at top-out.
func (g Geometry) ShockFrameMount() planar.Point {
	return g.BottomBracket().Add(planar.Pt(g.ShockFrameMountX, g.ShockFrameMountY))
}

// SteeringAxis returns the unit vector pointing down the steering axis, from
// the head tube top toward the front axle.
func (g Geometry) SteeringAxis() planar.Point {
	sin, cos := math.Sincos(planar.Radians(g.HeadAngle))
	return planar.Pt(cos, -sin)
}

// HeadTubeTop returns the top of the head tube for a frame whose bottom
// bracket is at bb.
func (g Geometry) HeadTubeTop(bb planar.Point) planar.Point {
	return bb.Add(planar.Pt(g.Reach, g.Stack))
}

// HeadTubeBottom returns the fork crown for a frame whose bottom bracket is at bb.
func (g Geometry) HeadTubeBottom(bb planar.Point) planar.Point {
	return g.HeadTubeTop(bb).Add(g.SteeringAxis().Mul(g.HeadTubeLength))
}

// FrontAxle returns the front axle for a frame whose bottom bracket is at bb
// and a fork of the given axle-to-crown length. The offset is applied
// perpendicular to the steering axis, toward the front of the bike.
func (g Geometry) FrontAxle(bb planar.Point, forkLength float64) planar.Point {
	axis := g.SteeringAxis()
	offsetDir := planar.Pt(-axis.Y, axis.X)
	return g.HeadTubeBottom(bb).Add(axis.Mul(forkLength)).Add(offsetDir.Mul(g.ForkOffset))
}

// SeatTubeTop returns the top of the seat tube for a frame whose bottom
// bracket is at bb. The seat angle is measured from horizontal, behind the BB.
func (g Geometry) SeatTubeTop(bb planar.Point) planar.Point {
	sin, cos := math.Sincos(planar.Radians(g.SeatAngle))
	return bb.Add(planar.Pt(-cos, sin).Mul(g.SeatTubeLength))
}

// ChainringCenter returns the chainring centre for a frame whose bottom
// bracket is at bb.
func (g Geometry) ChainringCenter(bb planar.Point) planar.Point {
	return bb.Add(planar.Pt(g.ChainringOffsetX, g.ChainringOffsetY))
}

// FrameIdler returns the idler position relative to a frame whose bottom
// bracket is at bb. For a swingarm idler this is its top-out position only.
func (g Geometry) FrameIdler(bb planar.Point) planar.Point {
	return bb.Add(planar.Pt(g.IdlerX, g.IdlerY))
}

// CenterOfMass returns the centre of mass for a frame whose bottom bracket is at bb.
func (g Geometry) CenterOfMass(bb planar.Point) planar.Point {
	return bb.Add(planar.Pt(g.CenterOfMassX, g.CenterOfMassY))
}

// ChainringRadius, CogRadius and IdlerRadius return the sprocket pitch radii.
func (g Geometry) ChainringRadius() float64 { return planar.SprocketRadius(g.ChainringTeeth) }
func (g Geometry) CogRadius() float64       { return planar.SprocketRadius(g.CogTeeth) }
func (g Geometry) IdlerRadius() float64     { return planar.SprocketRadius(g.IdlerTeeth) }
