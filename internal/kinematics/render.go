package kinematics

import (
	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

// Rotation maps a world-space point into the pitch-corrected frame.
type Rotation func(planar.Point) planar.Point

// PitchRotation returns the rotation that levels a frame pitched by pitchDeg,
// turning points by -pitchDeg about center (the rear axle of the state being
// drawn). After rotation both wheels touch the ground.
func PitchRotation(center planar.Point, pitchDeg float64) Rotation {
	angle := -planar.Radians(pitchDeg)
	return func(p planar.Point) planar.Point {
		return planar.RotateAbout(p, center, angle)
	}
}

// StateRotation is PitchRotation for a state's own rear axle and pitch.
func StateRotation(s State) Rotation {
	return PitchRotation(s.RearAxle, s.PitchAngle)
}

// RotatedCenterOfMass returns the rider/bike centre of mass of s in the frame
// produced by rotate.
func RotatedCenterOfMass(s State, g geometry.Geometry, rotate Rotation) planar.Point {
	return rotate(g.CenterOfMass(s.BottomBracket))
}

// Outline is the set of frame and linkage points a renderer draws for one
// state, already pitch-corrected.
type Outline struct {
	BottomBracket  planar.Point  `json:"bottomBracket"`
	HeadTubeTop    planar.Point  `json:"headTubeTop"`
	HeadTubeBottom planar.Point  `json:"headTubeBottom"`
	SeatTubeTop    planar.Point  `json:"seatTubeTop"`
	Pivot          planar.Point  `json:"pivot"`
	ShockMount     planar.Point  `json:"shockMount"`
	ShockEye       planar.Point  `json:"shockEye"`
	RearAxle       planar.Point  `json:"rearAxle"`
	FrontAxle      planar.Point  `json:"frontAxle"`
	Chainring      planar.Point  `json:"chainring"`
	CenterOfMass   planar.Point  `json:"centerOfMass"`
	Idler          *planar.Point `json:"idler,omitempty"`
}

// FrameOutline returns the pitch-corrected drawing points of s.
func FrameOutline(s State, g geometry.Geometry) Outline {
	rotate := StateRotation(s)
	o := Outline{
		BottomBracket:  rotate(s.BottomBracket),
		HeadTubeTop:    rotate(g.HeadTubeTop(s.BottomBracket)),
		HeadTubeBottom: rotate(g.HeadTubeBottom(s.BottomBracket)),
		SeatTubeTop:    rotate(g.SeatTubeTop(s.BottomBracket)),
		Pivot:          rotate(s.Pivot),
		ShockMount:     rotate(s.ShockMount),
		ShockEye:       rotate(s.ShockEye),
		RearAxle:       rotate(s.RearAxle),
		FrontAxle:      rotate(s.FrontAxle),
		Chainring:      rotate(g.ChainringCenter(s.BottomBracket)),
		CenterOfMass:   RotatedCenterOfMass(s, g, rotate),
	}
	if idler, ok := IdlerPosition(s, g); ok {
		p := rotate(idler)
		o.Idler = &p
	}
	return o
}
