// Package kinematics solves a single-pivot rear suspension through its shock
// stroke.
//
// The analysis samples the stroke at a fixed step and runs two passes:
//
//  1. Stroke pass - every sample re-solves the rigid swingarm triangle for the
//     current shock length, locks the rear wheel to the ground and records the
//     pivot, shock eye, axle and BB positions, wheel travel and pitch.
//
//  2. Metrics pass - the ordered samples are completed with quantities that
//     need neighbours or the whole frame: fork compression and front axle,
//     leverage ratio, wheel rate, anti-squat, anti-rise, trail and chain growth.
//
// Infeasible geometry never aborts a run. A sample that cannot be solved is
// returned as a degenerate State with zero metrics, and a linkage that cannot be
// solved at top-out falls back to a nominal RigidTriangle.
package kinematics

import "github.com/cxd309/suspension-engine/internal/planar"

// State is the solved suspension at one shock-stroke sample. Positions are in
// world coordinates with the rear wheel resting on the ground (y = 0) and the
// frame not yet rotated by PitchAngle.
type State struct {
	Stroke      float64 `json:"strokeMM"`
	ShockLength float64 `json:"shockLengthMM"`

	RearAxle      planar.Point `json:"rearAxle"`
	BottomBracket planar.Point `json:"bottomBracket"`
	Pivot         planar.Point `json:"pivot"`
	ShockEye      planar.Point `json:"shockEye"`
	ShockMount    planar.Point `json:"shockMount"`
	FrontAxle     planar.Point `json:"frontAxle"`

	Travel          float64 `json:"travelMM"`
	PitchAngle      float64 `json:"pitchAngleDegrees"`
	ForkCompression float64 `json:"forkCompressionMM"`

	LeverageRatio      float64 `json:"leverageRatio"`
	WheelRate          float64 `json:"wheelRate"`
	AntiSquat          float64 `json:"antiSquat"` // percent
	AntiRise           float64 `json:"antiRise"`  // percent
	Trail              float64 `json:"trailMM"`
	ChainLength        float64 `json:"chainLengthMM"`
	ChainGrowth        float64 `json:"chainGrowthMM"`        // since top-out
	InstantChainGrowth float64 `json:"instantChainGrowthMM"` // since the previous sample
	PedalKickback      float64 `json:"pedalKickbackDegrees"`
	CrankAngle         float64 `json:"crankAngleDegrees"`

	// Degenerate marks a sample the solver could not place; its metrics are zero.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Results is the output of one analysis run. States are ordered by strictly
// increasing stroke; AxlePath and FrontAxlePath hold the rear and front axle of
// each state relative to that state's bottom bracket.
type Results struct {
	States        []State        `json:"states"`
	AxlePath      []planar.Point `json:"axlePath"`
	FrontAxlePath []planar.Point `json:"frontAxlePath"`
}
