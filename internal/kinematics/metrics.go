package kinematics

import (
	"go.uber.org/zap"

	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

// DeriveMetrics runs the second pass over the ordered first-pass states and
// returns the completed sequence. The input slice is not modified.
func DeriveMetrics(g geometry.Geometry, provisional []State) []State {
	states := make([]State, len(provisional))
	copy(states, provisional)

	// Fork compression and the refined front axle fix the final pitch, which
	// every later rotation depends on.
	for i := range states {
		s := &states[i]
		s.ForkCompression = forkCompression(g, s.Stroke)
		if s.Degenerate {
			continue
		}
		s.FrontAxle = g.FrontAxle(s.BottomBracket, g.ForkLength-s.ForkCompression)
		s.PitchAngle = pitchAngle(s.RearAxle, s.FrontAxle, g.RearWheelRadius(), g.FrontWheelRadius())
	}

	lr := leverageRatios(states)
	for i := range states {
		s := &states[i]
		if s.Degenerate {
			continue
		}
		rotate := StateRotation(*s)
		s.LeverageRatio = lr[i]
		s.WheelRate = wheelRate(g.ShockSpringRate, lr[i])
		s.AntiSquat = antiSquat(g, *s, rotate)
		s.AntiRise = antiRise(g, *s, rotate)
		s.Trail = trail(g, *s, rotate)
		s.ChainLength = chainLength(g, *s)
	}

	applyChainGrowth(g, states)
	return states
}

// forkCompression is proportional to the fraction of shock stroke used.
func forkCompression(g geometry.Geometry, stroke float64) float64 {
	if g.ShockStroke <= 0 {
		return 0
	}
	return stroke / g.ShockStroke * g.ForkTravel
}

// leverageRatios differentiates wheel travel against shock stroke: central
// differences inside, one-sided at the ends. Degenerate samples are skipped as
// neighbours and get a ratio of 0, as does a run with a single usable sample.
func leverageRatios(states []State) []float64 {
	lr := make([]float64, len(states))
	usable := func(i int) bool {
		return i >= 0 && i < len(states) && !states[i].Degenerate
	}
	for i := range states {
		if !usable(i) {
			continue
		}
		lo, hi := i, i
		if usable(i - 1) {
			lo = i - 1
		}
		if usable(i + 1) {
			hi = i + 1
		}
		dStroke := states[hi].Stroke - states[lo].Stroke
		if lo == hi || dStroke == 0 {
			continue
		}
		lr[i] = (states[hi].Travel - states[lo].Travel) / dStroke
	}
	return lr
}

// wheelRate converts the shock spring rate to a rate at the wheel. A zero
// leverage ratio has no meaningful wheel rate and yields 0.
func wheelRate(springRate, leverageRatio float64) float64 {
	if leverageRatio == 0 {
		return 0
	}
	return springRate / (leverageRatio * leverageRatio)
}

// chainForceLine returns two points on the chain span that pulls on the
// swingarm: chainring→cog without an idler, idler→cog with a frame idler and
// chainring→idler with a swingarm idler.
func chainForceLine(g geometry.Geometry, s State) (planar.Point, planar.Point) {
	ring := g.ChainringCenter(s.BottomBracket)
	idler, hasIdler := IdlerPosition(s, g)
	switch {
	case !hasIdler:
		return planar.TangentPoints(ring, g.ChainringRadius(), s.RearAxle, g.CogRadius())
	case g.IdlerType == geometry.IdlerSwingarm:
		return planar.TangentPoints(ring, g.ChainringRadius(), idler, g.IdlerRadius())
	default:
		return planar.TangentPoints(idler, g.IdlerRadius(), s.RearAxle, g.CogRadius())
	}
}

// antiSquat projects the line from the rear contact patch through the instant
// force centre (chain line ∩ pivot–axle line) onto the vertical through the
// front axle, and returns its height as a percentage of the centre of mass
// height. All of it happens in the pitch-corrected frame.
func antiSquat(g geometry.Geometry, s State, rotate Rotation) float64 {
	a, b := chainForceLine(g, s)
	ifc, ok := planar.LineIntersection(rotate(a), rotate(b), rotate(s.Pivot), rotate(s.RearAxle))
	if !ok {
		Logger().Debug("chain line parallel to swingarm", zap.Float64("stroke", s.Stroke))
		return 0
	}
	return projectedPercent(g, s, rotate, ifc)
}

// antiRise is antiSquat with the braking force path, which runs from the rear
// contact patch through the main pivot.
func antiRise(g geometry.Geometry, s State, rotate Rotation) float64 {
	return projectedPercent(g, s, rotate, rotate(s.Pivot))
}

func projectedPercent(g geometry.Geometry, s State, rotate Rotation, through planar.Point) float64 {
	com := RotatedCenterOfMass(s, g, rotate)
	if com.Y <= 0 {
		Logger().Debug("centre of mass at or below ground", zap.Float64("stroke", s.Stroke))
		return 0
	}
	axle := rotate(s.RearAxle)
	contact := planar.Pt(axle.X, axle.Y-g.RearWheelRadius())
	h, ok := planar.YAtX(contact, through, rotate(s.FrontAxle).X)
	if !ok {
		Logger().Debug("force line vertical", zap.Float64("stroke", s.Stroke))
		return 0
	}
	return h / com.Y * 100
}

// trail is the perpendicular distance from the front contact patch to the
// steering axis, positive when the contact patch trails the axis.
func trail(g geometry.Geometry, s State, rotate Rotation) float64 {
	front := rotate(s.FrontAxle)
	contact := planar.Pt(front.X, front.Y-g.FrontWheelRadius())
	top := rotate(g.HeadTubeTop(s.BottomBracket))
	bottom := rotate(g.HeadTubeBottom(s.BottomBracket))
	return -planar.PointLineDistance(contact, top, bottom)
}

// chainLength is the closed chain loop around chainring and cog. With an idler
// the path is half of the chainring–idler loop plus half of the idler–cog loop.
func chainLength(g geometry.Geometry, s State) float64 {
	ring := g.ChainringCenter(s.BottomBracket)
	idler, ok := IdlerPosition(s, g)
	if !ok {
		return planar.ChainLength(ring, s.RearAxle, g.ChainringRadius(), g.CogRadius())
	}
	return (planar.ChainLength(ring, idler, g.ChainringRadius(), g.IdlerRadius()) +
		planar.ChainLength(idler, s.RearAxle, g.IdlerRadius(), g.CogRadius())) / 2
}

// applyChainGrowth fills chain growth, pedal kickback and crank angle relative
// to the first solved sample.
func applyChainGrowth(g geometry.Geometry, states []State) {
	ringRadius := g.ChainringRadius()
	var base, prev float64
	seen := false
	for i := range states {
		s := &states[i]
		if s.Degenerate {
			continue
		}
		if !seen {
			base, prev, seen = s.ChainLength, s.ChainLength, true
		}
		s.ChainGrowth = s.ChainLength - base
		s.InstantChainGrowth = s.ChainLength - prev
		prev = s.ChainLength
		if ringRadius > 0 {
			s.PedalKickback = planar.Degrees(s.ChainGrowth / ringRadius)
		}
		s.CrankAngle = s.PitchAngle - s.PedalKickback
	}
}
