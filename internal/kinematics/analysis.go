package kinematics

import (
	"math"

	"go.uber.org/zap"

	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

const (
	// StepSize is the shock-stroke sampling step, in millimetres.
	StepSize = 0.5

	// MaxSampleCount bounds the sweep. A stroke needing more samples is
	// treated like an infinite one.
	MaxSampleCount = 1 << 20
)

// SampleCount returns the number of samples for a shock stroke:
// floor(stroke/StepSize)+1. The zero-stroke sample is always included; the
// last sample is the largest step multiple not exceeding the stroke.
// Non-positive, NaN, infinite and oversized strokes give a single sample.
func SampleCount(stroke float64) int {
	if !(stroke > 0) || math.IsInf(stroke, 0) {
		return 1
	}
	steps := math.Floor(stroke / StepSize)
	if steps >= MaxSampleCount {
		Logger().Warn("shock stroke too long to sample, using top-out only",
			zap.Float64("stroke", stroke),
			zap.Int("maxSamples", MaxSampleCount))
		return 1
	}
	return int(steps) + 1
}

// Analyze runs the full kinematic analysis of g. It never fails: infeasible
// samples come back as degenerate states.
func Analyze(g geometry.Geometry) Results {
	tri := SolveRigidTriangle(g)

	n := SampleCount(g.ShockStroke)
	provisional := make([]State, n)
	for i := range provisional {
		provisional[i] = SampleStroke(g, tri, float64(i)*StepSize)
	}

	states := DeriveMetrics(g, provisional)

	res := Results{
		States:        states,
		AxlePath:      make([]planar.Point, n),
		FrontAxlePath: make([]planar.Point, n),
	}
	degenerate := 0
	for i, s := range states {
		res.AxlePath[i] = s.RearAxle.Sub(s.BottomBracket)
		res.FrontAxlePath[i] = s.FrontAxle.Sub(s.BottomBracket)
		if s.Degenerate {
			degenerate++
		}
	}

	Logger().Debug("analysis complete",
		zap.Int("samples", n),
		zap.Int("degenerate", degenerate),
		zap.Bool("fallbackTriangle", tri.Fallback))
	return res
}
