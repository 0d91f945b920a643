// Package linkage condenses a solved stroke into linkage-level figures and
// exports it in formats other suspension tools read.
package linkage

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/suspension-engine/internal/kinematics"
)

// SagFraction is the share of maximum wheel travel reported as the sag point.
const SagFraction = 0.3

// Summary holds whole-stroke figures of an analysis.
type Summary struct {
	Samples    int `json:"samples"`
	Degenerate int `json:"degenerate"`

	MaxStroke      float64 `json:"maxStrokeMM"`
	MaxWheelTravel float64 `json:"maxWheelTravelMM"`

	LeverageStart float64 `json:"leverageStart"`
	LeverageEnd   float64 `json:"leverageEnd"`
	LeverageMin   float64 `json:"leverageMin"`
	LeverageMax   float64 `json:"leverageMax"`
	LeverageMean  float64 `json:"leverageMean"`
	// Progression is the drop in leverage ratio over the stroke, in percent of
	// the starting ratio.
	Progression float64 `json:"progressionPercent"`

	SagTravel     float64 `json:"sagTravelMM"`
	AntiSquatSag  float64 `json:"antiSquatAtSag"`
	AntiRiseSag   float64 `json:"antiRiseAtSag"`
	LeverageSag   float64 `json:"leverageAtSag"`
	ChainGrowth   float64 `json:"totalChainGrowthMM"`
	PedalKickback float64 `json:"totalPedalKickbackDegrees"`

	// TravelFit holds the coefficients c0..c3 of the least-squares cubic
	// wheelTravel(stroke) = c0 + c1·s + c2·s² + c3·s³.
	TravelFit Polynomial `json:"travelFit,omitempty"`
}

// Summarize computes the summary of res, ignoring degenerate states.
func Summarize(res kinematics.Results) Summary {
	sum := Summary{Samples: len(res.States)}
	usable := solved(res.States)
	sum.Degenerate = sum.Samples - len(usable)
	if len(usable) == 0 {
		return sum
	}

	strokes := make([]float64, len(usable))
	travel := make([]float64, len(usable))
	lr := make([]float64, len(usable))
	for i, s := range usable {
		strokes[i], travel[i], lr[i] = s.Stroke, s.Travel, s.LeverageRatio
	}

	first, last := usable[0], usable[len(usable)-1]
	sum.MaxStroke = floats.Max(strokes)
	sum.MaxWheelTravel = floats.Max(travel)
	sum.LeverageStart = first.LeverageRatio
	sum.LeverageEnd = last.LeverageRatio
	sum.LeverageMin = floats.Min(lr)
	sum.LeverageMax = floats.Max(lr)
	sum.LeverageMean = floats.Sum(lr) / float64(len(lr))
	if first.LeverageRatio != 0 {
		sum.Progression = (first.LeverageRatio - last.LeverageRatio) / first.LeverageRatio * 100
	}
	sum.ChainGrowth = last.ChainGrowth
	sum.PedalKickback = last.PedalKickback

	sag := sagState(usable, SagFraction*sum.MaxWheelTravel)
	sum.SagTravel = sag.Travel
	sum.AntiSquatSag = sag.AntiSquat
	sum.AntiRiseSag = sag.AntiRise
	sum.LeverageSag = sag.LeverageRatio

	if fit, err := FitPolynomial(strokes, travel, 3); err == nil {
		sum.TravelFit = fit
	}
	return sum
}

func solved(states []kinematics.State) []kinematics.State {
	out := make([]kinematics.State, 0, len(states))
	for _, s := range states {
		if !s.Degenerate {
			out = append(out, s)
		}
	}
	return out
}

// sagState returns the first state whose travel reaches target.
func sagState(states []kinematics.State, target float64) kinematics.State {
	for _, s := range states {
		if s.Travel >= target {
			return s
		}
	}
	return states[len(states)-1]
}

// Polynomial holds coefficients in increasing order of power.
type Polynomial []float64

// At evaluates p at x.
func (p Polynomial) At(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// FitPolynomial returns the least-squares polynomial of the given degree
// through (xs, ys). The degree is reduced when there are too few points.
func FitPolynomial(xs, ys []float64, degree int) (Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("fitting polynomial: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("fitting polynomial: no points")
	}
	degree = min(degree, len(xs)-1)

	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(len(ys), append([]float64(nil), ys...))); err != nil {
		return nil, fmt.Errorf("fitting polynomial of degree %d: %w", degree, err)
	}
	return Polynomial(mat.Col(nil, 0, &c)), nil
}
