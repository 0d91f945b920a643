package linkage

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/interp"

	"github.com/cxd309/suspension-engine/internal/kinematics"
)

// WriteSST writes the leverage curve in the Sufni suspension telemetry linkage
// format: one "wheelTravel,leverageRatio" line per millimetre of wheel travel,
// starting at zero. Shock travel is implied by the reader as Σ 1/leverage.
func WriteSST(w io.Writer, res kinematics.Results) error {
	var xs, ys []float64
	for _, s := range solved(res.States) {
		// The interpolator needs strictly increasing travel.
		if len(xs) > 0 && s.Travel <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, s.Travel)
		ys = append(ys, s.LeverageRatio)
	}
	if len(xs) < 2 {
		return fmt.Errorf("writing SST linkage: need at least two solved samples, have %d", len(xs))
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return fmt.Errorf("writing SST linkage: %w", err)
	}
	for travel := 0.0; travel <= math.Floor(xs[len(xs)-1]); travel++ {
		if _, err := fmt.Fprintf(w, "%.4f,%.4f\n", travel, pl.Predict(travel)); err != nil {
			return fmt.Errorf("writing SST linkage: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{
	"stroke_mm", "shock_length_mm", "travel_mm", "leverage_ratio", "wheel_rate",
	"anti_squat_pct", "anti_rise_pct", "pitch_deg", "trail_mm", "fork_compression_mm",
	"chain_growth_mm", "pedal_kickback_deg", "axle_x_mm", "axle_y_mm", "degenerate",
}

// WriteCSV writes one row per state, with the rear axle path relative to the
// bottom bracket.
func WriteCSV(w io.Writer, res kinematics.Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for i, s := range res.States {
		row := []string{
			f(s.Stroke), f(s.ShockLength), f(s.Travel), f(s.LeverageRatio), f(s.WheelRate),
			f(s.AntiSquat), f(s.AntiRise), f(s.PitchAngle), f(s.Trail), f(s.ForkCompression),
			f(s.ChainGrowth), f(s.PedalKickback), f(res.AxlePath[i].X), f(res.AxlePath[i].Y),
			strconv.FormatBool(s.Degenerate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
