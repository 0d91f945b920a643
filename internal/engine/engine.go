// Package engine is the JSON boundary shared by the CLI and WASM targets.
//
// An analysis run has two passes, both inside kinematics.Analyze:
//
//  1. Geometry pass - every stroke sample places the rear axle, frame and front
//     axle and levels the bike on flat ground with the fork uncompressed.
//
//  2. Metric pass - the fork is compressed in proportion to the shock, the
//     bike is re-levelled and the per-sample metrics (leverage ratio, wheel
//     rate, anti-squat, anti-rise, trail, chain growth) are derived.
//
// The run is then summarised and stamped with a fresh ID.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cxd309/suspension-engine/internal/kinematics"
	"github.com/cxd309/suspension-engine/internal/linkage"
	"github.com/cxd309/suspension-engine/internal/session"
)

// Run analyses the geometry of s and returns its report.
func Run(s session.Session) Report {
	res := kinematics.Analyze(s.Geometry)
	return Report{
		ID:      uuid.New(),
		Name:    s.Name,
		Summary: linkage.Summarize(res),
		Results: res,
	}
}

// RunJSON is the primary entry point for the CLI and WASM targets.
// It accepts a JSON-encoded session, runs the analysis, and returns a
// JSON-encoded Report.
func RunJSON(jsonInput string) (string, error) {
	s, err := session.Parse([]byte(jsonInput))
	if err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	out, err := json.Marshal(Run(s))
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
