package engine

import (
	"github.com/google/uuid"

	"github.com/cxd309/suspension-engine/internal/kinematics"
	"github.com/cxd309/suspension-engine/internal/linkage"
)

// Report is the JSON-serialisable output of one analysis run.
type Report struct {
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	Summary linkage.Summary    `json:"summary"`
	Results kinematics.Results `json:"results"`
}
