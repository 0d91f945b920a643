package kinematics

import (
	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/planar"
)

// IdlerMount resolves where a chain idler sits for a solved state.
//
// Adding a mount variant only requires implementing IdlerMount and registering
// it in MountFor; the metrics pass never needs to change.
type IdlerMount interface {
	// Position returns the idler centre for s, or false when there is no idler.
	Position(s State, g geometry.Geometry) (planar.Point, bool)
}

// MountFor returns the IdlerMount for an idler type. Unknown types behave as
// IdlerNone.
func MountFor(t geometry.IdlerType) IdlerMount {
	switch t {
	case geometry.IdlerFrame:
		return frameIdler{}
	case geometry.IdlerSwingarm:
		return swingarmIdler{}
	default:
		return noIdler{}
	}
}

// IdlerPosition returns the idler's world position for s, honouring the
// geometry's idler type.
func IdlerPosition(s State, g geometry.Geometry) (planar.Point, bool) {
	if s.Degenerate {
		return planar.Point{}, false
	}
	return MountFor(g.IdlerType).Position(s, g)
}

type noIdler struct{}

func (noIdler) Position(State, geometry.Geometry) (planar.Point, bool) {
	return planar.Point{}, false
}

// frameIdler is fixed relative to the bottom bracket.
type frameIdler struct{}

func (frameIdler) Position(s State, g geometry.Geometry) (planar.Point, bool) {
	return g.FrameIdler(s.BottomBracket), true
}

// swingarmIdler moves rigidly with the swingarm. Its configured offset is the
// top-out position, carried along the pivot→axle line as the swingarm rotates.
type swingarmIdler struct{}

func (swingarmIdler) Position(s State, g geometry.Geometry) (planar.Point, bool) {
	axle0, ok := topOutAxle(g)
	if !ok {
		return planar.Point{}, false
	}
	return planar.TransformByReferenceLine(
		g.Pivot(), axle0, g.FrameIdler(g.BottomBracket()),
		s.Pivot, s.RearAxle,
	), true
}
