// Package session reads and writes saved geometry sessions.
//
// A session is the JSON document {"name": ..., "geometry": {...}} where the
// geometry object is the geometry.Geometry record serialised field-for-field.
// Loading a saved session and analysing it reproduces the original analysis
// exactly.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cxd309/suspension-engine/internal/geometry"
)

// ErrMissingGeometry is returned when a document has no geometry object.
var ErrMissingGeometry = errors.New("session has no geometry")

// Session is a named, saved geometry.
type Session struct {
	Name     string            `json:"name"`
	Geometry geometry.Geometry `json:"geometry"`
}

// sessionJSON keeps the geometry as a pointer so a missing object can be told
// apart from an all-zero one.
type sessionJSON struct {
	Name     string             `json:"name"`
	Geometry *geometry.Geometry `json:"geometry"`
}

// Parse decodes a session document.
func Parse(data []byte) (Session, error) {
	var aux sessionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return Session{}, fmt.Errorf("decoding session: %w", err)
	}
	if aux.Geometry == nil {
		return Session{}, fmt.Errorf("session %q: %w", aux.Name, ErrMissingGeometry)
	}
	s := Session{Name: aux.Name, Geometry: *aux.Geometry}
	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Load reads and decodes a session document from r.
func Load(r io.Reader) (Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Session{}, fmt.Errorf("reading session: %w", err)
	}
	return Parse(data)
}

// Save writes s to w as indented JSON.
func Save(w io.Writer, s Session) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding session %q: %w", s.Name, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing session %q: %w", s.Name, err)
	}
	return nil
}

// Validate checks the structural fields the solver cannot default. Numeric
// ranges are not checked: infeasible geometry is the solver's business.
func (s Session) Validate() error {
	// Older files omit the idler type.
	if s.Geometry.IdlerType == "" {
		return nil
	}
	if !s.Geometry.IdlerType.Valid() {
		return fmt.Errorf("session %q: unknown idler type %q", s.Name, s.Geometry.IdlerType)
	}
	return nil
}
