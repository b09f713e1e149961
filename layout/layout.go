// Package layout persists habitat layouts as versioned JSON documents.
//
// The document shape is stable for interop:
//
//	{ "modules": [ {"id":1, "type":"airlock", "x":0, "y":0}, ... ],
//	  "timestamp": "2026-01-02T15:04:05Z", "version": "1.0" }
//
// Restoring is all-or-nothing: a malformed document aborts before any
// live state is touched.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lokito-h/outpost/habitat"
)

// ErrMalformed marks a persisted document that fails validation.
var ErrMalformed = errors.New("malformed layout document")

// ModuleRecord is one persisted placement.
type ModuleRecord struct {
	ID   int     `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Document is the persisted layout shape.
type Document struct {
	Modules   []ModuleRecord `json:"modules"`
	Timestamp string         `json:"timestamp"`
	Version   string         `json:"version"`
}

// FromState captures the current placements into a document.
func FromState(st *habitat.State, version string, now time.Time) *Document {
	mods := st.Modules()
	doc := &Document{
		Modules:   make([]ModuleRecord, len(mods)),
		Timestamp: now.UTC().Format(time.RFC3339),
		Version:   version,
	}
	for i, m := range mods {
		doc.Modules[i] = ModuleRecord{ID: m.ID, Type: m.TypeID, X: m.X, Y: m.Y}
	}
	return doc
}

// Validate checks the document's structural invariants: positive unique
// ids and non-empty type identifiers. Unknown type values are fine; they
// are preserved through restore so a future catalog can pick them up.
func (d *Document) Validate() error {
	if d.Version == "" {
		return fmt.Errorf("%w: missing version", ErrMalformed)
	}
	seen := make(map[int]bool, len(d.Modules))
	for i, m := range d.Modules {
		if m.ID <= 0 {
			return fmt.Errorf("%w: module %d has non-positive id %d", ErrMalformed, i, m.ID)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: duplicate module id %d", ErrMalformed, m.ID)
		}
		seen[m.ID] = true
		if m.Type == "" {
			return fmt.Errorf("%w: module %d has empty type", ErrMalformed, m.ID)
		}
	}
	return nil
}

// Decode parses and validates a document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Restore replaces the habitat state with the document's placements.
// The document is validated fully before the state mutates, so a failed
// restore leaves the prior state intact.
func (d *Document) Restore(st *habitat.State) (habitat.Change, error) {
	if err := d.Validate(); err != nil {
		return habitat.Change{}, err
	}
	mods := make([]habitat.PlacedModule, len(d.Modules))
	for i, m := range d.Modules {
		mods[i] = habitat.PlacedModule{ID: m.ID, TypeID: m.Type, X: m.X, Y: m.Y}
	}
	ch, err := st.Restore(mods)
	if err != nil {
		return habitat.Change{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ch, nil
}

// Save writes the document to disk, creating the directory if needed.
func Save(doc *Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create layout dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// LoadFile reads and decodes a document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Decode(data)
}
