package habitat

import (
	"fmt"

	"github.com/lokito-h/outpost/catalog"
)

// Reason enumerates placement failure causes.
type Reason string

const (
	ReasonUnknownType Reason = "unknown-module-type"
	ReasonOutOfBounds Reason = "out-of-bounds"
	ReasonOverlap     Reason = "overlap"
)

// ValidationError describes why a placement was rejected. It is a normal
// recoverable outcome, not a fault: the caller decides how to surface it.
type ValidationError struct {
	Reason Reason
	TypeID string
	With   int // Overlapping module id, when Reason is ReasonOverlap
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonUnknownType:
		return fmt.Sprintf("unknown module type %q", e.TypeID)
	case ReasonOutOfBounds:
		return fmt.Sprintf("module %q outside surface bounds", e.TypeID)
	case ReasonOverlap:
		return fmt.Sprintf("module %q overlaps module %d", e.TypeID, e.With)
	}
	return string(e.Reason)
}

// Validate decides whether a module of the given type may occupy (x, y).
//
// The check is pure and order-independent: validity depends only on the
// final geometric configuration, never on insertion history. Existing
// modules whose type is missing from the catalog occupy no footprint.
// Returns nil when the placement is admissible.
func Validate(cat *catalog.Catalog, typeID string, x, y float64, existing []PlacedModule, bounds Bounds) *ValidationError {
	profile := cat.Lookup(typeID)
	if profile == nil {
		return &ValidationError{Reason: ReasonUnknownType, TypeID: typeID}
	}

	candidate := Rect{X: x, Y: y, W: profile.Width, H: profile.Height}
	if !bounds.FitsWithin(candidate) {
		return &ValidationError{Reason: ReasonOutOfBounds, TypeID: typeID}
	}

	for i := range existing {
		other, ok := existing[i].Footprint(cat)
		if !ok {
			continue
		}
		if candidate.Overlaps(other) {
			return &ValidationError{Reason: ReasonOverlap, TypeID: typeID, With: existing[i].ID}
		}
	}

	return nil
}
