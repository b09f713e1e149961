// Package habitat holds the placed-module state and its placement rules.
//
// State is the single mutable entity of the editor. All mutation happens
// on one goroutine (the editor loop); there is no internal locking.
package habitat

import (
	"fmt"

	"github.com/lokito-h/outpost/catalog"
)

// PlacedModule is one module instance on the surface. Width and height
// come from its catalog profile, never stored here, so they cannot drift.
type PlacedModule struct {
	ID     int     `json:"id"`
	TypeID string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Footprint returns the surface rectangle this module occupies.
// Returns false when the type is not in the catalog.
func (m PlacedModule) Footprint(cat *catalog.Catalog) (Rect, bool) {
	p := cat.Lookup(m.TypeID)
	if p == nil {
		return Rect{}, false
	}
	return Rect{X: m.X, Y: m.Y, W: p.Width, H: p.Height}, true
}

// Change reports what a mutation did, so a rendering layer can react
// without the core knowing about presentation.
type Change struct {
	Added   []int
	Removed []int
	Moved   []int
}

// Empty reports whether the change touched nothing.
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Moved) == 0
}

// State is the ordered collection of placed modules. Insertion order is
// the visual z-order. The next-id counter is strictly greater than every
// id ever held in this state's lineage, so ids are never reused.
type State struct {
	cat     *catalog.Catalog
	modules []PlacedModule
	nextID  int
}

// NewState creates an empty habitat over the given catalog.
func NewState(cat *catalog.Catalog) *State {
	return &State{cat: cat, nextID: 1}
}

// Catalog returns the module catalog this state resolves types against.
func (s *State) Catalog() *catalog.Catalog { return s.cat }

// Len returns the number of placed modules.
func (s *State) Len() int { return len(s.modules) }

// NextID returns the id the next placed module will receive.
func (s *State) NextID() int { return s.nextID }

// Modules returns a copy of the placed modules in z-order.
func (s *State) Modules() []PlacedModule {
	out := make([]PlacedModule, len(s.modules))
	copy(out, s.modules)
	return out
}

// ByID returns the module with the given id.
func (s *State) ByID(id int) (PlacedModule, bool) {
	for i := range s.modules {
		if s.modules[i].ID == id {
			return s.modules[i], true
		}
	}
	return PlacedModule{}, false
}

// ModuleAt returns the topmost module whose footprint contains (x, y).
func (s *State) ModuleAt(x, y float64) (PlacedModule, bool) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		r, ok := s.modules[i].Footprint(s.cat)
		if ok && r.Contains(x, y) {
			return s.modules[i], true
		}
	}
	return PlacedModule{}, false
}

// CanPlace validates a candidate placement without mutating anything.
// Returns nil when admissible.
func (s *State) CanPlace(typeID string, x, y float64, bounds Bounds) *ValidationError {
	return Validate(s.cat, typeID, x, y, s.modules, bounds)
}

// Place validates and adds a new module. On success the module receives
// the next id and goes to the top of the z-order.
func (s *State) Place(typeID string, x, y float64, bounds Bounds) (PlacedModule, Change, error) {
	if err := s.CanPlace(typeID, x, y, bounds); err != nil {
		return PlacedModule{}, Change{}, err
	}
	m := PlacedModule{ID: s.nextID, TypeID: typeID, X: x, Y: y}
	s.nextID++
	s.modules = append(s.modules, m)
	return m, Change{Added: []int{m.ID}}, nil
}

// CanMove validates repositioning an existing module, excluding the
// module itself from the overlap check. Returns nil when admissible.
// An unknown id is vacuously admissible; Move treats it as a no-op.
func (s *State) CanMove(id int, x, y float64, bounds Bounds) *ValidationError {
	m, ok := s.ByID(id)
	if !ok {
		return nil
	}
	others := make([]PlacedModule, 0, len(s.modules)-1)
	for i := range s.modules {
		if s.modules[i].ID != id {
			others = append(others, s.modules[i])
		}
	}
	return Validate(s.cat, m.TypeID, x, y, others, bounds)
}

// Move repositions an existing module. The stored position is untouched
// until validation passes, so a rejected move leaves the module exactly
// where it was.
func (s *State) Move(id int, x, y float64, bounds Bounds) (Change, error) {
	if err := s.CanMove(id, x, y, bounds); err != nil {
		return Change{}, err
	}
	for i := range s.modules {
		if s.modules[i].ID == id {
			s.modules[i].X = x
			s.modules[i].Y = y
			return Change{Moved: []int{id}}, nil
		}
	}
	return Change{}, nil
}

// Remove deletes the module with the given id. Removing an unknown id is
// a no-op. The id is never handed out again.
func (s *State) Remove(id int) (Change, bool) {
	for i := range s.modules {
		if s.modules[i].ID == id {
			s.modules = append(s.modules[:i], s.modules[i+1:]...)
			return Change{Removed: []int{id}}, true
		}
	}
	return Change{}, false
}

// Clear removes every placed module. The next-id counter keeps counting.
func (s *State) Clear() Change {
	removed := make([]int, len(s.modules))
	for i := range s.modules {
		removed[i] = s.modules[i].ID
	}
	s.modules = s.modules[:0]
	return Change{Removed: removed}
}

// Restore replaces the module list with restored placements. Existing
// placements are trusted: no bounds or overlap validation runs, and
// modules with types missing from the catalog are kept positionally.
// Ids must be positive and unique; the next-id counter is reseeded to
// max(id)+1, or 1 when the list is empty. On error the prior state is
// left intact.
func (s *State) Restore(modules []PlacedModule) (Change, error) {
	maxID := 0
	seen := make(map[int]bool, len(modules))
	for _, m := range modules {
		if m.ID <= 0 {
			return Change{}, fmt.Errorf("restore: module id %d is not positive", m.ID)
		}
		if seen[m.ID] {
			return Change{}, fmt.Errorf("restore: duplicate module id %d", m.ID)
		}
		seen[m.ID] = true
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	ch := s.Clear()
	s.modules = append(s.modules[:0], modules...)
	s.nextID = maxID + 1
	for _, m := range modules {
		ch.Added = append(ch.Added, m.ID)
	}
	return ch, nil
}
