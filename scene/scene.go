// Package scene mirrors the habitat state as ECS entities for rendering.
//
// The core never knows about presentation: mutations return change sets,
// and the scene reacts to added, moved, and removed ids. Draw code
// iterates the ECS world instead of re-deriving footprints every frame.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/habitat"
)

// Position is a sprite's top-left corner in surface units.
type Position struct {
	X, Y float32
}

// Extent is a sprite's footprint size in surface units.
type Extent struct {
	W, H float32
}

// Sprite ties an ECS entity back to its placed module.
type Sprite struct {
	ModuleID int
	TypeID   string
	Label    string
	R, G, B  uint8
}

// Scene owns the ECS mirror world.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map3[Position, Extent, Sprite]
	filter *ecs.Filter3[Position, Extent, Sprite]

	entities map[int]ecs.Entity
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:    world,
		mapper:   ecs.NewMap3[Position, Extent, Sprite](world),
		filter:   ecs.NewFilter3[Position, Extent, Sprite](world),
		entities: make(map[int]ecs.Entity),
	}
}

// Len returns the number of mirrored modules.
func (s *Scene) Len() int { return len(s.entities) }

// Apply updates the mirror from a change set. Modules whose type is
// missing from the catalog get a zero extent and a fallback color so
// restored unknown entries stay visible without a footprint.
func (s *Scene) Apply(ch habitat.Change, st *habitat.State, cat *catalog.Catalog) {
	for _, id := range ch.Removed {
		if e, ok := s.entities[id]; ok {
			s.world.RemoveEntity(e)
			delete(s.entities, id)
		}
	}
	for _, id := range ch.Added {
		m, ok := st.ByID(id)
		if !ok {
			continue
		}
		pos, ext, spr := components(m, cat)
		s.entities[id] = s.mapper.NewEntity(&pos, &ext, &spr)
	}
	for _, id := range ch.Moved {
		m, ok := st.ByID(id)
		if !ok {
			continue
		}
		if e, ok := s.entities[id]; ok {
			pos, _, _ := s.mapper.Get(e)
			pos.X = float32(m.X)
			pos.Y = float32(m.Y)
		}
	}
}

// Each calls fn for every mirrored module.
func (s *Scene) Each(fn func(pos Position, ext Extent, spr Sprite)) {
	query := s.filter.Query()
	for query.Next() {
		pos, ext, spr := query.Get()
		fn(*pos, *ext, *spr)
	}
}

// components derives the ECS components for one placed module.
func components(m habitat.PlacedModule, cat *catalog.Catalog) (Position, Extent, Sprite) {
	pos := Position{X: float32(m.X), Y: float32(m.Y)}
	spr := Sprite{ModuleID: m.ID, TypeID: m.TypeID}

	p := cat.Lookup(m.TypeID)
	if p == nil {
		spr.Label = m.TypeID
		spr.R, spr.G, spr.B = 120, 120, 120
		return pos, Extent{}, spr
	}

	spr.Label = p.DisplayName
	spr.R, spr.G, spr.B = TypeColor(m.TypeID)
	return pos, Extent{W: float32(p.Width), H: float32(p.Height)}, spr
}

// TypeColor returns a stable RGB color for a module type.
func TypeColor(typeID string) (r, g, b uint8) {
	switch typeID {
	case "living-quarters":
		return 80, 150, 200 // Blue
	case "solar-array":
		return 220, 180, 60 // Amber
	case "greenhouse":
		return 50, 180, 80 // Green
	case "life-support":
		return 100, 200, 200 // Cyan
	case "airlock":
		return 200, 120, 60 // Orange
	case "laboratory":
		return 180, 100, 180 // Purple
	case "medical-bay":
		return 220, 90, 90 // Red
	case "storage":
		return 140, 130, 110 // Tan
	case "water-recycler":
		return 90, 130, 220 // Indigo
	}
	return 150, 150, 150 // Gray default
}
