// Package resources derives aggregate balances, safety alerts, and
// efficiency scores from the set of placed modules.
//
// Everything here is recomputed from scratch on every call. Nothing is
// persisted or incrementally patched, which rules out drift bugs by
// construction.
package resources

import (
	"log/slog"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/habitat"
)

// Snapshot is the fully recomputed aggregate view of all placed modules.
type Snapshot struct {
	PowerGeneration   float64 `json:"power_generation"`
	PowerConsumption  float64 `json:"power_consumption"`
	PowerBalance      float64 `json:"power_balance"`
	OxygenProduction  float64 `json:"oxygen_production"`
	OxygenConsumption float64 `json:"oxygen_consumption"`
	OxygenBalance     float64 `json:"oxygen_balance"`
	CrewCapacity      int     `json:"crew_capacity"`
	TotalArea         float64 `json:"total_area"`
	ModuleCount       int     `json:"module_count"`

	presentTypes map[string]bool
}

// Has reports whether at least one placed module of the given type has a
// known catalog profile.
func (s Snapshot) Has(typeID string) bool {
	return s.presentTypes[typeID]
}

// PresentTypes returns the set of placed type ids with known profiles.
func (s Snapshot) PresentTypes() map[string]bool {
	out := make(map[string]bool, len(s.presentTypes))
	for k := range s.presentTypes {
		out[k] = true
	}
	return out
}

// Aggregate sums per-module profile fields into global balances in a
// single linear pass. Modules with types missing from the catalog
// contribute zero and are excluded from the present-type set, but still
// count toward ModuleCount. No rounding happens here; display rounding
// is the UI's concern.
func Aggregate(modules []habitat.PlacedModule, cat *catalog.Catalog) Snapshot {
	s := Snapshot{presentTypes: make(map[string]bool)}
	for _, m := range modules {
		s.ModuleCount++
		p := cat.Lookup(m.TypeID)
		if p == nil {
			continue
		}
		s.PowerGeneration += p.PowerGeneration
		s.PowerConsumption += p.PowerConsumption
		s.OxygenProduction += p.OxygenProduction
		s.OxygenConsumption += p.OxygenConsumption
		s.CrewCapacity += p.CrewCapacity
		s.TotalArea += p.Area
		s.presentTypes[m.TypeID] = true
	}
	s.PowerBalance = s.PowerGeneration - s.PowerConsumption
	s.OxygenBalance = s.OxygenProduction - s.OxygenConsumption
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("modules", s.ModuleCount),
		slog.Float64("power_generation", s.PowerGeneration),
		slog.Float64("power_consumption", s.PowerConsumption),
		slog.Float64("power_balance", s.PowerBalance),
		slog.Float64("oxygen_production", s.OxygenProduction),
		slog.Float64("oxygen_consumption", s.OxygenConsumption),
		slog.Float64("oxygen_balance", s.OxygenBalance),
		slog.Int("crew_capacity", s.CrewCapacity),
		slog.Float64("total_area", s.TotalArea),
	)
}
