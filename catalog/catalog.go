// Package catalog defines the fixed per-type profiles for habitat modules.
//
// Profiles are loaded once from an embedded CSV table and never change at
// runtime. Absence of a type id is a normal outcome: aggregation skips
// unknown types, placement rejects them.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed modules.csv
var modulesCSV []byte

// Profile holds the fixed physical and resource characteristics of a
// module type. Width, height and area are in surface units.
type Profile struct {
	TypeID            string  `csv:"type_id" inspect:"skip"`
	DisplayName       string  `csv:"display_name" inspect:"skip"`
	Icon              string  `csv:"icon" inspect:"skip"`
	Width             float64 `csv:"width" inspect:"label,name:Width"`
	Height            float64 `csv:"height" inspect:"label,name:Height"`
	PowerGeneration   float64 `csv:"power_generation" inspect:"bar,name:Power out,max:50"`
	PowerConsumption  float64 `csv:"power_consumption" inspect:"bar,name:Power in,max:25"`
	OxygenProduction  float64 `csv:"oxygen_production" inspect:"bar,name:Oxygen out,max:30"`
	OxygenConsumption float64 `csv:"oxygen_consumption" inspect:"bar,name:Oxygen in,max:10"`
	CrewCapacity      int     `csv:"crew_capacity" inspect:"label,name:Crew"`
	Area              float64 `csv:"area" inspect:"label,name:Area"`
	Services          string  `csv:"required_services" inspect:"skip"` // Semicolon-separated
	Description       string  `csv:"description" inspect:"skip"`
}

// RequiredServices returns the services this module type depends on.
func (p *Profile) RequiredServices() []string {
	if p.Services == "" {
		return nil
	}
	return strings.Split(p.Services, ";")
}

// Catalog is an immutable lookup table from type id to profile.
type Catalog struct {
	profiles map[string]*Profile
	order    []string // Type ids in table order
}

// New builds a catalog from a profile list. Duplicate type ids are an error.
func New(profiles []Profile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]*Profile, len(profiles))}
	for i := range profiles {
		p := &profiles[i]
		if p.TypeID == "" {
			return nil, fmt.Errorf("catalog: profile %d has empty type id", i)
		}
		if _, ok := c.profiles[p.TypeID]; ok {
			return nil, fmt.Errorf("catalog: duplicate type id %q", p.TypeID)
		}
		c.profiles[p.TypeID] = p
		c.order = append(c.order, p.TypeID)
	}
	return c, nil
}

// Load parses the embedded module table.
func Load() (*Catalog, error) {
	var profiles []Profile
	if err := gocsv.UnmarshalBytes(modulesCSV, &profiles); err != nil {
		return nil, fmt.Errorf("parsing embedded module table: %w", err)
	}
	return New(profiles)
}

// MustLoad is like Load but panics on error. The embedded table is
// validated by tests, so a failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Lookup returns the profile for a type id, or nil if unknown.
func (c *Catalog) Lookup(typeID string) *Profile {
	return c.profiles[typeID]
}

// TypeIDs returns all known type ids in table order.
func (c *Catalog) TypeIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of known module types.
func (c *Catalog) Len() int {
	return len(c.order)
}
