// Package telemetry records the editor's mutation history for analysis.
package telemetry

import (
	"log/slog"

	"github.com/lokito-h/outpost/resources"
)

// Record captures the habitat's aggregate state after one mutation.
type Record struct {
	Seq   int    `csv:"seq"`
	Event string `csv:"event"` // "place", "move", "remove", "clear", "restore"

	ModuleCount   int     `csv:"modules"`
	PowerBalance  float64 `csv:"power_balance"`
	OxygenBalance float64 `csv:"oxygen_balance"`
	CrewCapacity  int     `csv:"crew"`
	TotalArea     float64 `csv:"area"`

	Dangers  int `csv:"dangers"`
	Warnings int `csv:"warnings"`

	PowerScore  float64 `csv:"power_score"`
	OxygenScore float64 `csv:"oxygen_score"`
	SpaceScore  float64 `csv:"space_score"`
	CrewScore   float64 `csv:"crew_score"`
	Overall     float64 `csv:"overall_score"`
}

// NewRecord builds a record from the derived views of the habitat.
func NewRecord(seq int, event string, s resources.Snapshot, alerts []resources.Alert, sc resources.Scores) Record {
	counts := resources.CountBySeverity(alerts)
	return Record{
		Seq:           seq,
		Event:         event,
		ModuleCount:   s.ModuleCount,
		PowerBalance:  s.PowerBalance,
		OxygenBalance: s.OxygenBalance,
		CrewCapacity:  s.CrewCapacity,
		TotalArea:     s.TotalArea,
		Dangers:       counts[resources.SeverityDanger],
		Warnings:      counts[resources.SeverityWarning],
		PowerScore:    sc.Power,
		OxygenScore:   sc.Oxygen,
		SpaceScore:    sc.Space,
		CrewScore:     sc.Crew,
		Overall:       sc.Overall,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("seq", r.Seq),
		slog.String("event", r.Event),
		slog.Int("modules", r.ModuleCount),
		slog.Float64("power_balance", r.PowerBalance),
		slog.Float64("oxygen_balance", r.OxygenBalance),
		slog.Int("crew", r.CrewCapacity),
		slog.Float64("area", r.TotalArea),
		slog.Int("dangers", r.Dangers),
		slog.Int("warnings", r.Warnings),
		slog.Float64("overall_score", r.Overall),
	)
}

// LogStats logs the record using slog.
func (r Record) LogStats() {
	slog.Info("stats", "record", r)
}
