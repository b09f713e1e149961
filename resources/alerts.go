package resources

import (
	"fmt"
	"math"

	"github.com/lokito-h/outpost/config"
)

// Severity grades a safety alert.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityOK      Severity = "ok"
)

// Alert is one entry of the safety report.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Alerts evaluates the safety policy against a snapshot. Every applicable
// rule fires independently; rule order is fixed. This is a monitoring
// function, not a gate: it never blocks a placement.
func Alerts(s Snapshot) []Alert {
	cfg := config.Cfg().Alerts
	var out []Alert

	if s.PowerBalance < 0 {
		out = append(out, Alert{SeverityDanger,
			fmt.Sprintf("Power deficit: %.0f units short", math.Abs(s.PowerBalance))})
	} else if s.PowerBalance < cfg.LowPowerReserve {
		out = append(out, Alert{SeverityWarning, "Low power reserve"})
	}

	if s.OxygenBalance < 0 {
		out = append(out, Alert{SeverityDanger, "Oxygen deficit"})
	} else if s.OxygenBalance < cfg.LowOxygenReserve {
		out = append(out, Alert{SeverityWarning, "Low oxygen reserve"})
	}

	if s.CrewCapacity == 0 {
		out = append(out, Alert{SeverityWarning, "No living quarters"})
	} else if s.CrewCapacity < cfg.MinCrewCapacity {
		out = append(out, Alert{SeverityWarning, "Limited crew capacity"})
	}

	if !s.Has(cfg.AirlockType) {
		out = append(out, Alert{SeverityWarning, "No airlock: EVA is impossible"})
	}
	if !s.Has(cfg.PowerType) {
		out = append(out, Alert{SeverityDanger, "No power generation"})
	}

	if len(out) == 0 {
		out = append(out, Alert{SeverityInfo, "All systems nominal"})
	}
	return out
}

// CountBySeverity returns how many alerts carry each severity.
func CountBySeverity(alerts []Alert) map[Severity]int {
	counts := make(map[Severity]int, len(alerts))
	for _, a := range alerts {
		counts[a.Severity]++
	}
	return counts
}
