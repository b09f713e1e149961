package resources

import (
	"sort"

	"github.com/lokito-h/outpost/config"
)

// Scores holds the four efficiency scores plus their average, each in
// [0, 100].
type Scores struct {
	Power   float64 `json:"power"`
	Oxygen  float64 `json:"oxygen"`
	Space   float64 `json:"space"`
	Crew    float64 `json:"crew"`
	Overall float64 `json:"overall"`
}

// Recommendation suggests a layout improvement. Lower priority numbers
// are more urgent; 1 is most urgent.
type Recommendation struct {
	Priority int    `json:"priority"`
	Severity string `json:"severity"` // "critical" or "advisory"
	Category string `json:"category"` // "power", "oxygen", "crew", "space"
	Message  string `json:"message"`
}

// Score computes the efficiency scores for a snapshot.
func Score(s Snapshot) Scores {
	cfg := config.Cfg().Efficiency

	sc := Scores{
		Power:  balanceScore(s.PowerBalance, s.PowerConsumption),
		Oxygen: balanceScore(s.OxygenBalance, s.OxygenConsumption),
		Space:  spaceScore(s.TotalArea, cfg.MaxSurfaceArea),
		Crew:   crewScore(s.CrewCapacity, s.ModuleCount),
	}
	sc.Overall = (sc.Power + sc.Oxygen + sc.Space + sc.Crew) / 4
	return sc
}

// balanceScore maps a resource balance to [0, 100] relative to demand.
// No demand means the resource is trivially satisfied.
func balanceScore(balance, consumption float64) float64 {
	if consumption == 0 {
		return 100
	}
	return clamp(balance/consumption*100+50, 0, 100)
}

// spaceScore rewards the 20-80% utilization band of the area budget,
// penalizes under-use linearly and crowding past 80%.
func spaceScore(totalArea, maxArea float64) float64 {
	if maxArea <= 0 {
		return 100
	}
	usage := totalArea / maxArea * 100
	switch {
	case usage < 20:
		return usage * 2
	case usage <= 80:
		return 100
	default:
		return max(0, 100-(usage-80)*2)
	}
}

// crewScore rewards one to two berths per module. An empty habitat
// scores 100.
func crewScore(crewCapacity, moduleCount int) float64 {
	if moduleCount == 0 {
		return 100
	}
	ratio := float64(crewCapacity) / float64(moduleCount)
	switch {
	case ratio < 1:
		return ratio * 100
	case ratio <= 2:
		return 100
	default:
		return max(0, 100-(ratio-2)*20)
	}
}

// Recommendations derives improvement suggestions from low scores.
// A category escalates to critical when its balance is actually negative
// or the resource is entirely absent. The result is sorted by ascending
// priority.
func Recommendations(s Snapshot, sc Scores) []Recommendation {
	low := config.Cfg().Efficiency.LowScore
	var out []Recommendation

	if sc.Power < low {
		r := Recommendation{Priority: 4, Severity: "advisory", Category: "power",
			Message: "Add power generation capacity"}
		if s.PowerBalance < 0 || s.PowerGeneration == 0 {
			r.Priority, r.Severity = 1, "critical"
		}
		out = append(out, r)
	}

	if sc.Oxygen < low {
		r := Recommendation{Priority: 5, Severity: "advisory", Category: "oxygen",
			Message: "Add oxygen production: a greenhouse or life support module"}
		if s.OxygenBalance < 0 || s.OxygenProduction == 0 {
			r.Priority, r.Severity = 2, "critical"
		}
		out = append(out, r)
	}

	if sc.Crew < low {
		r := Recommendation{Priority: 6, Severity: "advisory", Category: "crew",
			Message: "Add living quarters to raise crew capacity"}
		if s.CrewCapacity == 0 {
			r.Priority, r.Severity = 3, "critical"
		}
		out = append(out, r)
	}

	if sc.Space < low {
		msg := "Surface is mostly unused: expand the layout"
		if s.TotalArea > config.Cfg().Efficiency.MaxSurfaceArea*0.8 {
			msg = "Surface is crowded: remove modules or spread them out"
		}
		out = append(out, Recommendation{Priority: 7, Severity: "advisory",
			Category: "space", Message: msg})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// Report aggregates scores and recommendations for a snapshot.
func Report(s Snapshot) (Scores, []Recommendation) {
	sc := Score(s)
	return sc, Recommendations(s, sc)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
