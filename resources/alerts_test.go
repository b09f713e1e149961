package resources

import (
	"testing"

	"github.com/lokito-h/outpost/habitat"
)

func hasAlert(alerts []Alert, sev Severity, msg string) bool {
	for _, a := range alerts {
		if a.Severity == sev && a.Message == msg {
			return true
		}
	}
	return false
}

func TestAlertsEmptyHabitat(t *testing.T) {
	s := Aggregate(nil, testCatalog(t))
	alerts := Alerts(s)

	want := []struct {
		sev Severity
		msg string
	}{
		{SeverityWarning, "Low power reserve"},
		{SeverityWarning, "Low oxygen reserve"},
		{SeverityWarning, "No living quarters"},
		{SeverityWarning, "No airlock: EVA is impossible"},
		{SeverityDanger, "No power generation"},
	}
	if len(alerts) != len(want) {
		t.Fatalf("got %d alerts, want %d: %+v", len(alerts), len(want), alerts)
	}
	for i, w := range want {
		if alerts[i].Severity != w.sev || alerts[i].Message != w.msg {
			t.Errorf("alert %d = %+v, want {%s %s}", i, alerts[i], w.sev, w.msg)
		}
	}
}

func TestAlertsPowerDeficitNamesMagnitude(t *testing.T) {
	cat := testCatalog(t)

	// Living quarters with no generation: balance -15
	s := Aggregate([]habitat.PlacedModule{
		{ID: 1, TypeID: "living-quarters", X: 0, Y: 0},
	}, cat)
	alerts := Alerts(s)

	if !hasAlert(alerts, SeverityDanger, "Power deficit: 15 units short") {
		t.Errorf("missing power deficit alert with magnitude: %+v", alerts)
	}
	if !hasAlert(alerts, SeverityDanger, "No power generation") {
		t.Errorf("missing no-power-generation alert: %+v", alerts)
	}
	if !hasAlert(alerts, SeverityDanger, "Oxygen deficit") {
		t.Errorf("missing oxygen deficit alert: %+v", alerts)
	}
	// Deficit replaces the low-reserve warning, it does not stack
	if hasAlert(alerts, SeverityWarning, "Low power reserve") {
		t.Errorf("deficit and low-reserve fired together: %+v", alerts)
	}
}

func TestAlertsNominal(t *testing.T) {
	cat := testCatalog(t)

	s := Aggregate([]habitat.PlacedModule{
		{ID: 1, TypeID: "solar-array", X: 0, Y: 0},
		{ID: 2, TypeID: "living-quarters", X: 0, Y: 20},
		{ID: 3, TypeID: "life-support", X: 40, Y: 0},
		{ID: 4, TypeID: "airlock", X: 60, Y: 0},
	}, cat)
	alerts := Alerts(s)

	if len(alerts) != 1 || alerts[0].Severity != SeverityInfo || alerts[0].Message != "All systems nominal" {
		t.Errorf("expected the single nominal alert, got %+v", alerts)
	}
}

func TestAlertsLimitedCrew(t *testing.T) {
	cat := testCatalog(t)

	// Restore lets the test build a crew capacity between 0 and the minimum
	st := habitat.NewState(cat)
	if _, err := st.Restore([]habitat.PlacedModule{
		{ID: 1, TypeID: "living-quarters", X: 0, Y: 0},
	}); err != nil {
		t.Fatal(err)
	}
	s := Aggregate(st.Modules(), cat)
	if s.CrewCapacity != 4 {
		t.Fatalf("unexpected crew capacity %d", s.CrewCapacity)
	}

	// Capacity 4 meets the default minimum, so no crew alert at all
	alerts := Alerts(s)
	if hasAlert(alerts, SeverityWarning, "Limited crew capacity") ||
		hasAlert(alerts, SeverityWarning, "No living quarters") {
		t.Errorf("unexpected crew alert at capacity %d: %+v", s.CrewCapacity, alerts)
	}
}

func TestCountBySeverity(t *testing.T) {
	alerts := []Alert{
		{SeverityDanger, "a"},
		{SeverityDanger, "b"},
		{SeverityWarning, "c"},
	}
	counts := CountBySeverity(alerts)
	if counts[SeverityDanger] != 2 || counts[SeverityWarning] != 1 || counts[SeverityInfo] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
