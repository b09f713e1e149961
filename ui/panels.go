package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokito-h/outpost/resources"
)

// ResourcePanel renders the aggregate resource balances.
type ResourcePanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewResourcePanel creates a resource panel anchored at (x, y).
func NewResourcePanel(x, y, width int32) *ResourcePanel {
	return &ResourcePanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *ResourcePanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the resource panel and returns the Y below it.
func (p *ResourcePanel) Draw(s resources.Snapshot) int32 {
	r := p.renderer
	t := r.Theme

	height := t.LineHeight*8 + t.Padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + t.Padding
	y := p.y + t.Padding

	y = r.DrawSectionHeader(x, y, "RESOURCES")
	y = r.DrawBalance(x, y, "Power", s.PowerBalance)
	y = r.DrawLabelValue(x, y, "  gen/use", fmt.Sprintf("%.0f / %.0f", s.PowerGeneration, s.PowerConsumption))
	y = r.DrawBalance(x, y, "Oxygen", s.OxygenBalance)
	y = r.DrawLabelValue(x, y, "  prod/use", fmt.Sprintf("%.0f / %.0f", s.OxygenProduction, s.OxygenConsumption))
	y = r.DrawLabelValue(x, y, "Power load", fmt.Sprintf("%.0f%%", powerUsagePercent(s)))
	y = r.DrawLabelValue(x, y, "O2 supply", fmt.Sprintf("%.0f%%", oxygenUsagePercent(s)))
	y = r.DrawLabelValue(x, y, "Area", fmt.Sprintf("%.0f u2", s.TotalArea))

	return p.y + height
}

// powerUsagePercent is the share of generated power being consumed.
func powerUsagePercent(s resources.Snapshot) float64 {
	if s.PowerGeneration == 0 {
		return 0
	}
	return s.PowerConsumption / s.PowerGeneration * 100
}

// oxygenUsagePercent keeps the original display formula, which mixes
// balance and consumption rather than mirroring the power formula.
func oxygenUsagePercent(s resources.Snapshot) float64 {
	if s.OxygenProduction == 0 {
		return 0
	}
	return (s.OxygenBalance + s.OxygenConsumption) / s.OxygenProduction * 100
}

// AlertPanel renders the safety alert list.
type AlertPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewAlertPanel creates an alert panel anchored at (x, y).
func NewAlertPanel(x, y, width int32) *AlertPanel {
	return &AlertPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *AlertPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the alert panel and returns the Y below it.
func (p *AlertPanel) Draw(alerts []resources.Alert) int32 {
	r := p.renderer
	t := r.Theme

	height := t.LineHeight*int32(len(alerts)+1) + t.Padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + t.Padding
	y := p.y + t.Padding

	y = r.DrawSectionHeader(x, y, "SAFETY")
	for _, a := range alerts {
		color := r.SeverityColor(string(a.Severity))
		rl.DrawText(a.Message, x, y, t.FontSize, color)
		y += t.LineHeight
	}

	return p.y + height
}

// EfficiencyPanel renders scores and recommendations.
type EfficiencyPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewEfficiencyPanel creates an efficiency panel anchored at (x, y).
func NewEfficiencyPanel(x, y, width int32) *EfficiencyPanel {
	return &EfficiencyPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *EfficiencyPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the efficiency panel and returns the Y below it.
func (p *EfficiencyPanel) Draw(sc resources.Scores, recs []resources.Recommendation) int32 {
	r := p.renderer
	t := r.Theme

	lines := int32(6 + len(recs))
	height := (t.LineHeight+2)*lines + t.Padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + t.Padding
	y := p.y + t.Padding
	barWidth := p.width - t.Padding*2

	y = r.DrawSectionHeader(x, y, "EFFICIENCY")
	y = r.DrawScoreBar(x, y, "Power", sc.Power, barWidth)
	y = r.DrawScoreBar(x, y, "Oxygen", sc.Oxygen, barWidth)
	y = r.DrawScoreBar(x, y, "Space", sc.Space, barWidth)
	y = r.DrawScoreBar(x, y, "Crew", sc.Crew, barWidth)
	y = r.DrawScoreBar(x, y, "Overall", sc.Overall, barWidth)

	for _, rec := range recs {
		color := r.Theme.InfoColor
		if rec.Severity == "critical" {
			color = r.Theme.DangerColor
		}
		rl.DrawText(fmt.Sprintf("%d. %s", rec.Priority, rec.Message), x, y, t.FontSize, color)
		y += t.LineHeight + 2
	}

	return p.y + height
}
