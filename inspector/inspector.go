// Package inspector renders a detail panel for the selected module.
package inspector

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokito-h/outpost/catalog"
	"github.com/lokito-h/outpost/habitat"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelHeight  = 260
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
)

// Inspector renders the selected module's profile in a fixed panel.
// Selection itself lives in the editor; the inspector only draws.
type Inspector struct {
	panelX int32
	panelY int32
}

// NewInspector creates an inspector anchored to the bottom-left of the
// screen, clear of the module palette.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize repositions the panel after a window size change.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.panelX = 210
	ins.panelY = screenHeight - PanelHeight - 10
}

// Bounds returns the panel rectangle for input hit-testing.
func (ins *Inspector) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(ins.panelX),
		Y:      float32(ins.panelY),
		Width:  PanelWidth,
		Height: PanelHeight,
	}
}

// CloseClicked reports whether the mouse position hits the close button.
func (ins *Inspector) CloseClicked(mouseX, mouseY float32) bool {
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	return int32(mouseX) >= closeX && int32(mouseX) <= closeX+20 &&
		int32(mouseY) >= closeY && int32(mouseY) <= closeY+20
}

// Draw renders the panel for a placed module. A nil profile means the
// module's type is not in the catalog; only identity is shown then.
func (ins *Inspector) Draw(m habitat.PlacedModule, p *catalog.Profile) {
	x := ins.panelX
	y := ins.panelY

	rl.DrawRectangle(x, y, PanelWidth, PanelHeight, ColorPanelBg)
	rl.DrawRectangleLines(x, y, PanelWidth, PanelHeight, ColorPanelBorder)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)

	title := m.TypeID
	if p != nil {
		title = p.DisplayName
	}
	rl.DrawText(fmt.Sprintf("%s  #%d", title, m.ID), x+PanelPadding, y+7, 18, ColorHeaderText)

	// Close button
	closeX := x + PanelWidth - 25
	closeY := y + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("x", closeX+6, closeY+2, 16, ColorHeaderText)

	rowX := x + PanelPadding
	rowY := y + HeaderHeight + 8

	rowY += DrawLabel(rowX, rowY, "Position", fmt.Sprintf("(%.0f, %.0f)", m.X, m.Y), nil)

	if p == nil {
		rl.DrawText("No catalog profile for this type", rowX, rowY, 14, ColorTextDim)
		return
	}

	for _, f := range ExtractFields(p) {
		rowY += DrawField(rowX, rowY, f)
	}

	if svcs := p.RequiredServices(); len(svcs) > 0 {
		rowY += DrawLabel(rowX, rowY, "Needs", strings.Join(svcs, ", "), nil)
	}

	rowY += 4
	drawWrapped(rowX, rowY, p.Description, PanelWidth-2*PanelPadding)
}

// drawWrapped renders text wrapped to the given pixel width.
func drawWrapped(x, y int32, text string, width int32) {
	words := strings.Fields(text)
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if rl.MeasureText(candidate, 13) > width && line != "" {
			rl.DrawText(line, x, y, 13, ColorTextDim)
			y += 16
			line = w
			continue
		}
		line = candidate
	}
	if line != "" {
		rl.DrawText(line, x, y, 13, ColorTextDim)
	}
}
