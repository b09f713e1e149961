package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokito-h/outpost/catalog"
)

// Action is a palette button press outside module selection.
type Action int

const (
	ActionNone Action = iota
	ActionSave
	ActionLoad
	ActionClear
)

// Palette renders the module type picker plus layout action buttons.
type Palette struct {
	renderer *Renderer
	x, y     int32
	width    int32

	cat *catalog.Catalog
}

// NewPalette creates the palette anchored at (x, y).
func NewPalette(cat *catalog.Catalog, x, y, width int32) *Palette {
	return &Palette{renderer: NewRenderer(), x: x, y: y, width: width, cat: cat}
}

// SetPosition updates the palette position.
func (p *Palette) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Bounds returns the palette's screen rectangle for input hit-testing.
func (p *Palette) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(p.x),
		Y:      float32(p.y),
		Width:  float32(p.width),
		Height: float32(p.height()),
	}
}

func (p *Palette) height() int32 {
	const buttonH, gap = 26, 4
	t := p.renderer.Theme
	// One button per type, a divider, three action buttons.
	return t.Padding*2 + t.LineHeight + (buttonH+gap)*int32(p.cat.Len()) + 10 + (buttonH+gap)*3
}

// Draw renders the palette. Returns the clicked type id (empty when no
// type button was pressed) and an Action for the layout buttons.
// selected is highlighted by marking its button text.
func (p *Palette) Draw(selected string) (string, Action) {
	const buttonH, gap = 26, 4
	t := p.renderer.Theme

	p.renderer.DrawPanel(p.x, p.y, p.width, p.height())

	x := p.x + t.Padding
	y := p.renderer.DrawSectionHeader(x, p.y+t.Padding, "MODULES")
	buttonW := float32(p.width - t.Padding*2)

	clicked := ""
	for _, typeID := range p.cat.TypeIDs() {
		profile := p.cat.Lookup(typeID)
		label := fmt.Sprintf("%s %s", profile.Icon, profile.DisplayName)
		if typeID == selected {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: buttonW, Height: buttonH}, label) {
			clicked = typeID
		}
		y += buttonH + gap
	}

	y += 10

	action := ActionNone
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: buttonW, Height: buttonH}, "Save Layout") {
		action = ActionSave
	}
	y += buttonH + gap
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: buttonW, Height: buttonH}, "Load Layout") {
		action = ActionLoad
	}
	y += buttonH + gap
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: buttonW, Height: buttonH}, "Clear All") {
		action = ActionClear
	}

	return clicked, action
}
