package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokito-h/outpost/config"
	"github.com/lokito-h/outpost/scene"
	"github.com/lokito-h/outpost/ui"
)

// Draw renders one frame.
func (e *Editor) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 18, A: 255})

	e.drawSurface()
	e.drawModules()
	e.drawDragPreview()
	e.drawPlacementGhost()
	e.drawPanels()
	e.drawPalette()
	e.drawInspector()
	e.drawHUD()

	rl.EndDrawing()
}

// worldRect converts a surface-space rectangle to screen space.
func (e *Editor) worldRect(x, y, w, h float64) rl.Rectangle {
	sx, sy := e.cam.WorldToScreen(float32(x), float32(y))
	return rl.Rectangle{
		X:      sx,
		Y:      sy,
		Width:  float32(w) * e.cam.Zoom,
		Height: float32(h) * e.cam.Zoom,
	}
}

// drawSurface renders the placeable area with its grid and border.
func (e *Editor) drawSurface() {
	cfg := config.Cfg().Surface
	r := e.worldRect(0, 0, cfg.Width, cfg.Height)

	rl.DrawRectangleRec(r, rl.Color{R: 30, G: 26, B: 24, A: 255})

	if e.showGrid && cfg.GridStep > 0 {
		gridColor := rl.Color{R: 45, G: 40, B: 38, A: 255}
		for x := cfg.GridStep; x < cfg.Width; x += cfg.GridStep {
			sx, _ := e.cam.WorldToScreen(float32(x), 0)
			rl.DrawLine(int32(sx), int32(r.Y), int32(sx), int32(r.Y+r.Height), gridColor)
		}
		for y := cfg.GridStep; y < cfg.Height; y += cfg.GridStep {
			_, sy := e.cam.WorldToScreen(0, float32(y))
			rl.DrawLine(int32(r.X), int32(sy), int32(r.X+r.Width), int32(sy), gridColor)
		}
	}

	rl.DrawRectangleLinesEx(r, 2, rl.Color{R: 90, G: 80, B: 70, A: 255})
}

// drawModules renders every placed module from the scene mirror.
// The module being dragged is drawn by drawDragPreview instead.
func (e *Editor) drawModules() {
	e.scene.Each(func(pos scene.Position, ext scene.Extent, spr scene.Sprite) {
		if e.drag.active && spr.ModuleID == e.drag.id {
			return
		}
		e.drawModuleRect(float64(pos.X), float64(pos.Y), float64(ext.W), float64(ext.H), spr, 255)
	})
}

// drawModuleRect renders a single module body, border, and label.
func (e *Editor) drawModuleRect(x, y, w, h float64, spr scene.Sprite, alpha uint8) {
	if w == 0 || h == 0 {
		// Unknown type restored from a layout: mark its anchor point.
		sx, sy := e.cam.WorldToScreen(float32(x), float32(y))
		rl.DrawCircle(int32(sx), int32(sy), 4, rl.Color{R: spr.R, G: spr.G, B: spr.B, A: alpha})
		return
	}

	r := e.worldRect(x, y, w, h)
	body := rl.Color{R: spr.R, G: spr.G, B: spr.B, A: alpha - alpha/4}
	rl.DrawRectangleRec(r, body)

	border := rl.Color{R: spr.R / 2, G: spr.G / 2, B: spr.B / 2, A: alpha}
	thickness := float32(1)
	if spr.ModuleID == e.selectedID {
		border = rl.White
		thickness = 2
	}
	rl.DrawRectangleLinesEx(r, thickness, border)

	if r.Width > 60 {
		rl.DrawText(spr.Label, int32(r.X)+4, int32(r.Y)+4, 10, rl.Color{R: 240, G: 240, B: 240, A: alpha})
	}
}

// drawDragPreview renders the dragged module at its candidate position,
// tinted by whether the drop would validate.
func (e *Editor) drawDragPreview() {
	if !e.drag.active {
		return
	}
	m, ok := e.state.ByID(e.drag.id)
	if !ok {
		return
	}
	p := e.cat.Lookup(m.TypeID)
	if p == nil {
		return
	}

	valid := e.state.CanMove(m.ID, e.drag.candX, e.drag.candY, e.bounds()) == nil
	e.drawValidityRect(e.drag.candX, e.drag.candY, p.Width, p.Height, valid)
}

// drawPlacementGhost renders the selected type following the cursor.
func (e *Editor) drawPlacementGhost() {
	if e.selectedType == "" || e.drag.active {
		return
	}
	mouse := rl.GetMousePosition()
	if rl.CheckCollisionPointRec(mouse, e.palette.Bounds()) {
		return
	}
	p := e.cat.Lookup(e.selectedType)
	if p == nil {
		return
	}

	wx, wy := e.cam.ScreenToWorld(mouse.X, mouse.Y)
	x, y := e.placementCandidate(float64(wx), float64(wy))

	valid := e.state.CanPlace(e.selectedType, x, y, e.bounds()) == nil
	e.drawValidityRect(x, y, p.Width, p.Height, valid)
}

// drawValidityRect renders a translucent candidate footprint, green when
// the placement would validate and red otherwise.
func (e *Editor) drawValidityRect(x, y, w, h float64, valid bool) {
	r := e.worldRect(x, y, w, h)
	fill := rl.Color{R: 100, G: 220, B: 120, A: 110}
	border := rl.Color{R: 100, G: 220, B: 120, A: 220}
	if !valid {
		fill = rl.Color{R: 220, G: 90, B: 90, A: 110}
		border = rl.Color{R: 220, G: 90, B: 90, A: 220}
	}
	rl.DrawRectangleRec(r, fill)
	rl.DrawRectangleLinesEx(r, 2, border)
}

// drawPanels renders the resource, alert, and efficiency panels.
func (e *Editor) drawPanels() {
	bottom := e.resPanel.Draw(e.snapshot)
	e.alertPanel.SetPosition(int32(e.screenWidth)-250, bottom+10)
	bottom = e.alertPanel.Draw(e.alerts)
	if e.showReport {
		e.effPanel.SetPosition(int32(e.screenWidth)-250, bottom+10)
		e.effPanel.Draw(e.scores, e.recs)
	}
}

// drawPalette renders the module picker and applies its clicks.
func (e *Editor) drawPalette() {
	clicked, action := e.palette.Draw(e.selectedType)
	if clicked != "" {
		if clicked == e.selectedType {
			e.selectedType = ""
		} else {
			e.selectedType = clicked
			e.selectedID = 0
		}
	}

	switch action {
	case ui.ActionSave:
		e.saveLayout()
	case ui.ActionLoad:
		e.loadLayout()
	case ui.ActionClear:
		e.clearAll()
	}
}

// drawInspector renders the detail panel for the selected module.
func (e *Editor) drawInspector() {
	if e.selectedID == 0 {
		return
	}
	m, ok := e.state.ByID(e.selectedID)
	if !ok {
		e.selectedID = 0
		return
	}
	e.inspect.Draw(m, e.cat.Lookup(m.TypeID))
}

// drawHUD renders the heads-up display and control legend.
func (e *Editor) drawHUD() {
	e.hud.Draw(ui.HUDData{
		Title:        "Outpost",
		ModuleCount:  e.snapshot.ModuleCount,
		CrewCapacity: e.snapshot.CrewCapacity,
		SelectedType: e.selectedType,
		Notice:       e.notice,
		FPS:          rl.GetFPS(),
		ScreenWidth:  int32(e.screenWidth),
		ScreenHeight: int32(e.screenHeight),
	})
	e.hud.DrawControls(int32(e.screenWidth), int32(e.screenHeight),
		"LMB place/drag | RMB cancel | Del remove | S save | L load | C clear | Tab report | G grid | Home reset view")
}
