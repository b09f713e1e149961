package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update advances interaction state for one frame.
func (e *Editor) Update() {
	e.handleInput()

	if e.noticeFrames > 0 {
		e.noticeFrames--
		if e.noticeFrames == 0 {
			e.notice = ""
		}
	}
}

// handleInput processes keyboard and mouse input.
func (e *Editor) handleInput() {
	e.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		e.showReport = !e.showReport
	}
	if rl.IsKeyPressed(rl.KeyG) {
		e.showGrid = !e.showGrid
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		e.selectedType = ""
		e.selectedID = 0
		e.drag = dragState{}
	}
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyX) {
		if e.selectedID != 0 {
			e.removeModule(e.selectedID)
		}
	}
	if rl.IsKeyPressed(rl.KeyS) {
		e.saveLayout()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		e.loadLayout()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		e.clearAll()
	}

	e.handleCameraInput()
	e.handleMouse()
}

// handleResize checks for window resize and propagates new dimensions.
func (e *Editor) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == e.screenWidth && h == e.screenHeight {
		return
	}
	e.screenWidth = w
	e.screenHeight = h

	e.cam.Resize(w, h)

	const panelWidth = 240
	e.resPanel.SetPosition(int32(w)-panelWidth-10, 10)
	e.alertPanel.SetPosition(int32(w)-panelWidth-10, 170)
	e.effPanel.SetPosition(int32(w)-panelWidth-10, 340)
	e.inspect.Resize(int32(w), int32(h))
}

// handleCameraInput processes camera pan/zoom controls.
func (e *Editor) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0)

	if rl.IsKeyDown(rl.KeyRight) {
		e.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		e.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		e.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		e.cam.Pan(0, -panSpeed)
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		e.cam.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		e.cam.Reset()
	}
}

// handleMouse processes placement, selection, and drag interactions.
func (e *Editor) handleMouse() {
	mouse := rl.GetMousePosition()
	if rl.CheckCollisionPointRec(mouse, e.palette.Bounds()) {
		// Palette clicks are handled by the raygui buttons during Draw.
		return
	}
	if e.selectedID != 0 && rl.CheckCollisionPointRec(mouse, e.inspect.Bounds()) {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && e.inspect.CloseClicked(mouse.X, mouse.Y) {
			e.selectedID = 0
		}
		return
	}

	wx32, wy32 := e.cam.ScreenToWorld(mouse.X, mouse.Y)
	wx, wy := float64(wx32), float64(wy32)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if m, ok := e.state.ModuleAt(wx, wy); ok {
			e.selectedID = m.ID
			e.selectedType = ""
			e.drag = dragState{
				active:  true,
				id:      m.ID,
				offsetX: wx - m.X,
				offsetY: wy - m.Y,
				candX:   m.X,
				candY:   m.Y,
			}
		} else if e.selectedType != "" {
			x, y := e.placementCandidate(wx, wy)
			e.placeAt(x, y)
		} else {
			e.selectedID = 0
		}
	}

	if e.drag.active && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		e.drag.candX = snap(wx - e.drag.offsetX)
		e.drag.candY = snap(wy - e.drag.offsetY)
	}

	if e.drag.active && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		m, ok := e.state.ByID(e.drag.id)
		if ok && (e.drag.candX != m.X || e.drag.candY != m.Y) {
			e.moveTo(e.drag.id, e.drag.candX, e.drag.candY)
		}
		e.drag = dragState{}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		e.selectedType = ""
		e.selectedID = 0
		e.drag = dragState{}
	}
}

// placementCandidate centers the selected module type on the cursor and
// snaps the resulting top-left corner to the grid.
func (e *Editor) placementCandidate(wx, wy float64) (x, y float64) {
	p := e.cat.Lookup(e.selectedType)
	if p == nil {
		return snap(wx), snap(wy)
	}
	return snap(wx - p.Width/2), snap(wy - p.Height/2)
}
