package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	ModuleCount  int
	CrewCapacity int
	SelectedType string
	Notice       string // Transient message, e.g. a rejected placement
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Modules: %d | Crew: %d | FPS: %d", data.ModuleCount, data.CrewCapacity, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	if data.SelectedType != "" {
		rl.DrawText("Placing: "+data.SelectedType, 10, 55, 16, rl.SkyBlue)
	}

	if data.Notice != "" {
		width := rl.MeasureText(data.Notice, 16)
		rl.DrawText(data.Notice, data.ScreenWidth/2-width/2, 40, 16, rl.Orange)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
