package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the debug overlay shows.
type HUDData struct {
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
	Clock        float32

	Resting    string
	Transition string  // empty when resting
	Progress   float32 // active transition fraction
	Inputs     string  // enabled buttons

	Clicks   int
	Stages   int
	Restarts int
}

// HUD renders the debug overlay in the top-left corner.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    220,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	x := pad + pad
	lines := int32(9)
	if data.Transition != "" {
		lines += 2
	}
	r.DrawPanel(pad, pad, h.width, lines*r.Theme.LineHeight+2*pad)

	y := r.DrawSectionHeader(x, pad+pad/2, "Debug")
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(x, y, "Window", fmt.Sprintf("%dx%d", data.ScreenWidth, data.ScreenHeight))
	y = r.DrawLabelValue(x, y, "Clock", fmt.Sprintf("%.1fs", data.Clock))
	y = r.DrawLabelValue(x, y, "Form", data.Resting)
	if data.Transition != "" {
		y = r.DrawLabelValue(x, y, "Stage", data.Transition)
		y = r.DrawBar(x, y, "Progress", data.Progress, h.width-2*pad)
	}
	y = r.DrawLabelValue(x, y, "Inputs", data.Inputs)
	y = r.DrawLabelValue(x, y, "Clicks", fmt.Sprintf("%d", data.Clicks))
	y = r.DrawLabelValue(x, y, "Stages", fmt.Sprintf("%d", data.Stages))
	r.DrawLabelValue(x, y, "Restarts", fmt.Sprintf("%d", data.Restarts))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-20, h.renderer.Theme.FontSize, rl.Gray)
}
