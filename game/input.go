package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hatch/world"
)

// handleInput processes window and keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Debug overlay toggle
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}
}

// handleResize checks for window resize and refits the camera.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
}

// pointer samples the mouse (or first touch) in world coordinates.
func (g *Game) pointer() world.Pointer {
	pos := rl.GetMousePosition()
	x, y := g.camera.ScreenToWorld(pos.X, pos.Y)
	return world.Pointer{
		X:    x,
		Y:    y,
		Down: rl.IsMouseButtonDown(rl.MouseButtonLeft),
	}
}

// frameTime returns the host's last frame delta in seconds.
func frameTime() float32 {
	return rl.GetFrameTime()
}
