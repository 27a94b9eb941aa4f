// Package renderer draws the world through raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hatch/assets"
	"github.com/pthm-cable/hatch/button"
	"github.com/pthm-cable/hatch/camera"
	"github.com/pthm-cable/hatch/evolution"
)

// Canvas draws artwork and buttons from the asset library, mapped through
// the camera. It implements world.Canvas.
type Canvas struct {
	lib *assets.Library
	cam *camera.Camera
}

// NewCanvas creates a canvas over the loaded assets.
func NewCanvas(lib *assets.Library, cam *camera.Camera) *Canvas {
	return &Canvas{lib: lib, cam: cam}
}

// Begin clears the frame and draws the empty canvas area.
func (c *Canvas) Begin() {
	rl.ClearBackground(rl.Black)
}

// DrawArt draws the artwork for a form over the whole canvas.
func (c *Canvas) DrawArt(state evolution.State, alpha float32) {
	tex := c.lib.Art[state]
	x, y, w, h := c.cam.WorldRectToScreen(0, 0, c.cam.WorldW, c.cam.WorldH)
	drawTexture(tex, rl.Rectangle{X: x, Y: y, Width: w, Height: h}, rl.Fade(rl.White, alpha))
}

// DrawButton draws the icon for a button, shaded by brightness.
func (c *Canvas) DrawButton(in evolution.Input, r button.Rect, brightness float32) {
	tex := c.lib.Icons[in]
	x, y, w, h := c.cam.WorldRectToScreen(r.X, r.Y, r.W, r.H)
	v := uint8(255 * max(0, min(1, brightness)))
	drawTexture(tex, rl.Rectangle{X: x, Y: y, Width: w, Height: h}, rl.Color{R: v, G: v, B: v, A: 255})
}

func drawTexture(tex rl.Texture2D, dst rl.Rectangle, tint rl.Color) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, tint)
}
