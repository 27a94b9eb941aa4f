// Package camera maps the fixed art canvas onto the window.
package camera

// Camera fits the world canvas inside the viewport, preserving its aspect
// ratio and centering it (letterboxed on the longer axis).
type Camera struct {
	// World dimensions (the art canvas)
	WorldW, WorldH float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom is screen pixels per world unit
	Zoom float32

	// Screen position of the world origin
	OffsetX, OffsetY float32
}

// New creates a camera fitting a worldW x worldH canvas into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		WorldW: worldW,
		WorldH: worldH,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and refits the canvas.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	// The tighter axis decides the zoom
	c.Zoom = min(viewportW/c.WorldW, viewportH/c.WorldH)

	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom, c.OffsetY + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
// Points in the letterbox bars map outside the canvas.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	if c.Zoom == 0 {
		return 0, 0
	}
	return (sx - c.OffsetX) / c.Zoom, (sy - c.OffsetY) / c.Zoom
}

// WorldRectToScreen converts a world rectangle to screen space.
func (c *Camera) WorldRectToScreen(x, y, w, h float32) (sx, sy, sw, sh float32) {
	sx, sy = c.WorldToScreen(x, y)
	return sx, sy, w * c.Zoom, h * c.Zoom
}

// InWorld reports whether a world point lies on the canvas.
func (c *Camera) InWorld(wx, wy float32) bool {
	return wx >= 0 && wx <= c.WorldW && wy >= 0 && wy <= c.WorldH
}
