// Package camera provides a 2D camera system for viewport control.
package camera

// Camera controls the viewport onto the habitat surface.
// The surface does not wrap: panning is clamped so the view never
// drifts far away from the placeable area.
type Camera struct {
	// Position is the camera center in surface coordinates
	X, Y float32

	// Zoom level in screen pixels per surface unit
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Surface dimensions (for clamping)
	SurfaceW, SurfaceH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the surface, zoomed so the whole
// surface fits the viewport with a small margin.
func New(viewportW, viewportH, surfaceW, surfaceH float32) *Camera {
	c := &Camera{
		X:         surfaceW / 2,
		Y:         surfaceH / 2,
		ViewportW: viewportW,
		ViewportH: viewportH,
		SurfaceW:  surfaceW,
		SurfaceH:  surfaceH,
	}
	fit := c.fitZoom()
	c.Zoom = fit * 0.9
	c.MinZoom = fit * 0.25
	c.MaxZoom = fit * 8
	return c
}

// fitZoom is the zoom at which the whole surface exactly fills the
// smaller viewport dimension.
func (c *Camera) fitZoom() float32 {
	zx := c.ViewportW / c.SurfaceW
	zy := c.ViewportH / c.SurfaceH
	if zy < zx {
		return zy
	}
	return zx
}

// WorldToScreen converts surface coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to surface coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// Pan moves the camera by the given delta in screen pixels, clamped so
// the camera center stays over the surface.
func (c *Camera) Pan(dx, dy float32) {
	c.X = clamp(c.X+dx/c.Zoom, 0, c.SurfaceW)
	c.Y = clamp(c.Y+dy/c.Zoom, 0, c.SurfaceH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	fit := c.fitZoom()
	c.MinZoom = fit * 0.25
	c.MaxZoom = fit * 8
	c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxZoom)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = c.SurfaceW / 2
	c.Y = c.SurfaceH / 2
	c.Zoom = c.fitZoom() * 0.9
}

// VisibleWorldBounds returns the surface-coordinate bounds of the
// visible area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
