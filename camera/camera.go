// Package camera provides the editor's pan/zoom view over the map.
package camera

import (
	"math"

	"github.com/milk9111/gridpaint/common"
	"github.com/milk9111/gridpaint/tilemap"
)

// Camera centers the view on a world coordinate and supports zoom. The
// editor pans it directly; Glide moves it smoothly toward a target.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1) for Glide. higher -> faster approach
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial
// zoom, centered on the screen center in world coordinates.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.2}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping the camera
// position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy int) {
	c.PosX -= float64(dx) / c.zoom
	c.PosY -= float64(dy) / c.zoom
	c.clampToWorld()
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor float64, sx, sy int) {
	before := c.ScreenToWorld(tilemap.Vec2{X: float32(sx), Y: float32(sy)})
	c.zoom = common.Clamp(c.zoom*factor, 0.25, 8.0)
	after := c.ScreenToWorld(tilemap.Vec2{X: float32(sx), Y: float32(sy)})
	c.PosX += float64(before.X - after.X)
	c.PosY += float64(before.Y - after.Y)
	c.clampToWorld()
}

// Glide moves the camera center toward the given world coordinate using the
// smoothing factor. Call once per frame.
func (c *Camera) Glide(x, y float64) {
	if c.smooth <= 0 {
		c.PosX = x
		c.PosY = y
	} else {
		c.PosX = common.Lerp(c.PosX, x, c.smooth)
		c.PosY = common.Lerp(c.PosY, y, c.smooth)
	}
	// snap to the 1/zoom grid to align source texels to screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}
	c.clampToWorld()
}

// SnapTo immediately centers the camera on the given world coordinate.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clampToWorld()
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// ViewOffset returns the screen-space translation that maps world
// coordinates into view, for building a world-space render target.
func (c *Camera) ViewOffset() (float64, float64) {
	tx, ty := c.ViewTopLeft()
	return -tx * c.zoom, -ty * c.zoom
}

// ScreenToWorld maps a screen position through the current pan/zoom.
func (c *Camera) ScreenToWorld(p tilemap.Vec2) tilemap.Vec2 {
	tx, ty := c.ViewTopLeft()
	return tilemap.Vec2{
		X: float32(tx + float64(p.X)/c.zoom),
		Y: float32(ty + float64(p.Y)/c.zoom),
	}
}

func (c *Camera) clampToWorld() {
	if c.worldW <= 0 || c.worldH <= 0 {
		return
	}
	// allow half a view of slack so the map edge can reach the screen center
	c.PosX = common.Clamp(c.PosX, 0, c.worldW)
	c.PosY = common.Clamp(c.PosY, 0, c.worldH)
}
