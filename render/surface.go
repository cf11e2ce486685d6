// Package render implements the map core's drawing contracts on top of
// ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/gridpaint/tilemap"
)

// Surface allocates offscreen canvases backed by ebiten images.
type Surface struct{}

func NewSurface() *Surface { return &Surface{} }

func (s *Surface) NewCanvas(width, height int) tilemap.Canvas {
	return &Canvas{img: ebiten.NewImage(width, height), flipY: true}
}

// Canvas wraps an ebiten image as a tilemap.Canvas. A canvas created with
// NewView additionally applies the camera's zoom and offset to draw calls,
// so the map draws in world coordinates. Offscreen canvases store their
// rows bottom-up (flipY): draws into them mirror the destination so that
// sampling with a negated source height yields upright content.
type Canvas struct {
	img *ebiten.Image

	flipY bool

	viewed     bool
	zoom       float64
	offX, offY float64
}

// Wrap exposes an existing image (e.g. a chunk bitmap or a widget target)
// as a canvas with no view transform.
func Wrap(img *ebiten.Image) *Canvas {
	return &Canvas{img: img}
}

// NewView wraps the screen with the camera transform baked in: draw calls
// take world coordinates and land at the right screen pixels.
func NewView(screen *ebiten.Image, zoom, offsetX, offsetY float64) *Canvas {
	return &Canvas{img: screen, viewed: true, zoom: zoom, offX: offsetX, offY: offsetY}
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) ClearRect(r tilemap.Rect, clr color.Color) {
	y := r.Y
	if c.flipY {
		y = float32(c.img.Bounds().Dy()) - r.Y - r.Height
	}
	x0, y0 := c.project(r.X, y)
	x1, y1 := c.project(r.X+r.Width, y+r.Height)
	sub := c.img.SubImage(image.Rect(int(x0), int(y0), int(x1), int(y1))).(*ebiten.Image)
	sub.Fill(clr)
}

func (c *Canvas) DrawBitmap(src tilemap.Canvas, sourceRect tilemap.Rect, dest tilemap.Vec2) {
	from, ok := src.(*Canvas)
	if !ok {
		return
	}

	h := sourceRect.Height
	negated := h < 0
	if negated {
		h = -h
	}
	region := image.Rect(
		int(sourceRect.X), int(sourceRect.Y),
		int(sourceRect.X+sourceRect.Width), int(sourceRect.Y)+int(h),
	)
	sub := from.img.SubImage(region).(*ebiten.Image)

	// A negated source height flips the sampled content; drawing into a
	// bottom-up canvas flips it again, so the two cancel.
	op := &ebiten.DrawImageOptions{}
	if negated != c.flipY {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(h))
	}
	destY := float64(dest.Y)
	if c.flipY {
		destY = float64(c.img.Bounds().Dy()) - float64(dest.Y) - float64(h)
	}
	op.GeoM.Translate(float64(dest.X), destY)
	if c.viewed {
		op.GeoM.Scale(c.zoom, c.zoom)
		op.GeoM.Translate(c.offX, c.offY)
	}
	c.img.DrawImage(sub, op)
}

func (c *Canvas) StrokeRect(r tilemap.Rect, thickness float32, clr color.Color) {
	x, y := c.project(r.X, r.Y)
	w, h := r.Width, r.Height
	if c.viewed {
		w = float32(float64(w) * c.zoom)
		h = float32(float64(h) * c.zoom)
	}
	vector.StrokeRect(c.img, x, y, w, h, thickness, clr, false)
}

func (c *Canvas) project(x, y float32) (float32, float32) {
	if !c.viewed {
		return x, y
	}
	return float32(float64(x)*c.zoom + c.offX), float32(float64(y)*c.zoom + c.offY)
}
