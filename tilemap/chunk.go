package tilemap

import "image/color"

var chunkClearColor = color.RGBA{}

// Chunk caches the composited pixels of one fixed-size sub-region of the
// map. The bitmap stays nil until a paint first touches the chunk; a chunk
// that was never painted renders as background.
type Chunk struct {
	bounds Rect
	bitmap Canvas
}

func newChunk(bounds Rect) *Chunk {
	return &Chunk{bounds: bounds}
}

// Bounds returns the world-space rectangle this chunk covers.
func (c *Chunk) Bounds() Rect {
	return c.bounds
}

// Allocated reports whether the cached bitmap exists yet.
func (c *Chunk) Allocated() bool {
	return c.bitmap != nil
}

// ensure materializes the cached bitmap on first use. Idempotent.
func (c *Chunk) ensure(s Surface) {
	if c.bitmap != nil {
		return
	}
	c.bitmap = s.NewCanvas(int(c.bounds.Width), int(c.bounds.Height))
}

// clearLocal resets a chunk-local sub-rectangle to the background fill so
// small edits don't have to clear the whole bitmap.
func (c *Chunk) clearLocal(r Rect) {
	c.bitmap.ClearRect(r, chunkClearColor)
}

// drawCell blits one tileset cell into the bitmap at a chunk-local position.
func (c *Chunk) drawCell(ts TileSet, index uint32, local Vec2) {
	ts.DrawCell(c.bitmap, index, local)
}

// blit draws the cached bitmap to dst at the given world position. The
// bitmap's rows are stored bottom-up, so the source height is negated to
// sample it flipped and land the content upright on dst.
func (c *Chunk) blit(dst Canvas, pos Vec2) {
	src := Rect{X: 0, Y: 0, Width: c.bounds.Width, Height: -c.bounds.Height}
	dst.DrawBitmap(c.bitmap, src, pos)
}
