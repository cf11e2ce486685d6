package tilemap

import "image/color"

// Canvas is a render target: either the screen (with the camera transform
// applied by the renderer) or a chunk's offscreen bitmap. Making the target
// explicit keeps every draw call tied to exactly one canvas instead of an
// ambient render mode.
type Canvas interface {
	// ClearRect replaces the pixels of the given sub-rectangle with clr,
	// without blending.
	ClearRect(r Rect, clr color.Color)
	// DrawBitmap draws the sourceRect region of src at dest. A negative
	// sourceRect height samples src vertically flipped.
	DrawBitmap(src Canvas, sourceRect Rect, dest Vec2)
	// StrokeRect draws a rectangle outline.
	StrokeRect(r Rect, thickness float32, clr color.Color)
}

// Surface allocates offscreen canvases for chunk bitmaps. Offscreen
// canvases store their rows bottom-up: drawing into one mirrors the
// destination vertically, so blitting it elsewhere with a negated source
// height produces upright content. Allocation failure is fatal in the
// concrete renderer and never reaches the map.
type Surface interface {
	NewCanvas(width, height int) Canvas
}

// TileSet is a texture atlas with fixed-size square cells, borrowed
// read-only by paint and draw operations. Cells are addressed by a linear
// row-major index.
type TileSet interface {
	// CellRect returns the atlas sub-rectangle of the given cell.
	CellRect(index uint32) Rect
	// DrawCell blits one atlas cell into dst at dest.
	DrawCell(dst Canvas, index uint32, dest Vec2)
	// CellSize returns the cell edge length in pixels.
	CellSize() int
}

// Camera maps screen positions to world positions under the current
// pan/zoom. The map treats it as an opaque transform.
type Camera interface {
	ScreenToWorld(p Vec2) Vec2
}
