package tilemap

import (
	"fmt"
	"image/color"
)

var borderColor = color.RGBA{R: 0x50, G: 0x50, B: 0x58, A: 0xff}

// TileMap owns the stacked layers and the chunk grid, and exposes the paint
// and draw operations. Paint cost scales with the edited area, never with
// the total map size.
type TileMap struct {
	surface Surface

	layers []*Layer
	active int

	chunks    [][]*Chunk // [y][x]
	chunkDims Point

	tileDims  Point
	tileSize  int
	chunkSize int
	bounds    Rect
}

// New builds a map covering mapWidth x mapHeight world pixels. chunkSize
// must be a multiple of tileSize and the map dimensions multiples of
// chunkSize, so that tile-to-chunk-local mapping stays exact.
func New(s Surface, mapWidth, mapHeight, tileSize, chunkSize, layerCount int) (*TileMap, error) {
	if tileSize <= 0 || chunkSize <= 0 {
		return nil, fmt.Errorf("tilemap: tile size %d and chunk size %d must be positive", tileSize, chunkSize)
	}
	if chunkSize%tileSize != 0 {
		return nil, fmt.Errorf("tilemap: chunk size %d is not a multiple of tile size %d", chunkSize, tileSize)
	}
	if mapWidth%chunkSize != 0 || mapHeight%chunkSize != 0 {
		return nil, fmt.Errorf("tilemap: map size %dx%d is not a multiple of chunk size %d", mapWidth, mapHeight, chunkSize)
	}
	if layerCount < 1 {
		return nil, fmt.Errorf("tilemap: need at least one layer, got %d", layerCount)
	}

	tileDims := Point{X: mapWidth / tileSize, Y: mapHeight / tileSize}
	chunkDims := Point{X: mapWidth / chunkSize, Y: mapHeight / chunkSize}

	layers := make([]*Layer, layerCount)
	for i := range layers {
		layers[i] = NewLayer(tileDims)
	}

	chunks := make([][]*Chunk, chunkDims.Y)
	for y := range chunks {
		chunks[y] = make([]*Chunk, chunkDims.X)
		for x := range chunks[y] {
			chunks[y][x] = newChunk(Rect{
				X:      float32(x * chunkSize),
				Y:      float32(y * chunkSize),
				Width:  float32(chunkSize),
				Height: float32(chunkSize),
			})
		}
	}

	return &TileMap{
		surface:   s,
		layers:    layers,
		chunks:    chunks,
		chunkDims: chunkDims,
		tileDims:  tileDims,
		tileSize:  tileSize,
		chunkSize: chunkSize,
		bounds:    Rect{Width: float32(mapWidth), Height: float32(mapHeight)},
	}, nil
}

func (m *TileMap) Bounds() Rect     { return m.bounds }
func (m *TileMap) TileDims() Point  { return m.tileDims }
func (m *TileMap) ChunkDims() Point { return m.chunkDims }
func (m *TileMap) TileSize() int    { return m.tileSize }
func (m *TileMap) ChunkSize() int   { return m.chunkSize }
func (m *TileMap) LayerCount() int  { return len(m.layers) }

func (m *TileMap) ActiveLayer() int { return m.active }

// SetActiveLayer selects which layer subsequent paints mutate. Out-of-range
// indices are ignored so the selector stays valid.
func (m *TileMap) SetActiveLayer(i int) {
	if i < 0 || i >= len(m.layers) {
		return
	}
	m.active = i
}

// Contains reports whether t is a valid tile coordinate. Paint entry points
// expect the caller to have checked this already.
func (m *TileMap) Contains(t Point) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < m.tileDims.X && t.Y < m.tileDims.Y
}

// TileAt returns the tile at t on the given layer.
func (m *TileMap) TileAt(layer int, t Point) Tile {
	return m.layers[layer].At(t.Y*m.tileDims.X + t.X)
}

// ChunkAt returns the chunk at chunk coordinate c, for probing allocation
// state.
func (m *TileMap) ChunkAt(c Point) *Chunk {
	return m.chunks[c.Y][c.X]
}

// PaintTile writes one tile on the active layer and recomposites the
// affected chunk cell. Repainting an occupied cell with the same index is a
// no-op, so holding the button over one cell costs nothing after the first
// frame. The caller has already confirmed t lies inside the map.
func (m *TileMap) PaintTile(t Point, tilesetIndex uint32, ts TileSet) {
	i := t.Y*m.tileDims.X + t.X
	layer := m.layers[m.active]
	if cur := layer.At(i); cur.Occupied && cur.TilesetIndex == tilesetIndex {
		return
	}
	layer.Set(i, tilesetIndex)

	world := TileToWorld(t, m.tileSize)
	cc := WorldToChunk(world, m.chunkSize)
	ch := m.chunks[cc.Y][cc.X]
	ch.ensure(m.surface)

	local := ChunkLocal(world, cc, m.chunkSize)
	ch.clearLocal(Rect{X: local.X, Y: local.Y, Width: float32(m.tileSize), Height: float32(m.tileSize)})
	m.compositeCell(ch, i, local, ts)
}

// compositeCell redraws all occupied layers at one cell, bottom to top.
// Editing a lower layer must not lose an occupied upper-layer tile that was
// already drawn over it, so the whole stack is redrawn for exactly this
// cell rather than only the edited layer.
func (m *TileMap) compositeCell(ch *Chunk, tileIndex int, local Vec2, ts TileSet) {
	for _, layer := range m.layers {
		t := layer.At(tileIndex)
		if !t.Occupied {
			continue
		}
		ch.drawCell(ts, t.TilesetIndex, local)
	}
}

// PaintRegion bulk-paints the axis-aligned tile rectangle spanned by the
// two corner tiles (inclusive, in either order) onto the active layer. The
// paint rectangle is clipped against every chunk; chunks outside it are
// skipped without touching their bitmaps.
func (m *TileMap) PaintRegion(start, end Point, tilesetIndex uint32, ts TileSet) {
	minX, maxX := minMax(start.X, end.X)
	minY, maxY := minMax(start.Y, end.Y)

	paint := Rect{
		X:      float32(minX * m.tileSize),
		Y:      float32(minY * m.tileSize),
		Width:  max32(float32((maxX-minX+1)*m.tileSize), float32(m.tileSize)),
		Height: max32(float32((maxY-minY+1)*m.tileSize), float32(m.tileSize)),
	}

	for cy := range m.chunks {
		for cx := range m.chunks[cy] {
			ch := m.chunks[cy][cx]
			overlap, ok := ch.Bounds().Intersect(paint)
			if !ok {
				continue
			}
			ch.ensure(m.surface)

			cc := Point{X: cx, Y: cy}
			local := ChunkLocal(Vec2{X: overlap.X, Y: overlap.Y}, cc, m.chunkSize)
			ch.clearLocal(Rect{X: local.X, Y: local.Y, Width: overlap.Width, Height: overlap.Height})

			// Tile range covered by the clipped rectangle. Both bounds are
			// tile-aligned because chunks and the paint rect are.
			x0 := int(overlap.X) / m.tileSize
			y0 := int(overlap.Y) / m.tileSize
			x1 := int(overlap.X+overlap.Width) / m.tileSize
			y1 := int(overlap.Y+overlap.Height) / m.tileSize

			for ty := y0; ty < y1; ty++ {
				for tx := x0; tx < x1; tx++ {
					i := ty*m.tileDims.X + tx
					m.layers[m.active].Set(i, tilesetIndex)
					m.compositeCell(ch, i, ChunkLocal(TileToWorld(Point{X: tx, Y: ty}, m.tileSize), cc, m.chunkSize), ts)
				}
			}
		}
	}
}

// Draw culls the chunk grid against the visible world rectangle and blits
// the cached bitmaps of the chunks in view. Chunks that were never painted
// have no bitmap and are skipped.
func (m *TileMap) Draw(dst Canvas, cam Camera, screenWidth, screenHeight int) {
	ts := float32(m.tileSize)
	dst.StrokeRect(Rect{
		X:      m.bounds.X - ts,
		Y:      m.bounds.Y - ts,
		Width:  m.bounds.Width + 2*ts,
		Height: m.bounds.Height + 2*ts,
	}, 1, borderColor)

	topLeft := cam.ScreenToWorld(Vec2{})
	bottomRight := cam.ScreenToWorld(Vec2{X: float32(screenWidth), Y: float32(screenHeight)})

	limitX := float32(m.chunkDims.X * m.chunkSize)
	limitY := float32(m.chunkDims.Y * m.chunkSize)
	topLeft = clampVec(topLeft, limitX, limitY)
	bottomRight = clampVec(bottomRight, limitX, limitY)

	c0 := WorldToChunk(topLeft, m.chunkSize)
	c1 := WorldToChunk(bottomRight, m.chunkSize)
	c0 = clampPoint(c0, m.chunkDims)
	c1 = clampPoint(c1, m.chunkDims)

	for cy := c0.Y; cy <= c1.Y; cy++ {
		for cx := c0.X; cx <= c1.X; cx++ {
			ch := m.chunks[cy][cx]
			if !ch.Allocated() {
				continue
			}
			ch.blit(dst, Vec2{X: ch.Bounds().X, Y: ch.Bounds().Y})
		}
	}
}

func clampVec(p Vec2, limitX, limitY float32) Vec2 {
	return Vec2{
		X: min32(max32(p.X, 0), limitX),
		Y: min32(max32(p.Y, 0), limitY),
	}
}

func clampPoint(p, dims Point) Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X > dims.X-1 {
		p.X = dims.X - 1
	}
	if p.Y > dims.Y-1 {
		p.Y = dims.Y - 1
	}
	return p
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
