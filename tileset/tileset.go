// Package tileset exposes a texture atlas as a grid of fixed-size cells.
package tileset

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gridpaint/render"
	"github.com/milk9111/gridpaint/tilemap"
)

// TileSet is a texture atlas plus a fixed cell size. Cells are addressed by
// a linear row-major index with dims.X columns.
type TileSet struct {
	atlas *ebiten.Image
	cell  int
	dims  tilemap.Point
}

func New(atlas *ebiten.Image, cellSize int) (*TileSet, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("tileset: cell size %d must be positive", cellSize)
	}
	b := atlas.Bounds()
	cols := b.Dx() / cellSize
	rows := b.Dy() / cellSize
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("tileset: atlas %dx%d smaller than one %dpx cell", b.Dx(), b.Dy(), cellSize)
	}
	return &TileSet{atlas: atlas, cell: cellSize, dims: tilemap.Point{X: cols, Y: rows}}, nil
}

func (t *TileSet) CellSize() int        { return t.cell }
func (t *TileSet) Dims() tilemap.Point  { return t.dims }
func (t *TileSet) CellCount() int       { return t.dims.X * t.dims.Y }
func (t *TileSet) Image() *ebiten.Image { return t.atlas }

// Swap replaces the atlas image, keeping the cell size. Used by live
// reload; the new image must share the old grid layout to keep painted
// indices meaningful.
func (t *TileSet) Swap(atlas *ebiten.Image) {
	b := atlas.Bounds()
	t.atlas = atlas
	t.dims = tilemap.Point{X: b.Dx() / t.cell, Y: b.Dy() / t.cell}
}

// CellRect returns the atlas sub-rectangle of the given cell.
func (t *TileSet) CellRect(index uint32) tilemap.Rect {
	x, y := t.cellOrigin(index)
	return tilemap.Rect{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(t.cell),
		Height: float32(t.cell),
	}
}

func (t *TileSet) cellOrigin(index uint32) (int, int) {
	if index == 0 {
		return 0, 0
	}
	i := int(index)
	return (i % t.dims.X) * t.cell, (i / t.dims.X) * t.cell
}

// DrawCell blits one atlas cell into dst at dest.
func (t *TileSet) DrawCell(dst tilemap.Canvas, index uint32, dest tilemap.Vec2) {
	dst.DrawBitmap(render.Wrap(t.atlas), t.CellRect(index), dest)
}
