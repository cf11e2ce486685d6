package script

import (
	"image/color"
	"testing"

	"github.com/milk9111/gridpaint/tilemap"
)

type nopCanvas struct{}

func (nopCanvas) ClearRect(tilemap.Rect, color.Color)                   {}
func (nopCanvas) DrawBitmap(tilemap.Canvas, tilemap.Rect, tilemap.Vec2) {}
func (nopCanvas) StrokeRect(tilemap.Rect, float32, color.Color)         {}

type nopSurface struct{}

func (nopSurface) NewCanvas(int, int) tilemap.Canvas { return nopCanvas{} }

type nopTileSet struct{}

func (nopTileSet) CellRect(uint32) tilemap.Rect                  { return tilemap.Rect{Width: 16, Height: 16} }
func (nopTileSet) DrawCell(tilemap.Canvas, uint32, tilemap.Vec2) {}
func (nopTileSet) CellSize() int                                 { return 16 }

func TestCompileFillErrors(t *testing.T) {
	if _, err := CompileFill([]byte("tile := :=")); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestCellCheckerboard(t *testing.T) {
	f, err := CompileFill([]byte("tile = (x + y) % 2 == 0 ? 5 : -1"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		x, y      int
		wantPaint bool
	}{
		{0, 0, true},
		{1, 0, false},
		{1, 1, true},
		{2, 1, false},
	}
	for _, c := range cases {
		index, paint, err := f.Cell(c.x, c.y, 4, 4)
		if err != nil {
			t.Fatalf("cell (%d,%d): %v", c.x, c.y, err)
		}
		if paint != c.wantPaint {
			t.Fatalf("cell (%d,%d) paint = %v, want %v", c.x, c.y, paint, c.wantPaint)
		}
		if paint && index != 5 {
			t.Fatalf("cell (%d,%d) index = %d, want 5", c.x, c.y, index)
		}
	}
}

func TestCellSeesRegionSize(t *testing.T) {
	f, err := CompileFill([]byte("tile = width * height"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	index, paint, err := f.Cell(0, 0, 3, 7)
	if err != nil || !paint {
		t.Fatalf("cell: index=%d paint=%v err=%v", index, paint, err)
	}
	if index != 21 {
		t.Fatalf("index = %d, want 21", index)
	}
}

func TestApplyPaintsActiveLayer(t *testing.T) {
	m, err := tilemap.New(nopSurface{}, 256, 256, 16, 64, 1)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	f, err := CompileFill([]byte("tile = (x + y) % 2 == 0 ? 3 : -1"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if err := f.Apply(m, tilemap.Point{X: 2, Y: 2}, tilemap.Point{X: 5, Y: 5}, nopTileSet{}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	for y := 2; y <= 5; y++ {
		for x := 2; x <= 5; x++ {
			tile := m.TileAt(0, tilemap.Point{X: x, Y: y})
			wantPaint := (x-2+y-2)%2 == 0
			if tile.Occupied != wantPaint {
				t.Fatalf("tile (%d,%d) occupied = %v, want %v", x, y, tile.Occupied, wantPaint)
			}
			if wantPaint && tile.TilesetIndex != 3 {
				t.Fatalf("tile (%d,%d) index = %d, want 3", x, y, tile.TilesetIndex)
			}
		}
	}
	if tile := m.TileAt(0, tilemap.Point{X: 0, Y: 0}); tile.Occupied {
		t.Fatal("cell outside the region was painted")
	}
}
