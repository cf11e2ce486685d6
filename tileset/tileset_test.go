package tileset

import (
	"testing"

	"github.com/milk9111/gridpaint/tilemap"
)

func TestCellRect(t *testing.T) {
	// 8 columns x 4 rows of 16px cells, built directly so the test needs no
	// atlas image.
	ts := &TileSet{cell: 16, dims: tilemap.Point{X: 8, Y: 4}}

	cases := []struct {
		name  string
		index uint32
		want  tilemap.Rect
	}{
		{"zero", 0, tilemap.Rect{X: 0, Y: 0, Width: 16, Height: 16}},
		{"first_row", 3, tilemap.Rect{X: 48, Y: 0, Width: 16, Height: 16}},
		{"row_wrap", 8, tilemap.Rect{X: 0, Y: 16, Width: 16, Height: 16}},
		{"second_row", 11, tilemap.Rect{X: 48, Y: 16, Width: 16, Height: 16}},
		{"last", 31, tilemap.Rect{X: 112, Y: 48, Width: 16, Height: 16}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ts.CellRect(c.index); got != c.want {
				t.Fatalf("CellRect(%d) = %v, want %v", c.index, got, c.want)
			}
		})
	}
}

func TestCellCount(t *testing.T) {
	ts := &TileSet{cell: 16, dims: tilemap.Point{X: 8, Y: 4}}
	if got := ts.CellCount(); got != 32 {
		t.Fatalf("CellCount = %d, want 32", got)
	}
}
