package tilemap

import "testing"

func TestTileRoundTrip(t *testing.T) {
	const tileSize = 16
	dims := Point{X: 20, Y: 15}
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			tile := Point{X: x, Y: y}
			if got := WorldToTile(TileToWorld(tile, tileSize), tileSize); got != tile {
				t.Fatalf("round trip of %v = %v", tile, got)
			}
		}
	}
}

func TestWorldToTileInterior(t *testing.T) {
	cases := []struct {
		name string
		p    Vec2
		size int
		want Point
	}{
		{"origin", Vec2{}, 16, Point{}},
		{"inside_first", Vec2{X: 15.9, Y: 15.9}, 16, Point{}},
		{"cell_boundary", Vec2{X: 16, Y: 16}, 16, Point{X: 1, Y: 1}},
		{"deep", Vec2{X: 529, Y: 70}, 16, Point{X: 33, Y: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WorldToTile(c.p, c.size); got != c.want {
				t.Fatalf("WorldToTile(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestChunkLocal(t *testing.T) {
	cases := []struct {
		name  string
		p     Vec2
		chunk Point
		size  int
		want  Vec2
	}{
		{"first_chunk", Vec2{X: 10, Y: 20}, Point{}, 64, Vec2{X: 10, Y: 20}},
		{"second_column", Vec2{X: 70, Y: 20}, Point{X: 1}, 64, Vec2{X: 6, Y: 20}},
		{"chunk_corner", Vec2{X: 128, Y: 128}, Point{X: 2, Y: 2}, 64, Vec2{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ChunkLocal(c.p, c.chunk, c.size); got != c.want {
				t.Fatalf("ChunkLocal(%v, %v) = %v, want %v", c.p, c.chunk, got, c.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	cases := []struct {
		name   string
		a, b   Rect
		want   Rect
		wantOK bool
	}{
		{
			"partial_overlap",
			Rect{X: 0, Y: 0, Width: 64, Height: 64},
			Rect{X: 32, Y: 48, Width: 64, Height: 64},
			Rect{X: 32, Y: 48, Width: 32, Height: 16},
			true,
		},
		{
			"contained",
			Rect{X: 0, Y: 0, Width: 64, Height: 64},
			Rect{X: 16, Y: 16, Width: 8, Height: 8},
			Rect{X: 16, Y: 16, Width: 8, Height: 8},
			true,
		},
		{
			"disjoint",
			Rect{X: 0, Y: 0, Width: 64, Height: 64},
			Rect{X: 100, Y: 0, Width: 10, Height: 10},
			Rect{},
			false,
		},
		{
			"touching_edge_is_empty_overlap",
			Rect{X: 0, Y: 0, Width: 64, Height: 64},
			Rect{X: 64, Y: 0, Width: 64, Height: 64},
			Rect{X: 64, Y: 0, Width: 0, Height: 64},
			true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.a.Intersect(c.b)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("Intersect = %v, %v; want %v, %v", got, ok, c.want, c.wantOK)
			}
		})
	}
}
