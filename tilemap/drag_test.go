package tilemap

import "testing"

// paintRecorder captures controller-issued paint calls.
type paintRecorder struct {
	tiles   []Point
	regions [][2]Point
}

func (p *paintRecorder) PaintTile(t Point, _ uint32, _ TileSet) {
	p.tiles = append(p.tiles, t)
}

func (p *paintRecorder) PaintRegion(a, b Point, _ uint32, _ TileSet) {
	p.regions = append(p.regions, [2]Point{a, b})
}

func TestDragControllerSequences(t *testing.T) {
	ts := &fakeTileSet{cell: 16}

	cases := []struct {
		name        string
		frames      []DragInput
		wantTiles   []Point
		wantRegions [][2]Point
	}{
		{
			name: "plain_click_paints_each_frame",
			frames: []DragInput{
				{ButtonDown: true, OverMap: true, Tile: Point{X: 2, Y: 2}},
				{ButtonDown: true, OverMap: true, Tile: Point{X: 3, Y: 2}},
			},
			wantTiles: []Point{{X: 2, Y: 2}, {X: 3, Y: 2}},
		},
		{
			name: "full_drag_fires_one_region",
			frames: []DragInput{
				{ModifierHeld: true},
				{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 1, Y: 1}},
				{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 4, Y: 2}},
				{ModifierHeld: true, ButtonReleased: true, OverMap: true, Tile: Point{X: 6, Y: 5}},
			},
			wantRegions: [][2]Point{{{X: 1, Y: 1}, {X: 6, Y: 5}}},
		},
		{
			name: "modifier_release_cancels_anchor",
			frames: []DragInput{
				{ModifierHeld: true},
				{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 1, Y: 1}},
				{}, // modifier released before the button
				{ButtonReleased: true, OverMap: true, Tile: Point{X: 5, Y: 5}},
			},
		},
		{
			name: "release_then_second_drag_rearms",
			frames: []DragInput{
				{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 0, Y: 0}},
				{ModifierHeld: true, ButtonReleased: true, OverMap: true, Tile: Point{X: 2, Y: 2}},
				{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 7, Y: 7}},
				{ModifierHeld: true, ButtonReleased: true, OverMap: true, Tile: Point{X: 8, Y: 9}},
			},
			wantRegions: [][2]Point{
				{{X: 0, Y: 0}, {X: 2, Y: 2}},
				{{X: 7, Y: 7}, {X: 8, Y: 9}},
			},
		},
		{
			name: "armed_press_off_map_does_not_anchor",
			frames: []DragInput{
				{ModifierHeld: true, ButtonDown: true, OverMap: false, Tile: Point{X: -1, Y: 0}},
				{ModifierHeld: true, ButtonReleased: true, OverMap: false},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := &paintRecorder{}
			ctl := NewDragController()
			for _, frame := range c.frames {
				ctl.Update(frame, 1, ts, rec)
			}
			if len(rec.tiles) != len(c.wantTiles) {
				t.Fatalf("tile paints = %v, want %v", rec.tiles, c.wantTiles)
			}
			for i := range c.wantTiles {
				if rec.tiles[i] != c.wantTiles[i] {
					t.Fatalf("tile paint %d = %v, want %v", i, rec.tiles[i], c.wantTiles[i])
				}
			}
			if len(rec.regions) != len(c.wantRegions) {
				t.Fatalf("region paints = %v, want %v", rec.regions, c.wantRegions)
			}
			for i := range c.wantRegions {
				if rec.regions[i] != c.wantRegions[i] {
					t.Fatalf("region paint %d = %v, want %v", i, rec.regions[i], c.wantRegions[i])
				}
			}
		})
	}
}

func TestDragControllerAnchorAccessors(t *testing.T) {
	ctl := NewDragController()
	ts := &fakeTileSet{cell: 16}
	rec := &paintRecorder{}

	if ctl.Anchored() {
		t.Fatal("new controller should not be anchored")
	}
	ctl.Update(DragInput{ModifierHeld: true, ButtonDown: true, OverMap: true, Tile: Point{X: 3, Y: 4}}, 1, ts, rec)
	if !ctl.Anchored() || ctl.Anchor() != (Point{X: 3, Y: 4}) {
		t.Fatalf("anchored = %v anchor = %v", ctl.Anchored(), ctl.Anchor())
	}
	ctl.Update(DragInput{}, 1, ts, rec)
	if ctl.Anchored() {
		t.Fatal("modifier release should clear the anchor")
	}
}
