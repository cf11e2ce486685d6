package tilemap

// Painter is the paint surface the drag controller drives. *TileMap
// satisfies it.
type Painter interface {
	PaintTile(t Point, tilesetIndex uint32, ts TileSet)
	PaintRegion(start, end Point, tilesetIndex uint32, ts TileSet)
}

type dragState int

const (
	dragIdle dragState = iota
	dragArmed
	dragAnchored
)

// DragInput is one frame of the pointer state the controller consumes. The
// caller resolves the cursor to a tile coordinate and performs the
// map-bounds check before filling it in.
type DragInput struct {
	ModifierHeld   bool
	ButtonDown     bool
	ButtonReleased bool
	OverMap        bool
	Tile           Point
}

// DragController turns a modifier+press/drag/release sequence into a single
// region paint. Outside a drag it forwards button-down frames as single
// tile paints; PaintTile's idempotence keeps the repeated calls free.
type DragController struct {
	state  dragState
	anchor Point
}

func NewDragController() *DragController {
	return &DragController{}
}

// Anchored reports whether a drag anchor is currently set.
func (d *DragController) Anchored() bool {
	return d.state == dragAnchored
}

// Anchor returns the anchored tile. Only meaningful while Anchored.
func (d *DragController) Anchor() Point {
	return d.anchor
}

// Update advances the state machine by one frame and issues at most one
// paint call on p.
func (d *DragController) Update(in DragInput, tilesetIndex uint32, ts TileSet, p Painter) {
	// Releasing the modifier cancels any pending region without painting.
	if !in.ModifierHeld {
		d.state = dragIdle
		if in.ButtonDown && in.OverMap {
			p.PaintTile(in.Tile, tilesetIndex, ts)
		}
		return
	}

	switch d.state {
	case dragIdle:
		d.state = dragArmed
		fallthrough
	case dragArmed:
		if in.ButtonDown && in.OverMap {
			d.anchor = in.Tile
			d.state = dragAnchored
		}
	case dragAnchored:
		if in.ButtonReleased {
			end := in.Tile
			if !in.OverMap {
				end = d.anchor
			}
			p.PaintRegion(d.anchor, end, tilesetIndex, ts)
			d.state = dragArmed
		}
	}
}
