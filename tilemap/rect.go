package tilemap

// Vec2 is a point in world (pixel) space.
type Vec2 struct {
	X, Y float32
}

// Point is an integer coordinate in the tile grid or the chunk grid.
type Point struct {
	X, Y int
}

type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersect returns the overlapping rectangle of r and other. The second
// return is false when the rectangles do not overlap; the zero Rect is
// returned in that case.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x1 := max32(r.X, other.X)
	y1 := max32(r.Y, other.Y)
	x2 := min32(r.X+r.Width, other.X+other.Width)
	y2 := min32(r.Y+r.Height, other.Y+other.Height)
	if x2 < x1 || y2 < y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
