package tilemap

// Tile is one cell of one layer's grid. The zero value means nothing has
// been painted at that cell on that layer.
type Tile struct {
	TilesetIndex uint32
	Occupied     bool
}

// Layer owns a dense full-map grid of tiles, row-major. The grid length is
// fixed at creation; the index for tile coordinate (x, y) is y*dims.X + x.
type Layer struct {
	tiles []Tile
	dims  Point
}

func NewLayer(dims Point) *Layer {
	return &Layer{
		tiles: make([]Tile, dims.X*dims.Y),
		dims:  dims,
	}
}

// At returns the tile at index i. The caller guarantees i is in range; the
// map derives indices from validated tile coordinates.
func (l *Layer) At(i int) Tile {
	return l.tiles[i]
}

// Set marks index i occupied with the given tileset index.
func (l *Layer) Set(i int, tilesetIndex uint32) {
	l.tiles[i] = Tile{TilesetIndex: tilesetIndex, Occupied: true}
}

func (l *Layer) Dims() Point {
	return l.dims
}
