package tilemap

// Coordinate transforms between world (pixel) space, the tile grid and the
// chunk grid. All divisions truncate toward zero, so callers must clamp
// world positions to the map bounds before converting; negative inputs are
// not meaningful here.

// WorldToTile returns the tile coordinate containing the world position p.
func WorldToTile(p Vec2, tileSize int) Point {
	return Point{
		X: int(p.X) / tileSize,
		Y: int(p.Y) / tileSize,
	}
}

// WorldToChunk returns the chunk coordinate containing the world position p.
func WorldToChunk(p Vec2, chunkSize int) Point {
	return Point{
		X: int(p.X) / chunkSize,
		Y: int(p.Y) / chunkSize,
	}
}

// TileToWorld returns the world position of tile t's top-left corner.
func TileToWorld(t Point, tileSize int) Vec2 {
	return Vec2{
		X: float32(t.X * tileSize),
		Y: float32(t.Y * tileSize),
	}
}

// ChunkLocal converts a world position to a position inside the bitmap of
// the chunk at chunk coordinate c.
func ChunkLocal(p Vec2, c Point, chunkSize int) Vec2 {
	return Vec2{
		X: p.X - float32(c.X*chunkSize),
		Y: p.Y - float32(c.Y*chunkSize),
	}
}
