// Package script runs tengo fill scripts that paint tile regions
// procedurally. A script is evaluated once per cell with the globals x, y,
// width and height set, and assigns the tileset index to paint to `tile`
// (a negative value leaves the cell untouched).
package script

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gridpaint/tilemap"
)

type Fill struct {
	compiled *tengo.Compiled
}

// LoadFill compiles a fill script from a file.
func LoadFill(path string) (*Fill, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	f, err := CompileFill(src)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	return f, nil
}

// CompileFill compiles fill script source.
func CompileFill(src []byte) (*Fill, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))
	for _, name := range []string{"x", "y", "width", "height"} {
		if err := s.Add(name, 0); err != nil {
			return nil, fmt.Errorf("script: add %s: %w", name, err)
		}
	}
	if err := s.Add("tile", -1); err != nil {
		return nil, fmt.Errorf("script: add tile: %w", err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Fill{compiled: compiled}, nil
}

// Cell evaluates the script for one cell of a width x height region. The
// second return is false when the script left the cell unpainted.
func (f *Fill) Cell(x, y, width, height int) (uint32, bool, error) {
	c := f.compiled.Clone()
	if err := c.Set("x", x); err != nil {
		return 0, false, err
	}
	if err := c.Set("y", y); err != nil {
		return 0, false, err
	}
	if err := c.Set("width", width); err != nil {
		return 0, false, err
	}
	if err := c.Set("height", height); err != nil {
		return 0, false, err
	}
	if err := c.Run(); err != nil {
		return 0, false, fmt.Errorf("script: cell (%d,%d): %w", x, y, err)
	}
	tile := c.Get("tile").Int()
	if tile < 0 {
		return 0, false, nil
	}
	return uint32(tile), true, nil
}

// Apply paints the rectangle spanned by the corner tiles a and b (inclusive,
// either order) on m's active layer, one PaintTile per scripted cell. Cells
// the script skips keep their current state.
func (f *Fill) Apply(m *tilemap.TileMap, a, b tilemap.Point, ts tilemap.TileSet) error {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	width := maxX - minX + 1
	height := maxY - minY + 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index, paint, err := f.Cell(x, y, width, height)
			if err != nil {
				return err
			}
			if !paint {
				continue
			}
			m.PaintTile(tilemap.Point{X: minX + x, Y: minY + y}, index, ts)
		}
	}
	return nil
}
