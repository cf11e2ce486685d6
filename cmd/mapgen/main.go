// Command mapgen runs a fill script across a whole map without opening a
// window and reports how much of the map it painted. Useful for checking a
// script before loading it in the editor.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/script"
	"github.com/milk9111/gridpaint/tilemap"
)

type nopCanvas struct{}

func (nopCanvas) ClearRect(tilemap.Rect, color.Color)                   {}
func (nopCanvas) DrawBitmap(tilemap.Canvas, tilemap.Rect, tilemap.Vec2) {}
func (nopCanvas) StrokeRect(tilemap.Rect, float32, color.Color)         {}

// nopSurface counts chunk bitmap allocations so the report can show how
// many chunks the script touched.
type nopSurface struct {
	allocated int
}

func (s *nopSurface) NewCanvas(w, h int) tilemap.Canvas {
	s.allocated++
	return nopCanvas{}
}

type nopTileSet struct {
	cell int
}

func (t nopTileSet) CellRect(index uint32) tilemap.Rect {
	return tilemap.Rect{Width: float32(t.cell), Height: float32(t.cell)}
}

func (t nopTileSet) DrawCell(dst tilemap.Canvas, index uint32, dest tilemap.Vec2) {}

func (t nopTileSet) CellSize() int { return t.cell }

func main() {
	configFlag := flag.String("config", "", "path to an editor config file")
	scriptFlag := flag.String("script", "", "path to the fill script to run")
	layerFlag := flag.Int("layer", 0, "layer to paint")
	flag.Parse()

	if *scriptFlag == "" {
		log.Fatalf("mapgen: -script is required")
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("mapgen: %v", err)
		}
		cfg = loaded
	}

	fill, err := script.LoadFill(*scriptFlag)
	if err != nil {
		log.Fatalf("mapgen: %v", err)
	}

	surface := &nopSurface{}
	m, err := tilemap.New(surface, cfg.MapWidth, cfg.MapHeight, cfg.TileSize, cfg.ChunkSize, cfg.Layers)
	if err != nil {
		log.Fatalf("mapgen: %v", err)
	}
	m.SetActiveLayer(*layerFlag)
	ts := nopTileSet{cell: cfg.TileSize}

	dims := m.TileDims()
	bar := progressbar.New(dims.X * dims.Y)

	painted := 0
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			index, paint, err := fill.Cell(x, y, dims.X, dims.Y)
			if err != nil {
				log.Fatalf("mapgen: %v", err)
			}
			if paint {
				m.PaintTile(tilemap.Point{X: x, Y: y}, index, ts)
				painted++
			}
			bar.Add(1)
		}
	}
	bar.Finish()
	fmt.Println()

	total := dims.X * dims.Y
	chunks := m.ChunkDims()
	fmt.Printf("painted %d of %d tiles (%.1f%%)\n", painted, total, 100*float64(painted)/float64(total))
	fmt.Printf("allocated %d of %d chunks\n", surface.allocated, chunks.X*chunks.Y)
}
