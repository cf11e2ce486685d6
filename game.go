package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/milk9111/gridpaint/assets"
	"github.com/milk9111/gridpaint/camera"
	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/input"
	"github.com/milk9111/gridpaint/render"
	"github.com/milk9111/gridpaint/script"
	"github.com/milk9111/gridpaint/tilemap"
	"github.com/milk9111/gridpaint/tileset"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	// panelWidth is the tileset/layer panel docked on the right.
	panelWidth = 220
)

var (
	backgroundColor = color.RGBA{R: 0x16, G: 0x16, B: 0x1c, A: 0xff}
	hoverColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0}
	regionColor     = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
)

type Game struct {
	cfg    config.Config
	frames int

	in   *input.Input
	cam  *camera.Camera
	tmap *tilemap.TileMap
	ts   *tileset.TileSet
	drag *tilemap.DragController

	panel *Panel
	fill  *script.Fill

	watcher     *assets.Watcher
	clipboardOK bool

	panActive          bool
	lastPanX, lastPanY int

	hoverTile tilemap.Point
	hoverOK   bool

	screenW int
	screenH int
}

func NewGame(cfg config.Config, fillPath string) (*Game, error) {
	surface := render.NewSurface()

	tmap, err := tilemap.New(surface, cfg.MapWidth, cfg.MapHeight, cfg.TileSize, cfg.ChunkSize, cfg.Layers)
	if err != nil {
		return nil, err
	}

	atlas := assets.DefaultTileset
	if cfg.TilesetPath != "" {
		img, err := assets.LoadImage(cfg.TilesetPath)
		if err != nil {
			return nil, fmt.Errorf("load tileset %s: %w", cfg.TilesetPath, err)
		}
		atlas = img
	}
	ts, err := tileset.New(atlas, cfg.TilesetCell)
	if err != nil {
		return nil, err
	}

	cam := camera.NewCamera(baseWidth, baseHeight, 1.0)
	cam.SetWorldBounds(cfg.MapWidth, cfg.MapHeight)
	cam.SnapTo(baseWidth/2.0, baseHeight/2.0)

	g := &Game{
		cfg:     cfg,
		in:      input.NewInput(),
		cam:     cam,
		tmap:    tmap,
		ts:      ts,
		drag:    tilemap.NewDragController(),
		screenW: baseWidth + panelWidth,
		screenH: baseHeight,
	}
	g.panel = NewPanel(g)

	if fillPath != "" {
		f, err := script.LoadFill(fillPath)
		if err != nil {
			log.Printf("fill script disabled: %v", err)
		} else {
			g.fill = f
		}
	}

	if cfg.TilesetPath != "" {
		w, err := assets.NewWatcher(filepath.Dir(cfg.TilesetPath))
		if err != nil {
			log.Printf("tileset watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard disabled: %v", err)
	} else {
		g.clipboardOK = true
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.in.Update()
	g.panel.Update()
	g.pollTilesetReload()

	inPanel := g.in.CursorX >= g.screenW-panelWidth

	// Zoom at the cursor with the wheel, canvas area only.
	if g.in.WheelY != 0 && !inPanel {
		factor := 1.1
		if g.in.WheelY < 0 {
			factor = 1.0 / 1.1
		}
		g.cam.ZoomAt(factor, g.in.CursorX, g.in.CursorY)
	}

	// Middle-button drag pans the canvas.
	if g.in.MiddleDown {
		if !g.panActive {
			g.panActive = true
			g.lastPanX, g.lastPanY = g.in.CursorX, g.in.CursorY
		}
		g.cam.Pan(g.in.CursorX-g.lastPanX, g.in.CursorY-g.lastPanY)
		g.lastPanX, g.lastPanY = g.in.CursorX, g.in.CursorY
	} else {
		g.panActive = false
	}

	if g.in.ResetViewHeld {
		g.cam.Glide(float64(g.cfg.MapWidth)/2, float64(g.cfg.MapHeight)/2)
	}

	if g.in.CycleLayerPressed {
		g.tmap.SetActiveLayer((g.tmap.ActiveLayer() + 1) % g.tmap.LayerCount())
	}

	// Resolve the cursor to a tile coordinate. Paint calls require the
	// coordinate to be inside the map, so the bounds check happens here.
	world := g.cam.ScreenToWorld(tilemap.Vec2{X: float32(g.in.CursorX), Y: float32(g.in.CursorY)})
	bounds := g.tmap.Bounds()
	overMap := !inPanel &&
		world.X >= bounds.X && world.Y >= bounds.Y &&
		world.X < bounds.X+bounds.Width && world.Y < bounds.Y+bounds.Height
	if overMap {
		g.hoverTile = tilemap.WorldToTile(world, g.tmap.TileSize())
	}
	g.hoverOK = overMap

	if g.in.RunFillPressed {
		g.runFill()
	}
	if g.in.CopyPressed {
		g.copyHovered()
	}

	g.drag.Update(tilemap.DragInput{
		ModifierHeld:   g.in.DragModifierHeld,
		ButtonDown:     g.in.LeftDown,
		ButtonReleased: g.in.LeftReleased,
		OverMap:        overMap,
		Tile:           g.hoverTile,
	}, g.panel.Selected, g.ts, g.tmap)

	return nil
}

// runFill applies the configured fill script to the anchored drag region,
// or the whole map when no drag is in progress.
func (g *Game) runFill() {
	if g.fill == nil {
		return
	}
	start := tilemap.Point{}
	end := tilemap.Point{X: g.tmap.TileDims().X - 1, Y: g.tmap.TileDims().Y - 1}
	if g.drag.Anchored() && g.hoverOK {
		start, end = g.drag.Anchor(), g.hoverTile
	}
	if err := g.fill.Apply(g.tmap, start, end, g.ts); err != nil {
		log.Printf("fill script: %v", err)
	}
}

// copyHovered puts the hovered cell, or the anchored drag region, on the
// system clipboard as text. Region rows list tileset indices with "." for
// unpainted cells.
func (g *Game) copyHovered() {
	if !g.clipboardOK || !g.hoverOK {
		return
	}
	layer := g.tmap.ActiveLayer()
	if !g.drag.Anchored() {
		tile := g.tmap.TileAt(layer, g.hoverTile)
		text := fmt.Sprintf("tile=(%d,%d) layer=%d occupied=%v index=%d",
			g.hoverTile.X, g.hoverTile.Y, layer, tile.Occupied, tile.TilesetIndex)
		clipboard.Write(clipboard.FmtText, []byte(text))
		return
	}

	a, b := g.drag.Anchor(), g.hoverTile
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "region=(%d,%d)-(%d,%d) layer=%d\n", minX, minY, maxX, maxY, layer)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x > minX {
				sb.WriteByte(' ')
			}
			tile := g.tmap.TileAt(layer, tilemap.Point{X: x, Y: y})
			if tile.Occupied {
				fmt.Fprintf(&sb, "%d", tile.TilesetIndex)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	clipboard.Write(clipboard.FmtText, []byte(sb.String()))
}

// pollTilesetReload swaps the atlas when the watched PNG changes on disk.
func (g *Game) pollTilesetReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if filepath.Clean(path) != filepath.Clean(g.cfg.TilesetPath) {
			return
		}
		img, err := assets.LoadImage(path)
		if err != nil {
			log.Printf("tileset reload %s: %v", path, err)
			return
		}
		g.ts.Swap(img)
		g.panel.RebuildTileset()
		log.Printf("tileset reloaded from %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("tileset watch: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	offX, offY := g.cam.ViewOffset()
	view := render.NewView(screen, g.cam.Zoom(), offX, offY)

	g.tmap.Draw(view, g.cam, g.screenW-panelWidth, g.screenH)

	tileSize := float32(g.tmap.TileSize())
	if g.hoverOK {
		world := tilemap.TileToWorld(g.hoverTile, g.tmap.TileSize())
		view.StrokeRect(tilemap.Rect{X: world.X, Y: world.Y, Width: tileSize, Height: tileSize}, 1, hoverColor)
	}
	if g.drag.Anchored() && g.hoverOK {
		view.StrokeRect(dragRegionRect(g.drag.Anchor(), g.hoverTile, g.tmap.TileSize()), 2, regionColor)
	}

	g.panel.Draw(screen)

	ebitenutil.DebugPrint(screen, g.statusText())
}

// dragRegionRect is the world rectangle spanned by the two corner tiles,
// inclusive of both.
func dragRegionRect(a, b tilemap.Point, tileSize int) tilemap.Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return tilemap.Rect{
		X:      float32(minX * tileSize),
		Y:      float32(minY * tileSize),
		Width:  float32((maxX - minX + 1) * tileSize),
		Height: float32((maxY - minY + 1) * tileSize),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.screenW = outsideWidth
		g.screenH = outsideHeight
		g.cam.SetScreenSize(outsideWidth-panelWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}
