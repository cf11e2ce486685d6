package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Panel is the docked editor sidebar: layer selection buttons and the
// tileset picker grid.
type Panel struct {
	game *Game
	ui   *ebitenui.UI

	// Selected is the tileset cell painted by subsequent strokes.
	Selected uint32

	face          ebtext.Face
	tilesetHolder *widget.Container
	tilesetGrid   *widget.Container
}

func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	p.face = goFace

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panelBg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xff})
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelBg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 48, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Layers", &p.face, white),
	))
	for i := 0; i < g.tmap.LayerCount(); i++ {
		idx := i
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(fmt.Sprintf("Layer %d", i+1), &p.face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.tmap.SetActiveLayer(idx)
			}),
		))
	}

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Tileset", &p.face, white),
	))
	p.tilesetHolder = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	p.tilesetGrid = p.buildTilesetGrid()
	p.tilesetHolder.AddChild(p.tilesetGrid)
	panel.AddChild(p.tilesetHolder)

	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	return p
}

// buildTilesetGrid lays the atlas cells out as a grid of clickable
// graphics.
func (p *Panel) buildTilesetGrid() *widget.Container {
	ts := p.game.ts
	atlas := ts.Image()
	cell := ts.CellSize()
	dims := ts.Dims()

	container := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(dims.X),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)

	index := 0
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			sub := atlas.SubImage(
				image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell),
			).(*ebiten.Image)
			idx := uint32(index)
			container.AddChild(widget.NewGraphic(
				widget.GraphicOpts.Image(sub),
				widget.GraphicOpts.WidgetOpts(
					widget.WidgetOpts.MinSize(cell, cell),
					widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
						p.Selected = idx
					}),
				),
			))
			index++
		}
	}
	return container
}

// RebuildTileset refreshes the picker after a live atlas reload.
func (p *Panel) RebuildTileset() {
	p.tilesetHolder.RemoveChild(p.tilesetGrid)
	p.tilesetGrid = p.buildTilesetGrid()
	p.tilesetHolder.AddChild(p.tilesetGrid)
	if int(p.Selected) >= p.game.ts.CellCount() {
		p.Selected = 0
	}
}

func (p *Panel) Update() {
	p.ui.Update()
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
