package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const helpText = "paint: LMB   region: shift+drag   pan: MMB   zoom: wheel\n" +
	"layer: tab   fill: F   copy: C   center: home"

// statusText is the one-line editor state shown above the key help.
func (g *Game) statusText() string {
	return fmt.Sprintf(
		"layer %d/%d  cell %d  hover (%d,%d)  fps %.0f\n%s",
		g.tmap.ActiveLayer()+1, g.tmap.LayerCount(), g.panel.Selected,
		g.hoverTile.X, g.hoverTile.Y, ebiten.ActualFPS(), helpText)
}
