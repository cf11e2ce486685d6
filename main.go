package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gridpaint/config"
)

func main() {
	configPath := flag.String("config", "", "editor YAML config (defaults apply when omitted)")
	tilesetPath := flag.String("tileset", "", "atlas PNG; overrides the config's tileset_path")
	fillScript := flag.String("fill", "scripts/checker.tengo", "tengo fill script bound to the F key")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = c
	}
	if *tilesetPath != "" {
		cfg.TilesetPath = *tilesetPath
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth+panelWidth, baseHeight)
	ebiten.SetWindowTitle("gridpaint")

	game, err := NewGame(cfg, *fillScript)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
