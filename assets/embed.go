// Package assets holds the embedded default tileset and helpers for
// loading atlas images from disk.
package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed tileset.png
var assetsFS embed.FS

// DefaultTileset is the embedded atlas used when no tileset path is
// configured: an 8x4 grid of 16px colored cells.
var DefaultTileset *ebiten.Image

func init() {
	b, err := assetsFS.ReadFile("tileset.png")
	if err != nil {
		log.Fatalf("embed: read tileset.png: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatalf("embed: decode tileset.png: %v", err)
	}
	DefaultTileset = ebiten.NewImageFromImage(img)
}

// LoadImage loads an atlas image from disk.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
