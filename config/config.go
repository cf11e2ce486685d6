// Package config loads the editor configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the map geometry and the tileset the editor starts
// with. All sizes are pixels.
type Config struct {
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
	TileSize  int `yaml:"tile_size"`
	ChunkSize int `yaml:"chunk_size"`
	Layers    int `yaml:"layers"`

	// TilesetPath points at an external atlas PNG. Empty means the embedded
	// default tileset. TilesetCell is the atlas cell edge length.
	TilesetPath string `yaml:"tileset_path"`
	TilesetCell int    `yaml:"tileset_cell"`
}

// Default returns the configuration used when no file is given: a map five
// screens across with 16px tiles in 128px chunks.
func Default() Config {
	return Config{
		MapWidth:    6400,
		MapHeight:   3840,
		TileSize:    16,
		ChunkSize:   128,
		Layers:      2,
		TilesetCell: 16,
	}
}

// Load reads and validates a config file. Missing fields keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the geometry constraints the map requires. These fail
// loudly here instead of producing undefined paint behavior later.
func (c Config) Validate() error {
	if c.TileSize <= 0 || c.ChunkSize <= 0 {
		return fmt.Errorf("tile_size %d and chunk_size %d must be positive", c.TileSize, c.ChunkSize)
	}
	if c.ChunkSize%c.TileSize != 0 {
		return fmt.Errorf("chunk_size %d must be a multiple of tile_size %d", c.ChunkSize, c.TileSize)
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", c.MapWidth, c.MapHeight)
	}
	if c.MapWidth%c.ChunkSize != 0 || c.MapHeight%c.ChunkSize != 0 {
		return fmt.Errorf("map size %dx%d must be a multiple of chunk_size %d", c.MapWidth, c.MapHeight, c.ChunkSize)
	}
	if c.Layers < 1 {
		return fmt.Errorf("layers %d must be at least 1", c.Layers)
	}
	if c.TilesetCell <= 0 {
		return fmt.Errorf("tileset_cell %d must be positive", c.TilesetCell)
	}
	return nil
}
