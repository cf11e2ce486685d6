package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "full_config",
			body: "map_width: 1280\nmap_height: 640\ntile_size: 32\nchunk_size: 256\nlayers: 3\ntileset_cell: 32\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.MapWidth != 1280 || cfg.Layers != 3 || cfg.TileSize != 32 {
					t.Fatalf("unexpected config %+v", cfg)
				}
			},
		},
		{
			name: "partial_keeps_defaults",
			body: "layers: 4\n",
			check: func(t *testing.T, cfg Config) {
				def := Default()
				if cfg.Layers != 4 || cfg.MapWidth != def.MapWidth || cfg.TileSize != def.TileSize {
					t.Fatalf("defaults not kept: %+v", cfg)
				}
			},
		},
		{
			name:    "chunk_not_multiple_of_tile",
			body:    "tile_size: 24\nchunk_size: 100\n",
			wantErr: true,
		},
		{
			name:    "map_not_multiple_of_chunk",
			body:    "map_width: 1000\nchunk_size: 128\n",
			wantErr: true,
		},
		{
			name:    "zero_layers",
			body:    "layers: 0\n",
			wantErr: true,
		},
		{
			name:    "bad_yaml",
			body:    "map_width: [",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, c.body))
			if (err != nil) != c.wantErr {
				t.Fatalf("Load err = %v, wantErr = %v", err, c.wantErr)
			}
			if c.check != nil && err == nil {
				c.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
