package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sokoban", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "rules:\n  history_depth: 7\n"
	if err := os.WriteFile(filepath.Join(dir, "sokoban.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.HistoryDepth != 7 {
		t.Errorf("HistoryDepth = %d, expected 7", cfg.Rules.HistoryDepth)
	}
	// Unset keys keep their defaults.
	if cfg.Levels.DefaultPack != "classic" || !cfg.Rules.EnforceMoveLimits {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		missing bool
		wantErr bool
		check   func(t *testing.T, cfg SokobanConfig)
	}{
		{
			name:    "partial override",
			content: "levels:\n  dir: /tmp/packs\n  default_pack: tutorial\ndisplay:\n  tile_width: 1\n",
			check: func(t *testing.T, cfg SokobanConfig) {
				if cfg.Levels.Dir != "/tmp/packs" || cfg.Levels.DefaultPack != "tutorial" {
					t.Errorf("Levels = %+v", cfg.Levels)
				}
				if cfg.Display.TileWidth != 1 {
					t.Errorf("TileWidth = %d, expected 1", cfg.Display.TileWidth)
				}
				if cfg.Rules.HistoryDepth != 100 {
					t.Errorf("HistoryDepth = %d, expected 100", cfg.Rules.HistoryDepth)
				}
			},
		},
		{
			name:    "normalized",
			content: "rules:\n  history_depth: -4\ndisplay:\n  tile_width: 9\nlevels:\n  default_pack: \"\"\n",
			check: func(t *testing.T, cfg SokobanConfig) {
				if cfg.Rules.HistoryDepth != 0 {
					t.Errorf("HistoryDepth = %d, expected 0", cfg.Rules.HistoryDepth)
				}
				if cfg.Display.TileWidth != 2 {
					t.Errorf("TileWidth = %d, expected 2", cfg.Display.TileWidth)
				}
				if cfg.Levels.DefaultPack != "classic" {
					t.Errorf("DefaultPack = %q, expected classic", cfg.Levels.DefaultPack)
				}
			},
		},
		{
			name:    "palette override",
			content: "display:\n  palette:\n    box: red\n",
			check: func(t *testing.T, cfg SokobanConfig) {
				if cfg.Display.Palette.Box != "red" {
					t.Errorf("Palette.Box = %q, expected red", cfg.Display.Palette.Box)
				}
				if cfg.Display.Palette.Wall != "gray" {
					t.Errorf("Palette.Wall = %q, expected gray", cfg.Display.Palette.Wall)
				}
			},
		},
		{name: "invalid yaml", content: "rules: [", wantErr: true},
		{name: "missing file", missing: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if !tc.missing {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, err := Load(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		depth   int
		enforce bool
	}{
		{preset: DifficultyEasy, depth: 100, enforce: false},
		{preset: DifficultyNormal, depth: 100, enforce: true},
		{preset: DifficultyHard, depth: 10, enforce: true},
		{preset: DifficultyFixed, depth: 42, enforce: false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Rules.HistoryDepth = 42
			cfg.Rules.EnforceMoveLimits = false

			ApplyPreset(&cfg, tc.preset)

			if cfg.Rules.HistoryDepth != tc.depth {
				t.Errorf("HistoryDepth = %d, expected %d", cfg.Rules.HistoryDepth, tc.depth)
			}
			if cfg.Rules.EnforceMoveLimits != tc.enforce {
				t.Errorf("EnforceMoveLimits = %v, expected %v", cfg.Rules.EnforceMoveLimits, tc.enforce)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{in: "easy", expected: DifficultyEasy},
		{in: " HARD ", expected: DifficultyHard},
		{in: "Fixed", expected: DifficultyFixed},
		{in: "insane", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}
