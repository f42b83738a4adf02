package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultConfig returns the default Sokoban configuration.
func DefaultConfig() SokobanConfig {
	return SokobanConfig{
		Rules: RulesConfig{
			HistoryDepth:      100,
			EnforceMoveLimits: true,
		},
		Levels: LevelsConfig{
			DefaultPack: "classic",
		},
		Display: DisplayConfig{
			ShowHint:  true,
			TileWidth: 2,
			Palette: PaletteConfig{
				Wall:        "gray",
				Target:      "yellow",
				Box:         "orange",
				BoxOnTarget: "bright_green",
				Player:      "bright_cyan",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
