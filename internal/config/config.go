// Package config provides YAML-based configuration loading and
// difficulty presets for the Sokoban game.
package config

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
}

// RulesConfig defines engine rules.
type RulesConfig struct {
	HistoryDepth      int  `yaml:"history_depth"`       // Undo steps kept per level
	EnforceMoveLimits bool `yaml:"enforce_move_limits"` // Fail levels that exceed move_limit
}

// LevelsConfig defines where level packs come from.
type LevelsConfig struct {
	Dir         string `yaml:"dir"`
	DefaultPack string `yaml:"default_pack"`
}

// DisplayConfig defines rendering options.
type DisplayConfig struct {
	ShowHint  bool          `yaml:"show_hint"`
	TileWidth int           `yaml:"tile_width"`
	Palette   PaletteConfig `yaml:"palette"`
}

// PaletteConfig names the color of each tile kind.
// Values are color names such as "gray" or "bright_green".
type PaletteConfig struct {
	Wall        string `yaml:"wall"`
	Target      string `yaml:"target"`
	Box         string `yaml:"box"`
	BoxOnTarget string `yaml:"box_on_target"`
	Player      string `yaml:"player"`
}

// Normalize clamps out-of-range values to usable defaults.
func (c *SokobanConfig) Normalize() {
	def := DefaultConfig()
	if c.Rules.HistoryDepth < 0 {
		c.Rules.HistoryDepth = 0
	}
	if c.Levels.DefaultPack == "" {
		c.Levels.DefaultPack = def.Levels.DefaultPack
	}
	if c.Display.TileWidth < 1 || c.Display.TileWidth > 2 {
		c.Display.TileWidth = def.Display.TileWidth
	}
	c.Display.Palette.fill(def.Display.Palette)
}

func (p *PaletteConfig) fill(def PaletteConfig) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&p.Wall, def.Wall},
		{&p.Target, def.Target},
		{&p.Box, def.Box},
		{&p.BoxOnTarget, def.BoxOnTarget},
		{&p.Player, def.Player},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}
