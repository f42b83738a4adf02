package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Author string      `yaml:"author,omitempty"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level. Exactly one of Map (numeric tile codes) or
// Rows (XSB glyphs) must be set.
type YAMLLevel struct {
	Name      string   `yaml:"name"`
	MoveLimit int      `yaml:"move_limit,omitempty"`
	Map       [][]int  `yaml:"map,omitempty"`
	Rows      []string `yaml:"rows,omitempty"`
}

// ParseYAML parses a YAML pack file. Every level is checked with
// sokoban.ValidateLevel; one bad level fails the whole file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Levels) == 0 {
		return Pack{}, errors.New("pack has no levels")
	}

	pack := Pack{
		ID:     yp.ID,
		Name:   yp.Name,
		Author: yp.Author,
		Levels: make([]sokoban.LevelDefinition, 0, len(yp.Levels)),
	}

	for i, yl := range yp.Levels {
		def, err := yl.toDefinition(i)
		if err != nil {
			return Pack{}, fmt.Errorf("level %d: %w", i+1, err)
		}
		pack.Levels = append(pack.Levels, def)
	}

	return pack, nil
}

func (yl YAMLLevel) toDefinition(i int) (sokoban.LevelDefinition, error) {
	var (
		grid sokoban.Grid
		err  error
	)

	switch {
	case len(yl.Map) > 0 && len(yl.Rows) > 0:
		return sokoban.LevelDefinition{}, errors.New("both map and rows set")
	case len(yl.Map) > 0:
		grid, err = sokoban.FromInts(yl.Map)
	case len(yl.Rows) > 0:
		grid, err = ParseRows(yl.Rows)
	default:
		return sokoban.LevelDefinition{}, errors.New("missing map or rows")
	}
	if err != nil {
		return sokoban.LevelDefinition{}, err
	}

	if yl.MoveLimit < 0 {
		return sokoban.LevelDefinition{}, fmt.Errorf("negative move_limit %d", yl.MoveLimit)
	}

	name := yl.Name
	if name == "" {
		name = defaultLevelName(i)
	}

	def := sokoban.LevelDefinition{Name: name, Map: grid, MoveLimit: yl.MoveLimit}
	if err := sokoban.ValidateLevel(def); err != nil {
		return sokoban.LevelDefinition{}, err
	}
	return def, nil
}
