// Package levels provides level packs for the Sokoban engine: the
// built-in packs compiled into the binary and a loader for directories
// of YAML and XSB files.
// This package depends on sokoban but sokoban does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/levels/formats"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Built-in pack IDs.
const (
	PackClassic  = "classic"
	PackTutorial = "tutorial"
)

// ErrPackNotFound is returned when no pack has the requested ID.
var ErrPackNotFound = errors.New("pack not found")

// Pack is an ordered sequence of levels.
type Pack struct {
	ID     string
	Name   string
	Author string
	Levels []sokoban.LevelDefinition
	Source string // file path, or "builtin"
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at a zero-based index.
func (p Pack) Level(i int) (sokoban.LevelDefinition, bool) {
	if i < 0 || i >= len(p.Levels) {
		return sokoban.LevelDefinition{}, false
	}
	return p.Levels[i], true
}

// Title returns the display name, falling back to the ID.
func (p Pack) Title() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

//go:embed packs/*.yaml
var builtinFS embed.FS

var (
	builtinOnce  sync.Once
	builtinPacks []Pack
	builtinErr   error
)

// BuiltinPacks returns the packs compiled into the binary, sorted by ID.
func BuiltinPacks() ([]Pack, error) {
	builtinOnce.Do(func() {
		builtinPacks, builtinErr = loadBuiltin()
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Pack, len(builtinPacks))
	copy(out, builtinPacks)
	return out, nil
}

// BuiltinPack returns a single built-in pack.
func BuiltinPack(id string) (Pack, error) {
	packs, err := BuiltinPacks()
	if err != nil {
		return Pack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
}

func loadBuiltin() ([]Pack, error) {
	entries, err := builtinFS.ReadDir("packs")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin packs: %w", err)
	}

	var packs []Pack
	for _, e := range entries {
		name := path.Join("packs", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", name, err)
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
		}
		packs = append(packs, fromParsed(parsed, strings.TrimSuffix(e.Name(), path.Ext(e.Name())), "builtin"))
	}

	sortPacks(packs)
	return packs, nil
}

// fromParsed converts a parsed file, using fallbackID when the file
// does not name itself.
func fromParsed(parsed formats.Pack, fallbackID, source string) Pack {
	id := parsed.ID
	if id == "" {
		id = fallbackID
	}
	return Pack{
		ID:     id,
		Name:   parsed.Name,
		Author: parsed.Author,
		Levels: parsed.Levels,
		Source: source,
	}
}

func sortPacks(packs []Pack) {
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
}
