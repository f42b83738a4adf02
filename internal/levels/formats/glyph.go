// Package formats provides level file parsers for Sokoban packs.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Pack is a parsed level file.
type Pack struct {
	ID     string
	Name   string
	Author string
	Levels []sokoban.LevelDefinition
}

// Standard XSB glyphs.
const (
	GlyphWall           = '#'
	GlyphEmpty          = ' '
	GlyphTarget         = '.'
	GlyphBox            = '$'
	GlyphBoxOnTarget    = '*'
	GlyphPlayer         = '@'
	GlyphPlayerOnTarget = '+'
)

// DecodeGlyph maps an XSB glyph to a tile. '-' and '_' are accepted as
// alternative floor glyphs.
func DecodeGlyph(r rune) (sokoban.TileKind, bool) {
	switch r {
	case GlyphEmpty, '-', '_':
		return sokoban.Empty, true
	case GlyphWall:
		return sokoban.Wall, true
	case GlyphTarget:
		return sokoban.Target, true
	case GlyphBox:
		return sokoban.Box, true
	case GlyphBoxOnTarget:
		return sokoban.BoxOnTarget, true
	case GlyphPlayer:
		return sokoban.Player, true
	case GlyphPlayerOnTarget:
		return sokoban.PlayerOnTarget, true
	}
	return 0, false
}

// EncodeGlyph maps a tile to its XSB glyph.
func EncodeGlyph(t sokoban.TileKind) rune {
	switch t {
	case sokoban.Wall:
		return GlyphWall
	case sokoban.Target:
		return GlyphTarget
	case sokoban.Box:
		return GlyphBox
	case sokoban.BoxOnTarget:
		return GlyphBoxOnTarget
	case sokoban.Player:
		return GlyphPlayer
	case sokoban.PlayerOnTarget:
		return GlyphPlayerOnTarget
	default:
		return GlyphEmpty
	}
}

// ParseRows decodes glyph rows into a grid. Trailing spaces are kept,
// so rows may be jagged.
func ParseRows(rows []string) (sokoban.Grid, error) {
	g := make(sokoban.Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]sokoban.TileKind, 0, len(row))
		for x, r := range []rune(row) {
			t, ok := DecodeGlyph(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y+1, x+1, r)
			}
			g[y] = append(g[y], t)
		}
	}
	return g, nil
}

// FormatRows encodes a grid as XSB rows with trailing floor trimmed.
func FormatRows(g sokoban.Grid) []string {
	rows := make([]string, len(g))
	for y, row := range g {
		var sb strings.Builder
		for _, t := range row {
			sb.WriteRune(EncodeGlyph(t))
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".xsb", ".sok", ".txt"}
}

func defaultLevelName(i int) string {
	return fmt.Sprintf("Level %d", i+1)
}
