package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// ParseXSB parses the plain-text XSB notation. Levels are separated by
// blank or non-board lines. A "; name" comment or a "Title: name" line
// directly after a board names that level. Other ';' lines are comments.
func ParseXSB(data []byte) (Pack, error) {
	var (
		pack    Pack
		rows    []string
		named   = true // whether the last finished level has a name
		lineNum int
	)

	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		grid, err := ParseRows(rows)
		if err != nil {
			return fmt.Errorf("level %d: %w", len(pack.Levels)+1, err)
		}
		pack.Levels = append(pack.Levels, sokoban.LevelDefinition{Map: grid})
		rows = nil
		named = false
		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")

		if isBoardLine(line) {
			rows = append(rows, strings.TrimRight(line, " "))
			continue
		}

		if err := flush(); err != nil {
			return Pack{}, err
		}

		name, ok := levelName(line)
		if ok && !named {
			pack.Levels[len(pack.Levels)-1].Name = name
			named = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || ok {
			continue
		}
		if strings.HasPrefix(trimmed, "Author:") {
			pack.Author = strings.TrimSpace(strings.TrimPrefix(trimmed, "Author:"))
			continue
		}
		if strings.ContainsRune(trimmed, GlyphWall) {
			return Pack{}, fmt.Errorf("line %d: malformed board row %q", lineNum, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Pack{}, fmt.Errorf("reading xsb: %w", err)
	}
	if err := flush(); err != nil {
		return Pack{}, err
	}

	if len(pack.Levels) == 0 {
		return Pack{}, errors.New("no levels found")
	}

	for i := range pack.Levels {
		def := &pack.Levels[i]
		if def.Name == "" {
			def.Name = defaultLevelName(i)
		}
		if err := sokoban.ValidateLevel(*def); err != nil {
			return Pack{}, fmt.Errorf("level %d: %w", i+1, err)
		}
	}

	return pack, nil
}

// isBoardLine reports whether line is a row of a level: only board
// glyphs and at least one wall.
func isBoardLine(line string) bool {
	if !strings.ContainsRune(line, GlyphWall) {
		return false
	}
	for _, r := range line {
		if _, ok := DecodeGlyph(r); !ok {
			return false
		}
	}
	return true
}

// levelName extracts a level name from a "; name" or "Title: name" line.
func levelName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, ";"):
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, ";"))
		return name, name != ""
	case strings.HasPrefix(trimmed, "Title:"):
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Title:"))
		return name, name != ""
	}
	return "", false
}
