package sokoban

import "strings"

// Grid holds tiles indexed [y][x]. Rows may differ in length.
type Grid [][]TileKind

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make([]TileKind, len(row))
		copy(out[y], row)
	}
	return out
}

// InBounds checks the coordinate against the height and the row's own width.
func (g Grid) InBounds(p Position) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the tile at p. Callers must check InBounds first.
func (g Grid) At(p Position) TileKind {
	return g[p.Y][p.X]
}

// Set writes the tile at p. Callers must check InBounds first.
func (g Grid) Set(p Position, t TileKind) {
	g[p.Y][p.X] = t
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Find returns the first position (row-major) whose tile satisfies match.
func (g Grid) Find(match func(TileKind) bool) (Position, bool) {
	for y, row := range g {
		for x, t := range row {
			if match(t) {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many tiles satisfy match.
func (g Grid) Count(match func(TileKind) bool) int {
	n := 0
	for _, row := range g {
		for _, t := range row {
			if match(t) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two grids hold the same tiles in the same shape.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with debug glyphs, one line per row.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
	}
	return sb.String()
}

// isSolved is the win predicate: no bare Target and no PlayerOnTarget left.
func (g Grid) isSolved() bool {
	_, found := g.Find(TileKind.IsUncovered)
	return !found
}
