package sokoban

import "testing"

func TestGridInBounds(t *testing.T) {
	g := Grid{
		{Wall, Wall, Wall},
		{Wall},
	}

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{name: "origin", pos: Position{0, 0}, expected: true},
		{name: "end of long row", pos: Position{2, 0}, expected: true},
		{name: "past short row", pos: Position{1, 1}, expected: false},
		{name: "negative x", pos: Position{-1, 0}, expected: false},
		{name: "below", pos: Position{0, 2}, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.pos); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := Grid{{Player, Box, Target}}
	c := g.Clone()
	c[0][1] = Empty

	if g[0][1] != Box {
		t.Errorf("original = %v, expected Box", g[0][1])
	}
	if Grid(nil).Clone() != nil {
		t.Error("Clone() of nil grid should be nil")
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{Wall, Player, Box, Target}, {BoxOnTarget, PlayerOnTarget, Empty}}
	expected := "█♂□·\n■★ "
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestGridSolved(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		expected bool
	}{
		{name: "all placed", grid: Grid{{Player, BoxOnTarget}}, expected: true},
		{name: "bare target", grid: Grid{{Player, Box, Target}}, expected: false},
		{name: "player on target", grid: Grid{{PlayerOnTarget, Box}}, expected: false},
		{name: "no targets at all", grid: Grid{{Player, Box}}, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.grid.isSolved(); got != tc.expected {
				t.Errorf("isSolved() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{in: "up", expected: DirUp},
		{in: "D", expected: DirDown},
		{in: " Left ", expected: DirLeft},
		{in: "r", expected: DirRight},
		{in: "north", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDirection(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestTileKindPredicates(t *testing.T) {
	for k := Empty; k <= PlayerOnTarget; k++ {
		if !k.Valid() {
			t.Errorf("%v.Valid() = false, expected true", k)
		}
	}
	if TileKind(7).Valid() {
		t.Error("TileKind(7).Valid() = true, expected false")
	}
	if TileKind(7).Rune() != '?' {
		t.Errorf("TileKind(7).Rune() = %q, expected '?'", TileKind(7).Rune())
	}
	if !BoxOnTarget.IsBox() || !BoxOnTarget.IsTarget() || BoxOnTarget.IsUncovered() {
		t.Error("BoxOnTarget predicates wrong")
	}
	if !PlayerOnTarget.IsPlayer() || !PlayerOnTarget.IsUncovered() {
		t.Error("PlayerOnTarget predicates wrong")
	}
}
