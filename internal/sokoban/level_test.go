package sokoban

import (
	"errors"
	"testing"
)

func TestValidateCells(t *testing.T) {
	tests := []struct {
		name     string
		cells    [][]int
		wantCode string
	}{
		{name: "all kinds", cells: [][]int{{0, 1, 2, 3, 4, 5, 6}}},
		{name: "jagged", cells: [][]int{{1, 1}, {1}}},
		{name: "negative", cells: [][]int{{0, -1}}, wantCode: CodeInvalidTile},
		{name: "too large", cells: [][]int{{1}, {7}}, wantCode: CodeInvalidTile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCells(tc.cells)
			checkCode(t, err, tc.wantCode)
		})
	}
}

func TestValidateStrict(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		wantCode string
	}{
		{name: "playable", grid: Grid{{Player, Box, Target}}},
		{name: "extra box", grid: Grid{{Player, Box, Box, Target}}},
		{name: "empty", grid: Grid{}, wantCode: CodeEmptyMap},
		{name: "empty rows", grid: Grid{{}, {}}, wantCode: CodeEmptyMap},
		{name: "bad tile", grid: Grid{{Player, TileKind(9)}}, wantCode: CodeInvalidTile},
		{name: "no player", grid: Grid{{Box, Target}}, wantCode: CodePlayerCount},
		{name: "two players", grid: Grid{{Player, PlayerOnTarget, Box}}, wantCode: CodePlayerCount},
		{name: "no targets", grid: Grid{{Player, Box}}, wantCode: CodeNoTargets},
		{name: "box shortage", grid: Grid{{Player, Box, Target, Target}}, wantCode: CodeBoxShortage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStrict(LevelDefinition{Name: tc.name, Map: tc.grid})
			checkCode(t, err, tc.wantCode)
		})
	}
}

func TestValidateLevelAllowsUnplayable(t *testing.T) {
	if err := ValidateLevel(LevelDefinition{Map: Grid{{Box, Target}}}); err != nil {
		t.Errorf("ValidateLevel() = %v, expected nil", err)
	}
}

func TestFromInts(t *testing.T) {
	g, err := FromInts([][]int{{1, 1, 1}, {1, 5, 3, 2}})
	if err != nil {
		t.Fatalf("FromInts() error = %v", err)
	}
	want := Grid{{Wall, Wall, Wall}, {Wall, Player, Box, Target}}
	if !g.Equal(want) {
		t.Errorf("FromInts() = %v, expected %v", g, want)
	}

	if _, err := FromInts([][]int{{8}}); err == nil {
		t.Error("FromInts() error = nil, expected error")
	}
}

func TestComputeStats(t *testing.T) {
	g := Grid{
		{Wall, Wall, Wall, Wall},
		{Wall, PlayerOnTarget, Box, BoxOnTarget, Target},
		{Wall, Wall},
	}
	got := ComputeStats(g)
	want := Stats{Width: 5, Height: 3, Boxes: 2, Targets: 3, Players: 1, Placed: 1}
	if got != want {
		t.Errorf("ComputeStats() = %+v, expected %+v", got, want)
	}
}

func checkCode(t *testing.T, err error, code string) {
	t.Helper()
	if code == "" {
		if err != nil {
			t.Errorf("error = %v, expected nil", err)
		}
		return
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, expected ValidationError", err)
	}
	if ve.Code != code {
		t.Errorf("Code = %s, expected %s", ve.Code, code)
	}
}
