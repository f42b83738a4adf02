package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

const sampleXSB = `Author: Someone

; leading comment, ignored
#####
#@$.#
#####
; First

  ####
###  #
#.$@ #
# *  #
######
Title: Second
`

func TestParseXSB(t *testing.T) {
	pack, err := ParseXSB([]byte(sampleXSB))
	if err != nil {
		t.Fatalf("ParseXSB() error = %v", err)
	}

	if len(pack.Levels) != 2 {
		t.Fatalf("len(Levels) = %d, expected 2", len(pack.Levels))
	}
	if pack.Author != "Someone" {
		t.Errorf("Author = %q, expected %q", pack.Author, "Someone")
	}

	first := pack.Levels[0]
	if first.Name != "First" {
		t.Errorf("Levels[0].Name = %q, expected %q", first.Name, "First")
	}
	want := sokoban.Grid{
		{sokoban.Wall, sokoban.Wall, sokoban.Wall, sokoban.Wall, sokoban.Wall},
		{sokoban.Wall, sokoban.Player, sokoban.Box, sokoban.Target, sokoban.Wall},
		{sokoban.Wall, sokoban.Wall, sokoban.Wall, sokoban.Wall, sokoban.Wall},
	}
	if !first.Map.Equal(want) {
		t.Errorf("Levels[0].Map =\n%s\nexpected\n%s", first.Map, want)
	}

	second := pack.Levels[1]
	if second.Name != "Second" {
		t.Errorf("Levels[1].Name = %q, expected %q", second.Name, "Second")
	}
	stats := sokoban.ComputeStats(second.Map)
	if stats.Boxes != 2 || stats.Targets != 2 || stats.Players != 1 {
		t.Errorf("stats = %+v, expected 2 boxes, 2 targets, 1 player", stats)
	}
	// Leading spaces become floor so the first row is jagged but aligned.
	if second.Map.At(sokoban.Position{X: 2, Y: 0}) != sokoban.Wall {
		t.Errorf("cell (2,0) = %v, expected Wall", second.Map.At(sokoban.Position{X: 2, Y: 0}))
	}
}

func TestParseXSBDefaultsAndErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "unnamed", input: "####\n#@.#\n# $#\n####\n"},
		{name: "dash floor", input: "#####\n#@-$.#\n######\n"},
		{name: "empty", input: "; nothing here\n", wantErr: true},
		{name: "bad glyph", input: "####\n#@X#\n####\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pack, err := ParseXSB([]byte(tc.input))
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseXSB() error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && pack.Levels[0].Name != "Level 1" {
				t.Errorf("Name = %q, expected %q", pack.Levels[0].Name, "Level 1")
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := `
id: demo
name: Demo Pack
levels:
  - name: Numeric
    map:
      - [1, 1, 1, 1, 1]
      - [1, 5, 3, 2, 1]
      - [1, 1, 1, 1, 1]
  - move_limit: 12
    rows:
      - "#####"
      - "#+$ #"
      - "#####"
`
	pack, err := ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if pack.ID != "demo" || pack.Name != "Demo Pack" {
		t.Errorf("pack = %q/%q, expected demo/Demo Pack", pack.ID, pack.Name)
	}
	if len(pack.Levels) != 2 {
		t.Fatalf("len(Levels) = %d, expected 2", len(pack.Levels))
	}
	if pack.Levels[0].Map.At(sokoban.Position{X: 1, Y: 1}) != sokoban.Player {
		t.Errorf("numeric map not decoded: %s", pack.Levels[0].Map)
	}
	if pack.Levels[1].Name != "Level 2" {
		t.Errorf("Levels[1].Name = %q, expected %q", pack.Levels[1].Name, "Level 2")
	}
	if pack.Levels[1].MoveLimit != 12 {
		t.Errorf("MoveLimit = %d, expected 12", pack.Levels[1].MoveLimit)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no levels", input: "id: x\nlevels: []\n"},
		{name: "both forms", input: "levels:\n  - map: [[5]]\n    rows: [\"@\"]\n"},
		{name: "neither form", input: "levels:\n  - name: empty\n"},
		{name: "tile out of range", input: "levels:\n  - map: [[5, 9]]\n"},
		{name: "negative limit", input: "levels:\n  - move_limit: -1\n    rows: [\"@.\"]\n"},
		{name: "not yaml", input: "levels: [unclosed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.input)); err == nil {
				t.Error("ParseYAML() error = nil, expected error")
			}
		})
	}
}

func TestFormatRows(t *testing.T) {
	rows := []string{"#####", "#+$*#", "#. @#", "#####"}
	g, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	got := strings.Join(FormatRows(g), "\n")
	if got != strings.Join(rows, "\n") {
		t.Errorf("FormatRows() =\n%s\nexpected\n%s", got, strings.Join(rows, "\n"))
	}
}
