package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func TestRecordsRows(t *testing.T) {
	store := openTestStore(t)
	for _, moves := range []int{9, 6} {
		if _, err := store.SaveSolve(storage.Solve{PackID: "a", LevelIndex: 0, LevelName: "Alpha", Moves: moves}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	packs := []levels.Pack{onePushPack(t, "a"), onePushPack(t, "b")}
	m := NewRecordsModel(packs, store, 100, 30)

	if len(m.rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(m.rows))
	}
	if m.rows[0][2] != "6" || m.rows[0][3] != "2" {
		t.Errorf("rows[0] = %v, expected best 6 with 2 solves", m.rows[0])
	}
	if m.rows[1][2] != "-" {
		t.Errorf("rows[1] = %v, expected unsolved", m.rows[1])
	}
	if m.solved != 1 {
		t.Errorf("solved = %d, expected 1", m.solved)
	}
	if !strings.Contains(m.View(), "RECORDS - Pack a (1/2 solved)") {
		t.Error("View() missing records title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RecordsModel)
	if m.packCursor != 1 || m.solved != 0 {
		t.Errorf("after tab: packCursor = %d, solved = %d, expected 1, 0", m.packCursor, m.solved)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RecordsModel)
	if m.packCursor != 0 {
		t.Errorf("after shift+tab: packCursor = %d, expected 0", m.packCursor)
	}
}

func TestRecordsBack(t *testing.T) {
	m := NewRecordsModel([]levels.Pack{onePushPack(t, "a")}, nil, 60, 20)
	if m.showSidebar {
		t.Error("showSidebar = true on a narrow window")
	}

	next, cmd := m.Update(runeKey('b'))
	m = next.(RecordsModel)
	if !m.IsGoingBack() {
		t.Error("IsGoingBack() = false, expected true")
	}
	if cmd == nil {
		t.Error("standalone records board did not quit on back")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{in: "short", n: 10, expected: "short"},
		{in: "exactly", n: 7, expected: "exactly"},
		{in: "Microban II", n: 6, expected: "Micro."},
	}

	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.expected)
		}
	}
}
