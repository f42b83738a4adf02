package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func TestMenuSolvedCounts(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 2; i++ {
		if _, err := store.SaveSolve(storage.Solve{PackID: levels.PackTutorial, LevelIndex: i, Moves: 3}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig())

	found := false
	for _, item := range m.items {
		switch item.GameID {
		case sokoban.IDTutorial:
			found = true
			if item.Solved != 2 {
				t.Errorf("tutorial Solved = %d, expected 2", item.Solved)
			}
		case sokoban.IDClassic:
			if item.Solved != 0 {
				t.Errorf("classic Solved = %d, expected 0", item.Solved)
			}
		}
	}
	if !found {
		t.Fatal("tutorial missing from menu")
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		selected bool
		records  bool
		quitting bool
	}{
		{name: "select", keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, selected: true},
		{name: "records", keys: []tea.KeyMsg{{Type: tea.KeyTab}}, records: true},
		{name: "quit", keys: []tea.KeyMsg{runeKey('q')}, quitting: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig())
			for _, k := range tc.keys {
				next, _ := m.Update(k)
				m = next.(MenuModel)
			}

			if (m.Selected() != nil) != tc.selected {
				t.Errorf("Selected() = %v, expected selected %v", m.Selected(), tc.selected)
			}
			if m.WantsRecords() != tc.records {
				t.Errorf("WantsRecords() = %v, expected %v", m.WantsRecords(), tc.records)
			}
			if m.IsQuitting() != tc.quitting {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tc.quitting)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("too wide", 4); got != "too wide" {
		t.Errorf("centerText() = %q, expected %q", got, "too wide")
	}
}
