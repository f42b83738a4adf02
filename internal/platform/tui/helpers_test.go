package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/levels/formats"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// onePushPack has two levels that are each solved by a single push right.
func onePushPack(t *testing.T, id string) levels.Pack {
	t.Helper()
	grid, err := formats.ParseRows([]string{"#####", "#@$.#", "#####"})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	return levels.Pack{
		ID:   id,
		Name: "Pack " + id,
		Levels: []sokoban.LevelDefinition{
			{Name: "Alpha", Map: grid},
			{Name: "Beta", Map: grid.Clone()},
		},
	}
}
