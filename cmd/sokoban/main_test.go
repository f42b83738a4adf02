package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// execute runs the root command against files in dir and returns what
// the command printed.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(dir, "sokoban.yaml")
	if err := os.WriteFile(cfgPath, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	flagLevel, flagClearScores, flagScoresLevel = 0, false, 0
	t.Cleanup(func() { flagLevel, flagClearScores, flagScoresLevel = 0, false, 0 })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", cfgPath,
		"--db", filepath.Join(dir, "records.db"),
		"--log-file", filepath.Join(dir, "sokoban.log"),
	}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// openHandles counts file descriptors of this process that point at path.
func openHandles(t *testing.T, path string) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	n := 0
	for _, e := range entries {
		if target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name())); err == nil && target == path {
			n++
		}
	}
	return n
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name    string
		moves   string
		wantErr bool
		expect  []string
	}{
		{"solves", "rrr", false, []string{"First Push", "Phase: won", "Moves: 3", "Applied: 3", "Player: 4,1"}},
		{"whitespace ignored", "r r\tr", false, []string{"Phase: won", "Applied: 3"}},
		{"partial", "r", false, []string{"Phase: playing", "Moves: 1", "Player: 2,1"}},
		{"rejected move", "rul", true, []string{"Applied: 1", "Player: 2,1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), "replay", "tutorial", "1", tt.moves)
			if (err != nil) != tt.wantErr {
				t.Fatalf("replay error = %v, expected error %v", err, tt.wantErr)
			}
			for _, want := range tt.expect {
				if !strings.Contains(out, want) {
					t.Errorf("replay output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestReplayLevelOutOfRange(t *testing.T) {
	_, err := execute(t, t.TempDir(), "replay", "tutorial", "99", "r")
	if err == nil || !strings.Contains(err.Error(), "level must be between 1 and") {
		t.Errorf("replay error = %v, expected level range error", err)
	}
}

func TestFailingCommandsCloseLogFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"replay rejected move", []string{"replay", "tutorial", "1", "u"}},
		{"replay unknown pack", []string{"replay", "nope", "1", "r"}},
		{"validate missing file", []string{"validate", "missing.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := execute(t, dir, tt.args...); err == nil {
				t.Fatal("Execute() error = nil, expected error")
			}

			logPath := filepath.Join(dir, "sokoban.log")
			if _, err := os.Stat(logPath); err != nil {
				t.Fatalf("log file not created: %v", err)
			}
			if n := openHandles(t, logPath); n != 0 {
				t.Errorf("open handles on log file = %d, expected 0", n)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")

	files := map[string]string{
		good: "id: good\nname: Good\nlevels:\n  - name: One\n    rows:\n      - \"#####\"\n      - \"#@$.#\"\n      - \"#####\"\n",
		bad:  "id: bad\nname: Bad\nlevels:\n  - name: Empty\n    rows:\n      - \"#####\"\n      - \"#@$ #\"\n      - \"#####\"\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	out, err := execute(t, dir, "validate", good)
	if err != nil {
		t.Fatalf("validate good error = %v, expected nil", err)
	}
	if !strings.Contains(out, "ok") || !strings.Contains(out, "boxes=1 targets=1") {
		t.Errorf("validate good output:\n%s", out)
	}

	out, err = execute(t, dir, "validate", good, bad)
	if err == nil || !strings.Contains(err.Error(), "1 problem(s) found") {
		t.Errorf("validate bad error = %v, expected one problem", err)
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "no targets") {
		t.Errorf("validate bad output:\n%s", out)
	}
}

func TestScoresLevel(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	for _, sv := range []storage.Solve{
		{PackID: "tutorial", LevelIndex: 0, LevelName: "First Push", Moves: 5, Player: "bob"},
		{PackID: "tutorial", LevelIndex: 0, LevelName: "First Push", Moves: 3, Player: "alice"},
		{PackID: "tutorial", LevelIndex: 1, LevelName: "Around the Corner", Moves: 9},
	} {
		if _, err := store.SaveSolve(sv); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	store.Close()

	out, err := execute(t, dir, "scores", "tutorial", "--level", "1")
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	alice := strings.Index(out, "alice")
	bob := strings.Index(out, "bob")
	if alice < 0 || bob < 0 || alice > bob {
		t.Errorf("scores --level output not ordered by moves:\n%s", out)
	}
	if strings.Contains(out, "Around the Corner") {
		t.Errorf("scores --level output lists another level:\n%s", out)
	}

	out, err = execute(t, dir, "scores", "tutorial", "--level", "3")
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	if !strings.Contains(out, "No solves yet.") {
		t.Errorf("scores --level on unsolved level:\n%s", out)
	}

	if _, err := execute(t, dir, "scores", "--level", "1"); err == nil {
		t.Error("scores --level without pack error = nil, expected error")
	}
}
