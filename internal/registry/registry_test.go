package registry

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Controls() string                     { return "keys" }

type plainGame struct{ stubGame }

func (plainGame) Controls() {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "B"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "A"} })

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create(stub_missing) error = nil, expected error")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a=A" || ids[1] != "stub_b=B" {
		t.Errorf("List() = %v, expected sorted [stub_a=A stub_b=B]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID did not panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestControls(t *testing.T) {
	if got := Controls(&stubGame{}); got != "keys" {
		t.Errorf("Controls() = %q, expected keys", got)
	}
	if got := Controls(&plainGame{}); got != "" {
		t.Errorf("Controls() = %q, expected empty for game without key help", got)
	}
}
