package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{name: "arrow up", msg: tea.KeyMsg{Type: tea.KeyUp}, expected: core.ActionUp},
		{name: "wasd down", msg: runeKey('s'), expected: core.ActionDown},
		{name: "vim left", msg: runeKey('h'), expected: core.ActionLeft},
		{name: "arrow right", msg: tea.KeyMsg{Type: tea.KeyRight}, expected: core.ActionRight},
		{name: "undo", msg: runeKey('u'), expected: core.ActionUndo},
		{name: "undo backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, expected: core.ActionUndo},
		{name: "restart", msg: runeKey('r'), expected: core.ActionRestart},
		{name: "hint", msg: runeKey('?'), expected: core.ActionHint},
		{name: "next", msg: runeKey(']'), expected: core.ActionNext},
		{name: "prev", msg: runeKey('['), expected: core.ActionPrev},
		{name: "confirm", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: core.ActionConfirm},
		{name: "back", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: core.ActionBack},
		{name: "pause", msg: runeKey('p'), expected: core.ActionPause},
		{name: "quit", msg: runeKey('q'), expected: core.ActionQuit, quit: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: core.ActionQuit, quit: true},
		{name: "unbound", msg: runeKey('x'), expected: core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Error("MapKeyToFrame(d) reported quit")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("frame missing ActionRight")
	}

	frame.Clear()
	km.MapKeyToFrame(runeKey('x'), &frame)
	if !frame.Empty() {
		t.Error("unbound key set an action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{msg: runeKey('k'), expected: MenuActionUp},
		{msg: tea.KeyMsg{Type: tea.KeyDown}, expected: MenuActionDown},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: MenuActionSelect},
		{msg: runeKey('b'), expected: MenuActionBack},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, expected: MenuActionRecords},
		{msg: runeKey('q'), expected: MenuActionQuit},
		{msg: runeKey('x'), expected: MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
