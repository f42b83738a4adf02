package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft, ActionUndo)

	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionLeft, true},
		{ActionUndo, true},
		{ActionRight, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := f.Has(tc.action); got != tc.expected {
				t.Errorf("Has(%v) = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}

	if f.Empty() {
		t.Error("Empty() = true, expected false")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Empty() after Clear() = false, expected true")
	}

	var zero InputFrame
	if zero.Has(ActionUp) || !zero.Empty() {
		t.Error("zero InputFrame should be empty")
	}
	zero.Set(ActionHint)
	if !zero.Has(ActionHint) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionPrev.String() != "Prev" {
		t.Errorf("ActionPrev.String() = %q, expected Prev", ActionPrev.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
