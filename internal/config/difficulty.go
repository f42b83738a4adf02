package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// hardHistoryDepth is the undo depth on the hard preset.
const hardHistoryDepth = 10

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (valid: easy, normal, hard, fixed)", s)
}

// IsFixedPreset returns true if the preset keeps the loaded rules.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Description returns a short summary for menus and help output.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "full undo, no move limits"
	case DifficultyNormal:
		return "full undo, move limits"
	case DifficultyHard:
		return fmt.Sprintf("%d undo steps, move limits", hardHistoryDepth)
	case DifficultyFixed:
		return "rules as configured"
	default:
		return ""
	}
}
