// Package sokoban implements the box-pushing puzzle state machine.
// It owns the grid of the loaded level, validates and applies moves,
// detects the win condition and keeps a bounded undo history.
// The package has no UI dependencies; the platform layer drives it.
package sokoban

// TileKind is the content of a single grid cell.
// The numeric values are part of the level data contract.
type TileKind uint8

const (
	Empty TileKind = iota
	Wall
	Target
	Box
	BoxOnTarget
	Player
	PlayerOnTarget
)

// tileKindCount is the number of valid tile kinds.
const tileKindCount = 7

// Valid reports whether t is one of the defined tile kinds.
func (t TileKind) Valid() bool {
	return t < tileKindCount
}

// IsPlayer returns true for Player and PlayerOnTarget.
func (t TileKind) IsPlayer() bool {
	return t == Player || t == PlayerOnTarget
}

// IsBox returns true for Box and BoxOnTarget.
func (t TileKind) IsBox() bool {
	return t == Box || t == BoxOnTarget
}

// IsTarget returns true for every target-bearing cell,
// whether bare or covered by a box or the player.
func (t TileKind) IsTarget() bool {
	return t == Target || t == BoxOnTarget || t == PlayerOnTarget
}

// IsUncovered returns true for targets that still need a box.
func (t TileKind) IsUncovered() bool {
	return t == Target || t == PlayerOnTarget
}

// String returns a human-readable name for the tile.
func (t TileKind) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Target:
		return "Target"
	case Box:
		return "Box"
	case BoxOnTarget:
		return "BoxOnTarget"
	case Player:
		return "Player"
	case PlayerOnTarget:
		return "PlayerOnTarget"
	default:
		return "Unknown"
	}
}

// Rune returns the debug glyph for the tile.
func (t TileKind) Rune() rune {
	switch t {
	case Empty:
		return ' '
	case Wall:
		return '█'
	case Target:
		return '·'
	case Box:
		return '□'
	case BoxOnTarget:
		return '■'
	case Player:
		return '♂'
	case PlayerOnTarget:
		return '★'
	default:
		return '?'
	}
}

// withPlayer returns the tile the player leaves behind or steps onto.
func withPlayer(targetBearing bool) TileKind {
	if targetBearing {
		return PlayerOnTarget
	}
	return Player
}

func withBox(targetBearing bool) TileKind {
	if targetBearing {
		return BoxOnTarget
	}
	return Box
}

func vacated(targetBearing bool) TileKind {
	if targetBearing {
		return Target
	}
	return Empty
}
