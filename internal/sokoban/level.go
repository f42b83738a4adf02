package sokoban

import "fmt"

// LevelDefinition is the immutable input for one level.
// The engine never mutates Map; it copies it on every load.
type LevelDefinition struct {
	Name string
	Map  Grid

	// MoveLimit is the number of moves allowed before the level fails.
	// Zero means unlimited.
	MoveLimit int
}

// Clone returns a deep copy of the definition.
func (l LevelDefinition) Clone() LevelDefinition {
	return LevelDefinition{
		Name:      l.Name,
		Map:       l.Map.Clone(),
		MoveLimit: l.MoveLimit,
	}
}

// Stats summarizes the content of a grid.
type Stats struct {
	Width   int
	Height  int
	Boxes   int // Box and BoxOnTarget
	Targets int // every target-bearing cell
	Players int
	Placed  int // boxes already on targets
}

// ComputeStats counts boxes, targets and players in the grid.
func ComputeStats(g Grid) Stats {
	return Stats{
		Width:   g.Width(),
		Height:  g.Height(),
		Boxes:   g.Count(TileKind.IsBox),
		Targets: g.Count(TileKind.IsTarget),
		Players: g.Count(TileKind.IsPlayer),
		Placed:  g.Count(func(t TileKind) bool { return t == BoxOnTarget }),
	}
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeEmptyMap    = "EMPTY_MAP"
	CodeInvalidTile = "INVALID_TILE"
	CodePlayerCount = "PLAYER_COUNT"
	CodeNoTargets   = "NO_TARGETS"
	CodeBoxShortage = "BOX_SHORTAGE"
)

// ValidateCells checks raw numeric level data: every cell must be an
// integer tile code in [0, 6].
func ValidateCells(cells [][]int) error {
	for y, row := range cells {
		for x, c := range row {
			if c < 0 || c >= tileKindCount {
				return ValidationError{
					Code:    CodeInvalidTile,
					Message: fmt.Sprintf("cell (%d, %d) has value %d, expected 0-6", x, y, c),
				}
			}
		}
	}
	return nil
}

// FromInts converts raw numeric cells into a Grid.
func FromInts(cells [][]int) (Grid, error) {
	if err := ValidateCells(cells); err != nil {
		return nil, err
	}
	g := make(Grid, len(cells))
	for y, row := range cells {
		g[y] = make([]TileKind, len(row))
		for x, c := range row {
			g[y][x] = TileKind(c)
		}
	}
	return g, nil
}

// ValidateLevel performs the structural checks a level provider must
// apply before handing a definition to the engine.
func ValidateLevel(def LevelDefinition) error {
	if len(def.Map) == 0 || def.Map.Width() == 0 {
		return ValidationError{
			Code:    CodeEmptyMap,
			Message: fmt.Sprintf("level %q has no cells", def.Name),
		}
	}
	for y, row := range def.Map {
		for x, t := range row {
			if !t.Valid() {
				return ValidationError{
					Code:    CodeInvalidTile,
					Message: fmt.Sprintf("level %q: cell (%d, %d) has value %d", def.Name, x, y, t),
				}
			}
		}
	}
	return nil
}

// ValidateStrict runs ValidateLevel and also checks that the level is
// playable: one player, at least one target, enough boxes.
func ValidateStrict(def LevelDefinition) error {
	if err := ValidateLevel(def); err != nil {
		return err
	}

	stats := ComputeStats(def.Map)
	if stats.Players != 1 {
		return ValidationError{
			Code:    CodePlayerCount,
			Message: fmt.Sprintf("level %q has %d player tiles, expected 1", def.Name, stats.Players),
		}
	}
	if stats.Targets == 0 {
		return ValidationError{
			Code:    CodeNoTargets,
			Message: fmt.Sprintf("level %q has no targets", def.Name),
		}
	}
	if stats.Boxes < stats.Targets {
		return ValidationError{
			Code:    CodeBoxShortage,
			Message: fmt.Sprintf("level %q: %d boxes < %d targets", def.Name, stats.Boxes, stats.Targets),
		}
	}
	return nil
}
