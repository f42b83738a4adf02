package sokoban

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"
)

// ErrMoveRejected is returned by Replay when a move cannot be applied.
var ErrMoveRejected = errors.New("sokoban: move rejected")

// Hint messages.
const (
	hintFormat   = "Push a box to position (%d, %d)"
	hintNoTarget = "No target found"
)

// Engine is the puzzle state machine for an ordered sequence of levels.
// It is not safe for concurrent use; callers serialize all calls.
type Engine struct {
	levels []LevelDefinition

	current int
	grid    Grid
	player  Position
	moves   int
	phase   Phase
	history *History

	enforceLimits bool
	logger        *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes diagnostics to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHistoryDepth sets the maximum number of undo steps.
func WithHistoryDepth(depth int) Option {
	return func(e *Engine) {
		e.history = NewHistory(depth)
	}
}

// WithMoveLimits enables or disables per-level move limits.
func WithMoveLimits(enforce bool) Option {
	return func(e *Engine) {
		e.enforceLimits = enforce
	}
}

// New creates an engine over levels and loads the first one.
// The definitions are treated as read-only.
func New(levels []LevelDefinition, opts ...Option) *Engine {
	e := &Engine{
		levels:        append([]LevelDefinition(nil), levels...),
		phase:         PhaseIdle,
		history:       NewHistory(DefaultHistoryDepth),
		enforceLimits: true,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Load(0)
	return e
}

// Load replaces the play state with a fresh copy of the level at index.
// An out-of-range index is rejected and leaves the current state untouched.
func (e *Engine) Load(index int) bool {
	if index < 0 || index >= len(e.levels) {
		e.logger.Error("invalid level index", "index", index, "levels", len(e.levels))
		return false
	}

	level := e.levels[index]
	e.current = index
	e.grid = level.Map.Clone()
	e.moves = 0
	e.history.Clear()

	// A level without a player keeps the previous position.
	if pos, ok := e.grid.Find(TileKind.IsPlayer); ok {
		e.player = pos
	} else {
		e.logger.Warn("player not found in level map", "level", index+1, "name", level.Name)
	}

	e.phase = PhasePlaying
	e.logger.Debug("loaded level", "level", index+1, "name", level.Name)
	return true
}

// Reset reloads the current level.
func (e *Engine) Reset() {
	e.Load(e.current)
}

// Move attempts to move the player one cell in dir, pushing a box if one
// is in the way. Rejected moves leave grid, position, move count and
// history exactly as they were.
func (e *Engine) Move(dir Direction) bool {
	if e.phase != PhasePlaying {
		e.logger.Debug("move rejected", "direction", dir, "phase", e.phase)
		return false
	}

	next := e.player.Add(dir)
	if !e.grid.InBounds(next) {
		return false
	}

	beyond := next.Add(dir)
	tile := e.grid.At(next)

	switch {
	case tile.IsBox():
		if !e.grid.InBounds(beyond) {
			return false
		}
		if b := e.grid.At(beyond); b == Wall || b.IsBox() {
			return false
		}
	case tile == Wall:
		return false
	}

	e.history.push(e.snapshot())

	if tile.IsBox() {
		e.grid.Set(beyond, withBox(e.grid.At(beyond).IsTarget()))
		e.grid.Set(next, vacated(tile.IsTarget()))
	}

	if e.grid.InBounds(e.player) {
		e.grid.Set(e.player, vacated(e.grid.At(e.player).IsTarget()))
	}
	e.grid.Set(next, withPlayer(e.grid.At(next).IsTarget()))

	e.player = next
	e.moves++
	e.logger.Debug("moved", "direction", dir, "moves", e.moves, "pushed", tile.IsBox())

	switch {
	case e.grid.isSolved():
		e.phase = PhaseWon
		e.logger.Info("level completed", "level", e.current+1, "moves", e.moves)
	case e.limitReached():
		e.phase = PhaseFailed
		e.logger.Info("move limit reached", "level", e.current+1, "limit", e.levels[e.current].MoveLimit)
	}

	return true
}

// Undo restores the state from before the most recent move.
// It is only available while playing.
func (e *Engine) Undo() bool {
	if e.phase != PhasePlaying || e.history.Len() == 0 {
		e.logger.Warn("cannot undo", "history", e.history.Len(), "phase", e.phase)
		return false
	}

	s, _ := e.history.pop()
	e.grid = s.grid
	e.player = s.player
	e.moves = s.moves
	e.logger.Debug("undo", "moves", e.moves, "history", e.history.Len())
	return true
}

// Advance loads the next level after a win. Winning the last level
// moves the engine to Finished and returns false.
func (e *Engine) Advance() bool {
	if e.phase != PhaseWon {
		return false
	}
	if e.current+1 >= len(e.levels) {
		e.phase = PhaseFinished
		e.logger.Info("all levels completed", "levels", len(e.levels))
		return false
	}
	return e.Load(e.current + 1)
}

// Replay applies a move string such as "rrdLU" (whitespace ignored).
// It stops without error once the level leaves the playing phase and
// returns ErrMoveRejected for the first move that cannot be applied.
func (e *Engine) Replay(path string) (int, error) {
	dirs := make([]Direction, 0, len(path))
	for _, r := range path {
		if unicode.IsSpace(r) {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return 0, err
		}
		dirs = append(dirs, d)
	}

	applied := 0
	for i, d := range dirs {
		if e.phase != PhasePlaying {
			break
		}
		if !e.Move(d) {
			return applied, fmt.Errorf("move %d (%s): %w", i+1, d, ErrMoveRejected)
		}
		applied++
	}
	return applied, nil
}

// Hint names the first bare target in row-major order, 1-indexed.
func (e *Engine) Hint() string {
	pos, ok := e.grid.Find(func(t TileKind) bool { return t == Target })
	if !ok {
		return hintNoTarget
	}
	return fmt.Sprintf(hintFormat, pos.X+1, pos.Y+1)
}

func (e *Engine) snapshot() snapshot {
	return snapshot{
		grid:   e.grid.Clone(),
		player: e.player,
		moves:  e.moves,
	}
}

func (e *Engine) limitReached() bool {
	if !e.enforceLimits {
		return false
	}
	limit := e.levels[e.current].MoveLimit
	return limit > 0 && e.moves >= limit
}

// CurrentLevel returns the zero-based index of the loaded level.
func (e *Engine) CurrentLevel() int {
	return e.current
}

// TotalLevels returns the number of levels.
func (e *Engine) TotalLevels() int {
	return len(e.levels)
}

// LevelName returns the display name of the loaded level.
func (e *Engine) LevelName() string {
	if e.current < 0 || e.current >= len(e.levels) {
		return ""
	}
	return e.levels[e.current].Name
}

// MoveLimit returns the move limit in effect, or 0 when unlimited.
func (e *Engine) MoveLimit() int {
	if !e.enforceLimits || e.current >= len(e.levels) {
		return 0
	}
	return e.levels[e.current].MoveLimit
}

// Moves returns the number of moves made on the current level.
func (e *Engine) Moves() int {
	return e.moves
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// PlayerPos returns the player position.
func (e *Engine) PlayerPos() Position {
	return e.player
}

// HistoryLen returns the number of undo steps available.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// HistoryDepth returns the maximum number of undo steps.
func (e *Engine) HistoryDepth() int {
	return e.history.Cap()
}

// CanUndo reports whether Undo would succeed.
func (e *Engine) CanUndo() bool {
	return e.history.Len() > 0 && e.phase == PhasePlaying
}

// IsPlaying reports whether moves are accepted.
func (e *Engine) IsPlaying() bool {
	return e.phase == PhasePlaying
}

// HasWon reports whether the current level is solved.
func (e *Engine) HasWon() bool {
	return e.phase == PhaseWon
}

// Stats summarizes the current grid.
func (e *Engine) Stats() Stats {
	return ComputeStats(e.grid)
}

// Progress returns the position of the current level through the
// sequence as a rounded percentage.
func (e *Engine) Progress() int {
	if len(e.levels) == 0 {
		return 0
	}
	return ((e.current+1)*200 + len(e.levels)) / (2 * len(e.levels))
}
