// Package sokoban adapts the puzzle engine to the platform game interface.
package sokoban

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	engine "github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

const (
	IDClassic  = "sokoban"
	IDTutorial = "sokoban_tutorial"
)

// Game implements registry.Game on top of a sokoban.Engine.
type Game struct {
	id     string
	packID string

	// Copied from the package selection when the game is created.
	opts       options
	startLevel int // 1-based, 0 for the first level

	pack    levels.Pack
	eng     *engine.Engine
	rules   config.RulesConfig
	display config.DisplayConfig
	palette palette
	logger  *log.Logger

	// Screen dimensions
	screenW int
	screenH int

	player   string
	paused   bool
	showHint bool
	message  string // one-shot status line, cleared by the next action
}

// options is the package-level selection a game copies at creation.
type options struct {
	pack    *levels.Pack // nil plays the built-in pack
	rules   config.RulesConfig
	display config.DisplayConfig
	logger  *log.Logger
}

// Package-level selection, set by the CLI before games are created.
// Games never read it after construction, so sessions can run in parallel.
var (
	mu                 sync.Mutex
	selectedStartLevel int
	selected           = options{
		rules:   config.DefaultConfig().Rules,
		display: config.DefaultConfig().Display,
	}
)

// SetStartLevel sets the 1-based level the next classic game created
// with New starts on. 0 means start from the first level.
func SetStartLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	selectedStartLevel = level
}

// SetPack makes classic games created afterwards play the given pack
// instead of the built-in one. Passing an empty pack clears the override.
func SetPack(p levels.Pack) {
	mu.Lock()
	defer mu.Unlock()
	if p.ID == "" {
		selected.pack = nil
		return
	}
	selected.pack = &p
}

// SetRules sets the engine rules for games created afterwards.
func SetRules(r config.RulesConfig) {
	mu.Lock()
	defer mu.Unlock()
	selected.rules = r
}

// SetDisplay sets the rendering options for games created afterwards.
func SetDisplay(d config.DisplayConfig) {
	mu.Lock()
	defer mu.Unlock()
	selected.display = d
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	selected.logger = l
}

// currentOptions copies the selection. With takeStart the selected start
// level is handed over and cleared.
func currentOptions(takeStart bool) (options, int) {
	mu.Lock()
	defer mu.Unlock()

	start := 0
	if takeStart {
		start = selectedStartLevel
		selectedStartLevel = 0
	}
	return selected, start
}

// New creates a game on the classic pack, or on the pack set with SetPack.
func New() *Game {
	opts, start := currentOptions(true)
	return &Game{id: IDClassic, packID: levels.PackClassic, opts: opts, startLevel: start}
}

// NewTutorial creates a game on the built-in tutorial pack.
func NewTutorial() *Game {
	opts, _ := currentOptions(false)
	opts.pack = nil
	return &Game{id: IDTutorial, packID: levels.PackTutorial, opts: opts}
}

// NewForPack creates a classic game bound to p, starting on the 1-based
// startLevel. The package-level pack and start level are left alone.
func NewForPack(p levels.Pack, startLevel int) *Game {
	opts, _ := currentOptions(false)
	opts.pack = &p
	return &Game{id: IDClassic, packID: levels.PackClassic, opts: opts, startLevel: startLevel}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDTutorial, func() registry.Game {
		return NewTutorial()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDTutorial {
		return "Sokoban (Tutorial)"
	}
	return "Sokoban"
}

// Reset resolves the pack and starts a fresh engine on it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.player = cfg.Player
	g.paused = false
	g.message = ""

	g.logger = g.opts.logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.rules = g.opts.rules
	g.display = g.opts.display
	g.showHint = g.display.ShowHint
	g.palette = newPalette(g.display.Palette, g.logger)

	g.pack = g.resolvePack()
	g.eng = engine.New(g.pack.Levels,
		engine.WithLogger(g.logger),
		engine.WithHistoryDepth(g.rules.HistoryDepth),
		engine.WithMoveLimits(g.rules.EnforceMoveLimits),
	)

	if g.startLevel > 0 && g.startLevel <= g.pack.Len() {
		g.eng.Load(g.startLevel - 1)
	}
}

func (g *Game) resolvePack() levels.Pack {
	if g.opts.pack != nil {
		return *g.opts.pack
	}
	p, err := levels.BuiltinPack(g.packID)
	if err != nil {
		g.logger.Error("cannot load builtin pack", "pack", g.packID, "err", err)
		return levels.Pack{ID: g.packID, Name: g.packID}
	}
	return p
}

// Resize adapts to a new terminal size without touching the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Step applies the actions of one key press.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.message = ""
	changed := true

	switch {
	case in.Has(core.ActionUp):
		changed = g.eng.Move(engine.DirUp)
	case in.Has(core.ActionDown):
		changed = g.eng.Move(engine.DirDown)
	case in.Has(core.ActionLeft):
		changed = g.eng.Move(engine.DirLeft)
	case in.Has(core.ActionRight):
		changed = g.eng.Move(engine.DirRight)
	case in.Has(core.ActionUndo):
		if !g.eng.CanUndo() {
			g.message = "Nothing to undo"
			break
		}
		g.eng.Undo()
	case in.Has(core.ActionRestart):
		g.eng.Reset()
	case in.Has(core.ActionHint):
		g.showHint = !g.showHint
	case in.Has(core.ActionConfirm):
		changed = g.eng.HasWon() && g.next()
	case in.Has(core.ActionNext):
		changed = g.next()
	case in.Has(core.ActionPrev):
		changed = g.prev()
	default:
		changed = false
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// next advances after a win, or skips ahead otherwise.
func (g *Game) next() bool {
	if g.eng.HasWon() {
		if !g.eng.Advance() {
			// Finished is a visible change even though no level loaded.
			return g.eng.Phase() == engine.PhaseFinished
		}
		return true
	}
	if g.eng.Phase() == engine.PhaseFinished {
		return false
	}
	if g.eng.CurrentLevel()+1 >= g.eng.TotalLevels() {
		g.message = "Already on the last level"
		return false
	}
	return g.eng.Load(g.eng.CurrentLevel() + 1)
}

func (g *Game) prev() bool {
	if g.eng.CurrentLevel() == 0 {
		g.message = "Already on the first level"
		return false
	}
	return g.eng.Load(g.eng.CurrentLevel() - 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	phase := g.eng.Phase()
	return core.GameState{
		Level:    g.eng.CurrentLevel(),
		Moves:    g.eng.Moves(),
		Solved:   phase == engine.PhaseWon,
		GameOver: phase.Terminal() && phase != engine.PhaseWon,
		Paused:   g.paused || g.tooSmall(),
	}
}

// Pack returns the pack being played.
func (g *Game) Pack() levels.Pack {
	return g.pack
}

// PackID returns the ID solves are recorded under.
func (g *Game) PackID() string {
	return g.pack.ID
}

// LevelName returns the name of the current level.
func (g *Game) LevelName() string {
	if g.eng == nil {
		return ""
	}
	return g.eng.LevelName()
}
