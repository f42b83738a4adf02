package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// solveSource is implemented by games whose wins are recorded.
type solveSource interface {
	PackID() string
	LevelName() string
}

// Model is the Bubble Tea model for playing one game.
// Play is turn-based: the game only steps when a key arrives.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	renderer   *ScreenRenderer
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // Back returns to the menu instead of quitting
	embedded   bool // Running inside SessionModel; never quit the program on Back
	quitting   bool
	backToMenu bool
	lastSaved  *storage.Solve
	newBest    bool // lastSaved beat every earlier solve of its level
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		renderer:   defaultScreenRenderer,
		inputFrame: core.NewInputFrame(),
	}
}

// newMenuGameModel creates a model whose Back key returns to the caller.
func newMenuGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, embedded bool) Model {
	m := NewModel(game, store, cfg)
	m.allowBack = true
	m.embedded = embedded
	return m
}

// playHeight reserves the bottom row for the controls footer.
func playHeight(h int) int {
	return core.Max(h-1, 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	m.inputFrame.Clear()
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		if m.allowBack {
			m.backToMenu = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Empty() {
		return m, nil
	}

	wasSolved := m.gameState.Solved
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Solved && !wasSolved {
		m.recordSolve()
	}

	return m, nil
}

// recordSolve stores the win that just happened. Best-effort: the game
// continues if the store is missing or the write fails.
func (m *Model) recordSolve() {
	src, ok := m.game.(solveSource)
	if !ok || m.store == nil {
		return
	}

	solve := storage.Solve{
		PackID:     src.PackID(),
		LevelIndex: m.gameState.Level,
		LevelName:  src.LevelName(),
		Moves:      m.gameState.Moves,
		Player:     m.config.Player,
	}
	prev, solvedBefore, err := m.store.BestMoves(solve.PackID, solve.LevelIndex)
	if err != nil {
		solvedBefore = false
	}
	if _, err := m.store.SaveSolve(solve); err == nil {
		m.lastSaved = &solve
		m.newBest = !solvedBefore || solve.Moves < prev
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	} else {
		m.game.Reset(m.gameConfig())
	}
	m.gameState = m.game.State()

	return m, nil
}

// saveScreenshot saves the current screen to ~/.sokoban/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sokoban", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the game followed by the controls footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := registry.Controls(m.game)
	if m.allowBack {
		footer += " | B: Menu"
	}
	if m.gameState.Solved && m.lastSaved != nil {
		saved := fmt.Sprintf("Saved: %d moves", m.lastSaved.Moves)
		if m.newBest {
			saved += " (new best)"
		}
		footer = saved + " | " + footer
	}
	return m.renderer.Render(m.screen) + "\n" + m.renderer.Footer(centerText(footer, m.config.ScreenW))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastSaved returns the most recently recorded solve, if any.
func (m Model) LastSaved() *storage.Solve {
	return m.lastSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen()).Run()
	return err
}

// RunFromMenu plays a game launched from the menu.
// Returns true if the user asked to go back rather than quit.
func RunFromMenu(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	finalModel, err := tea.NewProgram(newMenuGameModel(game, store, cfg, false), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
