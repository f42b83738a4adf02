// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the CLI and the SSH
// server can create them by ID without importing each package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// maps keys to actions and turns the screen buffer into terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "sokoban", "sokoban_tutorial").
	// Used by the CLI and the menu.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session for the given screen size.
	// Level packs and rules are resolved here, not in the factory.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions of one key press.
	// Play is turn-based: Step is only called when input arrives.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing progress.
type Resizer interface {
	Resize(width, height int)
}

// ControlsProvider is implemented by games that describe their key bindings.
type ControlsProvider interface {
	Controls() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Factories must be cheap: this instance only supplies the title.
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Controls returns the key help of a game, or "" if it has none.
func Controls(g Game) string {
	if cp, ok := g.(ControlsProvider); ok {
		return cp.Controls()
	}
	return ""
}
