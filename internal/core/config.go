package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Player  string // Name recorded with solves, may be empty
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // Zero-based index of the current level
	Moves    int  // Moves made on the current level
	Solved   bool // Current level is solved
	GameOver bool // No further moves possible until restart (failed or finished)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState

	// Changed is false when the input had no visible effect.
	Changed bool
}
