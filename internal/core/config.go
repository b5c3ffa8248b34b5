package core

// RuntimeConfig contains configuration passed to games at initialization.
// Frontends fill it from the terminal or window they run in.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Frames per second requested from the host (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Jumped is true when a jump command was accepted this tick.
	Jumped bool

	// Ended is true only on the tick where the run ended.
	Ended bool

	// FinalScore is the score reported to the player when Ended is true.
	FinalScore int
}
