package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Wave     int     // Current wave number
	Kills    int     // Enemies destroyed so far
	Elapsed  float64 // Simulated milliseconds
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	Cues  []string // Audio cue names raised during the frame, in order
}
