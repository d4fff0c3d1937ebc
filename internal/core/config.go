package core

// RuntimeConfig is what the platform tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Fixed steps per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig is a classic 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the summary the platform reads after every step.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Wave     int  // Current wave number, 0 before the first wave
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
