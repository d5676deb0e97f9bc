package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Name recorded with saved scores
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by reaching the win score
	Paused   bool // Whether the game is paused
	Ticks    int  // Simulation ticks since the scene started
}

// Transition is a scene change requested by a game.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionMenu            // Leave the game and show the main menu
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case TransitionMenu:
		return "menu"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any scene transition requested.
type StepResult struct {
	State      GameState
	Transition Transition
}
