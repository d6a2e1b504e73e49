package core

// GameState is the session-level view of a running game.
type GameState struct {
	Score    int  // Current score (never negative)
	GameOver bool // Terminal state reached
	Won      bool // Terminal state was a win rather than a loss
}
