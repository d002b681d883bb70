package engine

import (
	"errors"

	"oware/experiments/metrics"
	"oware/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMove      = errors.New("agent found no move")
)

// Agent chooses the house to sow for the player to move. It must not mutate the game.
type Agent interface {
	FindMove(state *game.Game) (int, metrics.SearchMetric)
}

// Sweep records a player banking their own row because they could not sow.
type Sweep struct {
	Player int
	Houses []int
}

// Update describes everything a single Play changed, in the order it happened.
type Update struct {
	Player   int
	House    int
	Sown     []int // houses that received a seed, in sowing order
	Captured []int
	Sweeps   []Sweep
	Scores   [game.NumPlayers]int
	Hash     game.StateHash
	Ended    bool
	Winner   int
	Drawn    bool
}
