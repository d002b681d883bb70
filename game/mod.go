package game

import "errors"

// Board geometry and rule thresholds. These are fixed for the variant played here.
const (
	NumHouses     = 12
	HousesPerSide = NumHouses / 2
	StartingSeeds = 4
	TotalSeeds    = NumHouses * StartingSeeds
	SeedsToWin    = 25
	DrawScore     = TotalSeeds / 2
	NumPlayers    = 2
)

// NoPlayer is returned by Winner while nobody has reached SeedsToWin.
const NoPlayer = -1

// NoMove signals that the player to move has no legal house to sow.
const NoMove = -1

var (
	ErrInvalidIndex    = errors.New("house index out of range")
	ErrInvalidPlayer   = errors.New("player out of range")
	ErrInvalidPosition = errors.New("position is not reachable")
)

type StateHash uint64

// Source picks the first player of a round. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}
