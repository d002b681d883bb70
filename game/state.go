package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"oware/utils"

	"golang.org/x/exp/rand"
)

// Game is the rules engine: the board, both banked scores, whose turn it is and the trace of
// houses seeded by the current turn's sow. It is mutated in place and is not safe for concurrent use.
type Game struct {
	board             *Board
	scores            [NumPlayers]int
	playerTurn        int
	incrementedHouses []int // houses seeded this turn, in sowing order
	vsAI              bool  // player 1 is the computer when set
	source            Source
}

type Option func(g *Game)

// WithSource replaces the random source used to pick the first player.
func WithSource(source Source) Option {
	return func(g *Game) {
		if source != nil {
			g.source = source
		}
	}
}

// New creates a game with a full board and a randomly chosen first player.
func New(vsAI bool, options ...Option) *Game {
	g := &Game{vsAI: vsAI}
	for _, option := range options {
		option(g)
	}
	if g.source == nil {
		g.source = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.Reset()
	return g
}

// FromPosition creates a game from a position with an empty sow trace. The houses and both
// scores must add up to TotalSeeds.
func FromPosition(houses [NumHouses]int, scores [NumPlayers]int, player int, vsAI bool, options ...Option) (*Game, error) {
	if player != 0 && player != 1 {
		return nil, fmt.Errorf("player %d: %w", player, ErrInvalidPlayer)
	}
	board, err := BoardFrom(houses)
	if err != nil {
		return nil, err
	}
	for p, score := range scores {
		if score < 0 {
			return nil, fmt.Errorf("player %d scored %d: %w", p, score, ErrInvalidPosition)
		}
	}
	if total := utils.Sum(houses[:]) + utils.Sum(scores[:]); total != TotalSeeds {
		return nil, fmt.Errorf("position holds %d seeds: %w", total, ErrInvalidPosition)
	}

	g := New(vsAI, options...)
	g.board = board
	g.scores = scores
	g.playerTurn = player
	return g, nil
}

// Reset restores the starting position and draws a new first player.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.scores = [NumPlayers]int{}
	g.playerTurn = g.source.Intn(NumPlayers)
	g.incrementedHouses = nil
}

// Clone returns a deep copy. The copy shares only the random source.
func (g *Game) Clone() *Game {
	incremented := make([]int, len(g.incrementedHouses))
	copy(incremented, g.incrementedHouses)

	return &Game{
		board:             g.board.Clone(),
		scores:            g.scores,
		playerTurn:        g.playerTurn,
		incrementedHouses: incremented,
		vsAI:              g.vsAI,
		source:            g.source,
	}
}

func (g *Game) CurrentPlayer() int {
	return g.playerTurn
}

func (g *Game) VsAI() bool {
	return g.vsAI
}

// IsAITurn reports whether the computer, always player 1, is to move.
func (g *Game) IsAITurn() bool {
	return g.vsAI && g.playerTurn == 1
}

func (g *Game) Scores() [NumPlayers]int {
	return g.scores
}

func (g *Game) SeedCount(house int) (int, error) {
	return g.board.SeedCount(house)
}

// seeds reads a house whose index the caller already validated.
func (g *Game) seeds(house int) int {
	n, err := g.board.SeedCount(house)
	if err != nil {
		panic(err)
	}
	return n
}

func (g *Game) owner(house int) int {
	player, err := g.board.Owner(house)
	if err != nil {
		panic(err)
	}
	return player
}

// clear empties a house whose index the caller already validated and returns its seeds.
func (g *Game) clear(house int) int {
	n := g.seeds(house)
	if err := g.board.Clear(house); err != nil {
		panic(err)
	}
	return n
}

// IncrementedHouses returns a copy of the houses seeded during the current turn.
func (g *Game) IncrementedHouses() []int {
	houses := make([]int, len(g.incrementedHouses))
	copy(houses, g.incrementedHouses)
	return houses
}

// PlayerSeedCount is the number of seeds on the player's side of the board.
func (g *Game) PlayerSeedCount(player int) int {
	row := g.board.Row(player)
	return utils.Sum(row[:])
}

func (g *Game) opponent() int {
	return 1 - g.playerTurn
}

// NextTurn passes the move to the other player and forgets the sow trace.
func (g *Game) NextTurn() {
	g.playerTurn = g.opponent()
	g.incrementedHouses = g.incrementedHouses[:0]
}

// CanSow reports whether the player to move may sow the house.
func (g *Game) CanSow(house int) (bool, error) {
	if err := checkIndex(house); err != nil {
		return false, err
	}
	return g.canSow(house), nil
}

func (g *Game) canSow(house int) bool {
	seeds := g.seeds(house)
	if g.owner(house) != g.playerTurn || seeds == 0 {
		return false
	}
	// A starved opponent must be fed: enough seeds to run past the end of our own row.
	if g.PlayerSeedCount(g.opponent()) == 0 {
		return seeds > house%HousesPerSide
	}
	return true
}

// CanSowAny reports whether the player to move has at least one legal house.
func (g *Game) CanSowAny() bool {
	for i := 0; i < NumHouses; i++ {
		if g.canSow(i) {
			return true
		}
	}
	return false
}

// Sow empties the house and drops one seed into each following house, walking towards lower
// indices and skipping the emptied house on full laps. It returns the seeded houses in order.
// Legality is the caller's responsibility, see CanSow.
func (g *Game) Sow(house int) ([]int, error) {
	if err := checkIndex(house); err != nil {
		return nil, err
	}

	seeds := g.clear(house)

	sown := make([]int, 0, seeds)
	current := house
	for i := 0; i < seeds; i++ {
		current = previousHouse(current, house)
		if err := g.board.Increment(current); err != nil {
			panic(err)
		}
		sown = append(sown, current)
	}
	g.incrementedHouses = append(g.incrementedHouses, sown...)
	return sown, nil
}

// previousHouse steps once towards lower indices, wrapping and never landing on skip.
func previousHouse(current, skip int) int {
	for {
		current = (current + NumHouses - 1) % NumHouses
		if current != skip {
			return current
		}
	}
}

// Capture banks the contiguous run of opponent houses holding 2 or 3 seeds, scanning the sow
// trace from the last seeded house backwards. A capture that would take every seed the
// opponent has is forfeited entirely. It returns the captured houses in scan order.
func (g *Game) Capture() []int {
	var captured []int
	seeds := 0
	for i := len(g.incrementedHouses) - 1; i >= 0; i-- {
		house := g.incrementedHouses[i]
		count := g.seeds(house)
		if g.owner(house) == g.playerTurn || (count != 2 && count != 3) {
			break
		}
		captured = append(captured, house)
		seeds += count
	}

	if seeds == g.PlayerSeedCount(g.opponent()) {
		return nil
	}

	for _, house := range captured {
		g.scores[g.playerTurn] += g.clear(house)
	}
	return captured
}

// CaptureAll banks every seed left on the mover's side. It is used when the mover cannot sow.
func (g *Game) CaptureAll() []int {
	var captured []int
	start := firstHouse(g.playerTurn)
	for i := start; i < start+HousesPerSide; i++ {
		if g.seeds(i) == 0 {
			continue
		}
		captured = append(captured, i)
		g.scores[g.playerTurn] += g.clear(i)
	}
	return captured
}

// Winner returns the player who has banked SeedsToWin, or NoPlayer.
func (g *Game) Winner() int {
	switch {
	case g.scores[0] >= SeedsToWin:
		return 0
	case g.scores[1] >= SeedsToWin:
		return 1
	default:
		return NoPlayer
	}
}

// HasDrawn is true once all seeds are banked evenly.
func (g *Game) HasDrawn() bool {
	return g.scores[0] == DrawScore && g.scores[1] == DrawScore
}

func (g *Game) HasEnded() bool {
	return g.Winner() != NoPlayer || g.HasDrawn()
}

// HasWon reports whether the player to move has reached SeedsToWin.
func (g *Game) HasWon() bool {
	return g.scores[g.playerTurn] >= SeedsToWin
}

func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(g.playerTurn))
	for _, score := range g.scores {
		binary.Write(hasher, binary.LittleEndian, int64(score))
	}
	for player := 0; player < NumPlayers; player++ {
		for _, seeds := range g.board.Row(player) {
			binary.Write(hasher, binary.LittleEndian, int64(seeds))
		}
	}

	return StateHash(hasher.Sum64())
}

// String renders player 0's row right to left above player 1's row, then the scores.
func (g *Game) String() string {
	var sb strings.Builder
	top, bottom := g.board.Row(0), g.board.Row(1)
	for i := HousesPerSide - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%2d", top[i])
		if i > 0 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
	for i, seeds := range bottom {
		fmt.Fprintf(&sb, "%2d", seeds)
		if i < HousesPerSide-1 {
			sb.WriteString("|")
		}
	}
	fmt.Fprintf(&sb, "\nPlayer 0 Score: %d, Player 1 Score: %d, current turn: %d", g.scores[0], g.scores[1], g.playerTurn)
	return sb.String()
}
