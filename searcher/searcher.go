package searcher

import (
	"oware/experiments/metrics"
	"oware/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks the house whose sow and capture banks the most seeds for the mover, lowest
// house first on ties. Below every candidate it can expand the game tree to a bounded depth;
// that expansion is measured but does not change the chosen house.
type Searcher struct {
	depth   int
	explore bool
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithExploration toggles the expansion below each candidate move.
func WithExploration(explore bool) Option {
	return func(s *Searcher) {
		s.explore = explore
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:   MaxDepth,
		explore: true,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindMove returns the house to sow for the player to move, or game.NoMove.
// The game itself is never mutated; every candidate is played on a clone.
func (s *Searcher) FindMove(state *game.Game) (int, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	move := s.bestMove(state, s.depth)
	metric := s.metrics.Complete()

	log.Debug().
		Int("player", state.CurrentPlayer()).
		Int("house", move).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return move, metric
}

func (s *Searcher) bestMove(state *game.Game, depth int) int {
	s.metrics.AddNode()
	if depth == 0 {
		s.metrics.AddCutoff()
		return game.NoMove
	}
	if !state.CanSowAny() {
		return game.NoMove
	}

	first := state.CurrentPlayer() * game.HousesPerSide
	maxScore, maxHouse := -1, game.NoMove
	for house := first; house < first+game.HousesPerSide; house++ {
		if ok, _ := state.CanSow(house); !ok {
			continue
		}

		next := state.Clone()
		if _, err := next.Sow(house); err != nil {
			panic(err)
		}
		next.Capture()
		mover := next.CurrentPlayer()
		next.NextTurn()

		if s.explore {
			s.bestMove(next, depth-1)
		}

		// Strictly greater keeps the lowest house on ties
		if score := next.Scores()[mover]; score > maxScore {
			maxScore = score
			maxHouse = house
		}
	}
	return maxHouse
}
