package engine

import (
	"fmt"
	"time"

	"oware/experiments/metrics"
	"oware/game"
	"oware/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithAgent replaces the computer opponent used by NextAIMove.
func WithAgent(agent Agent) Option {
	return func(e *Engine) {
		if agent != nil {
			e.ai = agent
		}
	}
}

// Engine drives a Game through complete turns. Calls must be serialized by the caller.
type Engine struct {
	ID    uuid.UUID
	State *game.Game
	ai    Agent
}

// New starts a fresh game, with player 1 played by the computer when vsAI is set.
func New(vsAI bool, options ...Option) *Engine {
	return FromGame(game.New(vsAI), options...)
}

// FromGame drives an existing game. A player to move who has no legal house banks their row
// straight away, as they would at the end of the previous move.
func FromGame(state *game.Game, options ...Option) *Engine {
	e := &Engine{
		ID:    uuid.New(),
		State: state,
		ai:    searcher.New(),
	}
	for _, option := range options {
		option(e)
	}
	e.sweep()
	return e
}

// Reset starts a new game under a new match ID.
func (e *Engine) Reset() {
	e.State.Reset()
	e.ID = uuid.New()
	log.Debug().Str("match", e.ID.String()).Int("player", e.State.CurrentPlayer()).Msg("game reset")
}

// NextAIMove returns the computer's choice for the player to move, or game.NoMove.
func (e *Engine) NextAIMove() int {
	move, _ := e.ai.FindMove(e.State)
	return move
}

// Play sows the house, resolves the capture and passes the turn. A player left without a
// legal house then banks their own row, and the turn passes again unless the game is over.
func (e *Engine) Play(house int) (Update, error) {
	if e.State.HasEnded() {
		return Update{}, ErrGameOver
	}
	ok, err := e.State.CanSow(house)
	if err != nil {
		return Update{}, err
	}
	if !ok {
		return Update{}, fmt.Errorf("house %d for player %d: %w", house, e.State.CurrentPlayer(), ErrIllegalMove)
	}

	u := Update{Player: e.State.CurrentPlayer(), House: house}
	u.Sown, err = e.State.Sow(house)
	if err != nil {
		panic(err)
	}
	u.Captured = e.State.Capture()
	e.State.NextTurn()

	u.Sweeps = e.sweep()

	u.Scores = e.State.Scores()
	u.Hash = e.State.Hash()
	u.Ended = e.State.HasEnded()
	u.Winner = e.State.Winner()
	u.Drawn = e.State.HasDrawn()

	log.Debug().
		Str("match", e.ID.String()).
		Int("player", u.Player).
		Int("house", u.House).
		Ints("captured", u.Captured).
		Msg("house played")

	return u, nil
}

// sweep banks the row of every player to move who cannot sow, passing the turn after each
// unless the game is over.
func (e *Engine) sweep() []Sweep {
	var sweeps []Sweep
	for !e.State.HasEnded() && !e.State.CanSowAny() {
		sweep := Sweep{Player: e.State.CurrentPlayer(), Houses: e.State.CaptureAll()}
		sweeps = append(sweeps, sweep)
		log.Debug().Str("match", e.ID.String()).Int("player", sweep.Player).Ints("houses", sweep.Houses).Msg("player cannot sow, row banked")
		if !e.State.HasEnded() {
			e.State.NextTurn()
		}
	}
	return sweeps
}

// Run lets the agents, indexed by player, play until the game ends or maxTurns moves were made.
func (e *Engine) Run(agents [game.NumPlayers]Agent, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Match:          e.ID.String(),
		StartingPlayer: e.State.CurrentPlayer(),
		StartTime:      time.Now(),
	}
	log.Info().Str("match", e.ID.String()).Msgf("player %d is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= maxTurns && !e.State.HasEnded(); step++ {
		player := e.State.CurrentPlayer()
		before := e.State.Scores()[player]

		house, search := agents[player].FindMove(e.State)
		if house == game.NoMove {
			return gameMetric, moveMetrics, fmt.Errorf("player %d on step %d: %w", player, step, ErrNoMove)
		}
		u, err := e.Play(house)
		if err != nil {
			return gameMetric, moveMetrics, err
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			House:        house,
			Captured:     u.Scores[player] - before,
			SearchMetric: search,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = e.State.Winner()
	gameMetric.Drawn = e.State.HasDrawn()
	gameMetric.Scores = e.State.Scores()
	gameMetric.TotalMoves = len(moveMetrics)

	if !e.State.HasEnded() {
		log.Warn().Str("match", e.ID.String()).Msgf("stopped after %d moves without a result", maxTurns)
	} else {
		log.Info().Str("match", e.ID.String()).Msgf("game over after %d moves, winner: %d, scores: %v", gameMetric.TotalMoves, gameMetric.Winner, gameMetric.Scores)
	}

	return gameMetric, moveMetrics, nil
}
