package experiments

import (
	"fmt"
	"sync"
	"time"

	"oware/engine"
	"oware/experiments/metrics"
	"oware/game"
	"oware/searcher"

	"github.com/rs/zerolog/log"
)

type Setup struct {
	Games      int // Per match up
	Goroutines int
	MaxTurns   int
	Source     game.Source // first player of every game, random when nil
}

type job struct {
	id      int
	matchUp [2]metrics.AgentConfig
}

type result struct {
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
	err         error
}

// DepthConfigs pair the greedy selector with increasingly deep exploration.
var DepthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1, Explore: false},
	{ID: 2, Depth: 2, Explore: true},
	{ID: 3, Depth: 4, Explore: true},
	{ID: 4, Depth: searcher.MaxDepth, Explore: true},
}

// RunDepthExperiment plays every config against itself and writes the records under root.
// Decisions do not depend on the depth, so the records show the cost of the exploration.
func RunDepthExperiment(root string, configs []metrics.AgentConfig, setup Setup) (*metrics.Writer, error) {
	matchUps := make([][2]metrics.AgentConfig, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return runExperiment(root, "depth", configs, matchUps, setup)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, setup Setup) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	log.Info().Msgf("starting %s experiment...", name)
	gameRecords, moveRecords, err := Play(matchUps, setup)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer, nil
}

// Play runs setup.Games games per match up on setup.Goroutines workers. Records come back in
// match up order with game IDs counting from 1.
func Play(matchUps [][2]metrics.AgentConfig, setup Setup) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	if setup.Games <= 0 {
		return nil, nil, fmt.Errorf("need at least one game per match up, got %d", setup.Games)
	}
	goroutines := max(setup.Goroutines, 1)

	tasks := make(chan job, len(matchUps)*setup.Games)
	for mi, matchUp := range matchUps {
		for i := 0; i < setup.Games; i++ {
			tasks <- job{id: mi*setup.Games + i, matchUp: matchUp}
		}
	}
	close(tasks)

	results := make([]result, len(matchUps)*setup.Games)
	var mu sync.Mutex // guards setup.Source, which need not be safe for concurrent use
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for task := range tasks {
				mu.Lock()
				state := newGame(setup.Source)
				mu.Unlock()
				results[task.id] = runGame(state, task.matchUp, setup.MaxTurns)
			}
		}()
	}
	wg.Wait()

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		if r.err != nil {
			return nil, nil, fmt.Errorf("game %d: %w", i+1, r.err)
		}
		matchUp := matchUps[i/setup.Games]
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent0:     matchUp[0].ID,
			Agent1:     matchUp[1].ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
	}
	return gameRecords, moveRecords, nil
}

func newGame(source game.Source) *game.Game {
	if source == nil {
		return game.New(false)
	}
	return game.New(false, game.WithSource(source))
}

// runGame executes a single game between two agents
func runGame(state *game.Game, matchUp [2]metrics.AgentConfig, maxTurns int) result {
	agents := [game.NumPlayers]engine.Agent{
		createSearcher(matchUp[0]),
		createSearcher(matchUp[1]),
	}
	e := engine.FromGame(state)

	start := time.Now()
	gameMetric, moveMetrics, err := e.Run(agents, maxTurns)
	log.Debug().Str("match", gameMetric.Match).Dur("duration", time.Since(start)).Msg("game finished")

	return result{gameMetric: gameMetric, moveMetrics: moveMetrics, err: err}
}

func createSearcher(config metrics.AgentConfig) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithExploration(config.Explore),
		searcher.WithMetrics(),
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return searcher.New(options...)
}
