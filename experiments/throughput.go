package experiments

import (
	"time"

	"oware/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines int
	Games      int
	Duration   time.Duration
}

func (t Throughput) GamesPerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Games) / t.Duration.Seconds()
}

// RunThroughputExperiment plays the same batch of self play games with each worker count.
func RunThroughputExperiment(config metrics.AgentConfig, goroutines []int, setup Setup) ([]Throughput, error) {
	matchUps := [][2]metrics.AgentConfig{{config, config}}

	log.Info().Msg("starting throughput experiment...")

	var results []Throughput
	for _, n := range goroutines {
		setup.Goroutines = n
		start := time.Now()
		records, _, err := Play(matchUps, setup)
		if err != nil {
			return nil, err
		}
		t := Throughput{Goroutines: n, Games: len(records), Duration: time.Since(start)}
		results = append(results, t)

		log.Info().Msgf("%d goroutines: %d games in %v (%.1f games/s)", n, t.Games, t.Duration, t.GamesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
