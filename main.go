package main

import (
	"flag"
	"os"

	"oware/experiments"
	"oware/experiments/metrics"
	"oware/meta"
	"oware/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	experiment := flag.String("experiment", "depth", "Experiment to run: depth or throughput")
	games := flag.Int("games", meta.GAMES, "Number of games per match up")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of games played in parallel")
	maxTurns := flag.Int("turns", meta.MAX_TURNS, "Maximum number of moves per game")
	depth := flag.Int("depth", searcher.MaxDepth, "Search depth for the throughput experiment")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for experiment records")
	flag.Parse()

	setup := experiments.Setup{
		Games:      *games,
		Goroutines: *goroutines,
		MaxTurns:   *maxTurns,
	}

	switch *experiment {
	case "depth":
		writer, err := experiments.RunDepthExperiment(*out, experiments.DepthConfigs, setup)
		if err != nil {
			log.Fatal().Err(err).Msg("depth experiment failed")
		}
		log.Info().Str("dir", writer.Dir()).Msg("records written")
	case "throughput":
		config := metrics.AgentConfig{ID: 1, Depth: *depth, Explore: true}
		workers := []int{1, 2, 4, *goroutines}
		if _, err := experiments.RunThroughputExperiment(config, workers, setup); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
