// Command ml-durak plays two-player Durak between a chosen player type and
// the simple baseline, or trains the reflex agent by self-play.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/smnguyen/ml-durak/agent"
	"github.com/smnguyen/ml-durak/engine"
	"github.com/smnguyen/ml-durak/experiments"
	"github.com/smnguyen/ml-durak/gamelog"
	"github.com/smnguyen/ml-durak/searcher"
	"github.com/smnguyen/ml-durak/weights"
)

func main() {
	// Optional .env file supplies defaults; flags override.
	_ = godotenv.Load()

	playerType := flag.String("player", "simple", "player type: human, random, simple, reflex, enhanced")
	numGames := flag.Int("n", 1, "number of games to play")
	verbose := flag.Int("verbose", 1, "verbosity of output: 0, 1, or 2")
	train := flag.Bool("train", false, "train the reflex agent by self-play")
	logFile := flag.String("logfile", "", "where to save the game log file")
	depth := flag.Int("depth", searcher.DefaultDepth, "endgame search depth for the enhanced player")
	seed := flag.Uint64("seed", 0, "random seed; 0 derives one from the clock")
	weightsDir := flag.String("weights", envOr("DURAK_WEIGHTS_DIR", "."), "directory holding trained weight files")
	evaluate := flag.Bool("evaluate", false, "run the evaluation experiment against the simple baseline")
	flag.Parse()

	setupLogging(*verbose)
	if *seed == 0 {
		*seed = rand.Uint64()
	}

	cfg := experiments.Config{
		Games:      *numGames,
		WeightsDir: *weightsDir,
		Seed:       *seed,
		Depth:      *depth,
		LogFile:    *logFile,
	}

	switch {
	case *train:
		if err := experiments.RunTraining(cfg); err != nil {
			log.Fatal().Err(err).Msg("training failed")
		}
	case *evaluate:
		if err := experiments.RunEvaluation(cfg); err != nil {
			log.Fatal().Err(err).Msg("evaluation failed")
		}
	default:
		if err := play(*playerType, cfg); err != nil {
			log.Fatal().Err(err).Msg("game session failed")
		}
	}
}

// play runs numGames games of the chosen player type against the simple
// baseline and prints the win tally.
func play(playerType string, cfg experiments.Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	candidate, err := buildPlayer(playerType, cfg, rng)
	if err != nil {
		return err
	}

	names := [2]string{playerType, "baseline"}
	rec := gamelog.NewDummyRecorder()
	if cfg.LogFile != "" {
		rec = gamelog.NewRecorder(names[0], names[1])
	}
	e := engine.New(names, [2]agent.Agent{candidate, agent.NewSimple()},
		engine.WithRecorder(rec))

	wins := [2]int{}
	for i := 0; i < cfg.Games; i++ {
		outcome := e.Run(rng)
		if !outcome.Tie {
			wins[outcome.Winner]++
		}
	}

	fmt.Printf("%s wins: %d / %d\n", names[0], wins[0], cfg.Games)
	fmt.Printf("%s wins: %d / %d\n", names[1], wins[1], cfg.Games)

	if cfg.LogFile != "" {
		return rec.Write(cfg.LogFile)
	}
	return nil
}

func buildPlayer(playerType string, cfg experiments.Config, rng *rand.Rand) (agent.Agent, error) {
	switch playerType {
	case "human":
		return agent.NewHuman("you", os.Stdin, os.Stdout), nil
	case "random":
		return agent.NewRandom(rng), nil
	case "simple":
		return agent.NewSimple(), nil
	case "reflex", "enhanced":
		store := weights.NewStore(cfg.WeightsDir, rng)
		attack, defend, err := store.Load(agent.NumFeatures)
		if err != nil {
			return nil, err
		}
		if playerType == "reflex" {
			return agent.NewReflex(attack, defend), nil
		}
		return agent.NewEnhanced(attack, defend, searcher.WithDepth(cfg.Depth)), nil
	default:
		return nil, fmt.Errorf("unknown player type %q", playerType)
	}
}

func setupLogging(verbose int) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level := zerolog.InfoLevel
	switch {
	case verbose <= 0:
		level = zerolog.WarnLevel
	case verbose >= 2:
		level = zerolog.DebugLevel
	}
	if env := os.Getenv("DURAK_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
