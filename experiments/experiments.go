// Package experiments runs training and evaluation sessions and stores their
// records.
package experiments

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/agent"
	"github.com/smnguyen/ml-durak/engine"
	"github.com/smnguyen/ml-durak/experiments/metrics"
	"github.com/smnguyen/ml-durak/gamelog"
	"github.com/smnguyen/ml-durak/searcher"
	"github.com/smnguyen/ml-durak/weights"
)

// Config drives a training or evaluation session.
type Config struct {
	Games      int
	WeightsDir string
	Seed       uint64
	Depth      int    // Endgame search depth for enhanced agents.
	LogFile    string // Optional game log destination.
}

// RunTraining trains the reflex weight vectors by self-play: two reflex
// agents share the same attack and defend vectors, every move feeds a TD
// update, and the vectors are persisted when the run completes.
func RunTraining(cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	store := weights.NewStore(cfg.WeightsDir, rng)
	attack, defend, err := store.Load(agent.NumFeatures)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}

	rec := gamelog.NewDummyRecorder()
	if cfg.LogFile != "" {
		rec = gamelog.NewRecorder("trainee1", "trainee2")
	}

	// Both seats share the weight vectors so every game trains one model.
	agents := [2]agent.Agent{
		agent.NewReflex(attack, defend),
		agent.NewReflex(attack, defend),
	}
	e := engine.New([2]string{"trainee1", "trainee2"}, agents,
		engine.WithTraining(), engine.WithRecorder(rec))

	log.Info().Int("games", cfg.Games).Msg("starting training run")
	wins := [2]int{}
	ties := 0
	for i := 0; i < cfg.Games; i++ {
		outcome := e.Run(rng)
		if outcome.Tie {
			ties++
		} else {
			wins[outcome.Winner]++
		}
		if (i+1)%100 == 0 {
			log.Info().Int("games", i+1).Msg("training progress")
		}
	}
	log.Info().
		Int("trainee1", wins[0]).
		Int("trainee2", wins[1]).
		Int("ties", ties).
		Msg("completed training run")

	if cfg.LogFile != "" {
		if err := rec.Write(cfg.LogFile); err != nil {
			return err
		}
	}
	if err := store.Save(attack, defend); err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}
	return nil
}

// RunEvaluation plays every agent variant against the simple baseline for
// cfg.Games each and stores win-rate and search records.
func RunEvaluation(cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	store := weights.NewStore(cfg.WeightsDir, rng)
	attack, defend, err := store.Load(agent.NumFeatures)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}

	baseline := metrics.AgentConfig{ID: 0, Type: "simple"}
	configs := []metrics.AgentConfig{
		{ID: 1, Type: "random"},
		{ID: 2, Type: "simple"},
		{ID: 3, Type: "reflex"},
		{ID: 4, Type: "enhanced", Depth: cfg.Depth},
	}

	count := 0
	var gameRecords []metrics.GameRecord
	var searchRecords []metrics.SearchRecord

	log.Info().Msg("starting evaluation experiment")
	for _, config := range configs {
		log.Info().Str("type", config.Type).Int("games", cfg.Games).Msg("starting matchup against baseline")
		wins := 0
		for i := 0; i < cfg.Games; i++ {
			candidate := buildAgent(config, attack, defend, rng)
			e := engine.New(
				[2]string{config.Type, baseline.Type},
				[2]agent.Agent{candidate, agent.NewSimple()},
			)

			start := time.Now()
			outcome := e.Run(rng)
			count++

			winner := "tie"
			if !outcome.Tie {
				if outcome.Winner == 0 {
					winner = config.Type
					wins++
				} else {
					winner = baseline.Type
				}
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        count,
				Agent1:    config.ID,
				Agent2:    baseline.ID,
				Winner:    winner,
				Tie:       outcome.Tie,
				Moves:     outcome.Moves,
				StartTime: start,
				Duration:  time.Since(start),
			})
			if enhanced, ok := candidate.(*agent.Enhanced); ok {
				for _, metric := range enhanced.SearchMetrics() {
					searchRecords = append(searchRecords, metrics.SearchRecord{
						Game:         count,
						SearchMetric: metric,
					})
				}
			}
		}
		log.Info().Str("type", config.Type).Int("wins", wins).Int("games", cfg.Games).Msg("completed matchup")
	}
	log.Info().Msg("completed evaluation experiment")

	writer, err := metrics.NewWriter("evaluation")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(append(configs, baseline)); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteSearchRecords(searchRecords); err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	return nil
}

func buildAgent(config metrics.AgentConfig, attack, defend *mat.VecDense, rng *rand.Rand) agent.Agent {
	switch config.Type {
	case "random":
		return agent.NewRandom(rng)
	case "simple":
		return agent.NewSimple()
	case "reflex":
		return agent.NewReflex(attack, defend)
	case "enhanced":
		return agent.NewEnhanced(attack, defend,
			searcher.WithDepth(config.Depth), searcher.WithMetrics())
	default:
		panic(fmt.Sprintf("unknown agent type %q", config.Type))
	}
}
