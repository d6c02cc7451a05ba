package metrics

import (
	"time"

	"github.com/smnguyen/ml-durak/searcher"
)

// AgentConfig describes one agent entering a matchup.
type AgentConfig struct {
	ID    int
	Type  string // random, simple, reflex, enhanced
	Depth int    // Search depth; 0 for non-searching agents.
}

// GameRecord summarizes one played game.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID
	Agent2    int // AgentConfig.ID
	Winner    string
	Tie       bool
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// SearchRecord summarizes one endgame minimax search.
type SearchRecord struct {
	Game int // GameRecord.ID
	searcher.SearchMetric
}
