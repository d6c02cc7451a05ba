package searcher

import (
	"math"

	"github.com/smnguyen/ml-durak/game"
)

const (
	// Win and Loss are the terminal scores, overriding the value model.
	Win  = 1.0
	Loss = 0.0

	// DefaultDepth is the search depth in the searching agent's own plies.
	DefaultDepth = 2
)

// Evaluate scores a non-terminal leaf from the mover's view; attacker reports
// whether the mover holds the attacking role, selecting the weight set.
type Evaluate func(view game.Snapshot, attacker bool) float64

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher over endgame positions.
// Depth counts only the searching player's plies: simulated opponent moves do
// not consume budget.
type Minimax struct {
	depth    int
	evaluate Evaluate
	metrics  Collector
}

// WithDepth sets the search depth. Depth 0 degenerates to one-ply greedy
// evaluation of each root candidate.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(evaluate Evaluate, options ...Option) *Minimax {
	if evaluate == nil {
		panic("must specify a leaf evaluation function")
	}
	m := &Minimax{
		depth:    DefaultDepth,
		evaluate: evaluate,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove searches the position's own legal moves and returns the best one
// for self, who must be the player to move.
func (m *Minimax) FindMove(pos Position, self int) (Move, SearchMetric) {
	moves := pos.Options()
	best, metric := m.FindMoveAmong(pos, self, moves)
	return moves[best], metric
}

// FindMoveAmong returns the index of the root candidate with the best search
// value for self, who must be the player to move. Each candidate is searched
// with a fresh (-inf, +inf) window; ties keep the first maximum.
func (m *Minimax) FindMoveAmong(pos Position, self int, moves []Move) (int, SearchMetric) {
	if len(moves) == 0 {
		panic("no moves to search")
	}
	m.metrics.Start(m.depth)

	best := 0
	bestV := math.Inf(-1)
	for i, mv := range moves {
		v := m.value(pos.Play(mv), m.depth, math.Inf(-1), math.Inf(1), self)
		if v > bestV {
			bestV = v
			best = i
		}
	}
	return best, m.metrics.Complete()
}

// value scores a position reached by the previous player's move, before the
// player on turn has responded.
func (m *Minimax) value(pos Position, depth int, alpha, beta float64, self int) float64 {
	m.metrics.AddNode()

	if pos.RoundOver() {
		pos = pos.ResolveRound()
	}
	if pos.GameOver() {
		if pos.IsWinner(self) {
			return Win
		}
		return Loss
	}

	mover := pos.Turn()
	if depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(pos.View(mover), mover == pos.Attacker())
	}
	// Only this player's own plies consume depth: the move that produced this
	// node was played by 1-mover.
	if 1-mover == self {
		depth--
	}

	moves := pos.Options()
	if mover == self {
		v := math.Inf(-1)
		for _, mv := range moves {
			v = math.Max(v, m.value(pos.Play(mv), depth, alpha, beta, self))
			if v >= beta {
				m.metrics.AddCutoff()
				return v
			}
			alpha = math.Max(alpha, v)
		}
		return v
	}
	v := math.Inf(1)
	for _, mv := range moves {
		v = math.Min(v, m.value(pos.Play(mv), depth, alpha, beta, self))
		if v <= alpha {
			m.metrics.AddCutoff()
			return v
		}
		beta = math.Min(beta, v)
	}
	return v
}
