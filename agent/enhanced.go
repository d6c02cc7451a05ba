package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/game"
	"github.com/smnguyen/ml-durak/searcher"
)

// Enhanced plays the reflex policy while cards remain in the deck, then
// switches to alpha-beta minimax once the deck is empty and the game is fully
// observable. A single remaining option is forced without searching.
type Enhanced struct {
	*Reflex
	minimax *searcher.Minimax
	metrics []searcher.SearchMetric
}

// NewEnhanced builds an enhanced agent around injected weight vectors.
// Search options (depth, metrics) pass through to the searcher.
func NewEnhanced(attack, defend *mat.VecDense, options ...searcher.Option) *Enhanced {
	a := &Enhanced{Reflex: NewReflex(attack, defend)}
	a.minimax = searcher.NewMinimax(a.evaluate, options...)
	return a
}

func (a *Enhanced) ChooseMove(d Decision, options []game.Card, snap game.Snapshot) int {
	if snap.DeckSize > 0 {
		return a.Reflex.ChooseMove(d, options, snap)
	}
	if len(options) == 1 {
		// A forced option skips the search.
		return 0
	}
	return a.searchMove(d, options, snap)
}

// SearchMetrics drains the per-search statistics gathered since the last
// call. Empty unless the agent was built with searcher.WithMetrics.
func (a *Enhanced) SearchMetrics() []searcher.SearchMetric {
	out := a.metrics
	a.metrics = nil
	return out
}

func (a *Enhanced) searchMove(d Decision, options []game.Card, snap game.Snapshot) int {
	pos := a.position(d, snap)

	// Search the engine-provided options rather than regenerating them, so
	// the returned index is directly an index into options.
	moves := make([]searcher.Move, 0, len(options)+1)
	for _, c := range options {
		moves = append(moves, searcher.Move{Card: c})
	}
	if d != BeginAttack {
		moves = append(moves, searcher.EndRound)
	}

	best, metric := a.minimax.FindMoveAmong(pos, self, moves)
	a.metrics = append(a.metrics, metric)
	if best == len(options) && d != BeginAttack {
		return Stop
	}
	return best
}

// position reconstructs the fully observable endgame state from this
// player's view. With the deck empty, every card not in our hand, on the
// table, or already seen must be in the opponent's hand, so the opponent hand
// is exactly the observed cards plus the unseen set.
func (a *Enhanced) position(d Decision, snap game.Snapshot) searcher.Position {
	opponent := append(game.CopyCards(snap.Known), snap.Unseen.Cards()...)
	hands := [2][]game.Card{game.CopyCards(snap.Hand), opponent}

	attacker := self
	if d == Defend {
		attacker = 1 - self
	}
	return searcher.NewPosition(hands, snap.Table, snap.Trump, attacker, self)
}

// evaluate is the searcher's leaf heuristic: the logistic value of the
// mover's view under the weight set matching the mover's role.
func (a *Enhanced) evaluate(view game.Snapshot, attacker bool) float64 {
	if attacker {
		return Value(a.attack, Extract(view))
	}
	return Value(a.defend, Extract(view))
}

// self is this agent's seat in the positions it builds for search.
const self = 0
