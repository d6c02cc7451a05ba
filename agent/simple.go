package agent

import "github.com/smnguyen/ml-durak/game"

// Simple always plays the lowest-ranked non-trump option, falling back to the
// lowest trump. It never stops attacking or surrenders voluntarily.
type Simple struct{}

func NewSimple() *Simple {
	return &Simple{}
}

func (a *Simple) ChooseMove(_ Decision, options []game.Card, snap game.Snapshot) int {
	if len(options) == 0 {
		panic("no options to choose from")
	}
	best := -1
	bestTrump := -1
	for i, c := range options {
		if c.Suit == snap.Trump.Suit {
			if bestTrump < 0 || c.Rank < options[bestTrump].Rank {
				bestTrump = i
			}
		} else {
			if best < 0 || c.Rank < options[best].Rank {
				best = i
			}
		}
	}
	if best >= 0 {
		return best
	}
	return bestTrump
}
