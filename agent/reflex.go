package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/game"
)

// Reflex is the TD-trained greedy agent. Every concrete option is scored by
// building the hypothetical post-move view and running it through the
// logistic value model with the role's weight vector; where stopping is
// legal, a hypothetical stop state is scored against the best option.
//
// The weight vectors are owned by the caller (normally the training run or
// the weight store) and injected here; two Reflex agents constructed with the
// same vectors share them, which is exactly what self-play training wants.
type Reflex struct {
	attack *mat.VecDense
	defend *mat.VecDense
}

func NewReflex(attack, defend *mat.VecDense) *Reflex {
	if attack.Len() != NumFeatures || defend.Len() != NumFeatures {
		panic("weight vectors must match the feature dimension")
	}
	return &Reflex{attack: attack, defend: defend}
}

// AttackWeights exposes the injected attack-role weight vector.
func (a *Reflex) AttackWeights() *mat.VecDense { return a.attack }

// DefendWeights exposes the injected defend-role weight vector.
func (a *Reflex) DefendWeights() *mat.VecDense { return a.defend }

func (a *Reflex) ChooseMove(d Decision, options []game.Card, snap game.Snapshot) int {
	if len(options) == 0 {
		panic("no options to choose from")
	}
	switch d {
	case BeginAttack:
		best, _ := a.bestOption(options, snap, a.attack)
		return best
	case ContinueAttack:
		best, bestV := a.bestOption(options, snap, a.attack)
		if a.stopValue(snap, snap.Hand, a.attack) > bestV {
			return Stop
		}
		return best
	case Defend:
		best, bestV := a.bestOption(options, snap, a.defend)
		// Surrendering means picking the table cards up.
		surrenderHand := append(game.CopyCards(snap.Hand), snap.Table...)
		if a.stopValue(snap, surrenderHand, a.defend) > bestV {
			return Stop
		}
		return best
	default:
		panic("unknown decision")
	}
}

// bestOption scores each option's hypothetical post-move state and returns
// the stable argmax and its value.
func (a *Reflex) bestOption(options []game.Card, snap game.Snapshot, weights *mat.VecDense) (int, float64) {
	best := -1
	bestV := 0.0
	for i, c := range options {
		v := Value(weights, Extract(snap.WithMove(c)))
		if best < 0 || v > bestV {
			best = i
			bestV = v
		}
	}
	return best, bestV
}

// stopValue scores the hypothetical state after ending the round now: the
// table is cleared into newHand's owner as given, both players refill, so the
// deck shrinks by both refills and the opponent holds at least a full hand.
func (a *Reflex) stopValue(snap game.Snapshot, newHand []game.Card, weights *mat.VecDense) float64 {
	deckSize := snap.DeckSize -
		max(0, game.HandSize-len(newHand)) -
		max(0, game.HandSize-snap.OpponentHandSize)

	stop := snap
	stop.Hand = newHand
	stop.Table = nil
	stop.DeckSize = deckSize
	stop.OpponentHandSize = max(snap.OpponentHandSize, game.HandSize)
	return Value(weights, Extract(stop))
}

func (a *Reflex) ObserveAttack(pre, post *game.Snapshot, reward float64) {
	tdUpdate(a.attack, pre, post, reward)
}

func (a *Reflex) ObserveDefend(pre, post *game.Snapshot, reward float64) {
	tdUpdate(a.defend, pre, post, reward)
}
