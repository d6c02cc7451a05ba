package agent

import (
	"golang.org/x/exp/rand"

	"github.com/smnguyen/ml-durak/game"
)

// Random plays uniformly at random, including the stop option where one
// exists. A baseline opponent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) ChooseMove(d Decision, options []game.Card, _ game.Snapshot) int {
	if len(options) == 0 {
		panic("no options to choose from")
	}
	if d == BeginAttack {
		return a.rng.Intn(len(options))
	}
	return a.rng.Intn(len(options)+1) - 1
}
