// Package agent implements the Durak decision-making policies: random and
// simple baselines, a human player, a TD-trained reflex agent, and an
// enhanced agent that switches to alpha-beta search once the deck is empty.
package agent

import "github.com/smnguyen/ml-durak/game"

// Decision identifies which choice the game loop is asking for.
type Decision int

const (
	// BeginAttack starts a round: options are the whole hand and the agent
	// must play a card.
	BeginAttack Decision = iota
	// ContinueAttack piles on: options are rank-matching cards, or Stop to
	// give up the attack.
	ContinueAttack
	// Defend beats the top table card, or Stop to surrender.
	Defend
)

// Stop is the sentinel returned instead of an option index to stop attacking
// or surrender. It is never a valid answer to BeginAttack.
const Stop = -1

// Agent chooses a move at a decision point. The return value is an index into
// options, or Stop where the decision permits it. Agents never mutate the
// snapshot or the options slice.
type Agent interface {
	ChooseMove(d Decision, options []game.Card, snap game.Snapshot) int
}

// Learner receives state transitions for online weight updates. The engine
// feeds it (pre, post, reward) tuples after every move and at game end;
// attack-role and defend-role transitions update separate weight vectors.
type Learner interface {
	ObserveAttack(pre, post *game.Snapshot, reward float64)
	ObserveDefend(pre, post *game.Snapshot, reward float64)
}
