// Package engine runs complete games of two-player Durak between agents,
// feeding learners TD transitions when training is enabled.
package engine

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"github.com/smnguyen/ml-durak/agent"
	"github.com/smnguyen/ml-durak/game"
	"github.com/smnguyen/ml-durak/gamelog"
)

// Outcome reports how one game ended.
type Outcome struct {
	Winner int // Index of the winning player; meaningless when Tie is set.
	Tie    bool
	Moves  int
}

type moveResult int

const (
	movePlayed moveResult = iota
	moveNoOptions
	movePassed
)

type Option func(e *Engine)

// WithTraining enables TD feedback to agents implementing agent.Learner.
func WithTraining() Option {
	return func(e *Engine) {
		e.train = true
	}
}

// WithRecorder attaches a game log recorder.
func WithRecorder(rec gamelog.Recorder) Option {
	return func(e *Engine) {
		if rec != nil {
			e.rec = rec
		}
	}
}

// Engine holds the live state of the game in progress: hands, knowledge,
// deck, table, and the round roles. One Engine plays any number of games.
type Engine struct {
	names  [2]string
	agents [2]agent.Agent
	train  bool
	rec    gamelog.Recorder

	hands    [2][]game.Card
	know     [2]game.Knowledge
	success  [2]bool
	deck     *game.Deck
	trump    game.Card
	table    []game.Card
	trash    []game.Card
	attacker int
	moves    int
}

func New(names [2]string, agents [2]agent.Agent, options ...Option) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("both players need an agent")
	}
	e := &Engine{
		names:  names,
		agents: agents,
		rec:    gamelog.NewDummyRecorder(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one full game and returns its outcome.
func (e *Engine) Run(rng *rand.Rand) Outcome {
	e.setup(rng)

	// Cap pathological games (e.g. two random agents shuffling cards back
	// and forth) instead of looping forever.
	const maxRounds = 1000

	var preAttack, preDefend *game.Snapshot
	for round := 0; ; round++ {
		if round >= maxRounds {
			log.Warn().Int("rounds", round).Msg("game abandoned without a winner")
			e.rec.DeclareTie()
			return Outcome{Tie: true, Moves: e.moves}
		}
		log.Debug().
			Stringer("trump", e.trump).
			Int("deck", e.deck.Size()).
			Int(e.names[0], len(e.hands[0])).
			Int(e.names[1], len(e.hands[1])).
			Msg("new round")
		e.rec.NewRound(e.deck.Size(), len(e.trash))
		pre := e.snapshot(e.attacker)
		preAttack = &pre

		for {
			card, res := e.attack()
			if res == movePlayed {
				e.know[e.defender()].ObservePlay(card)
				e.rec.RecordMove(e.names[e.attacker], card, len(e.table))
			} else {
				e.rec.RecordPass(e.names[e.attacker])
			}
			if e.train {
				post := e.snapshot(e.defender())
				if l, ok := e.agents[e.defender()].(agent.Learner); ok {
					l.ObserveDefend(preDefend, &post, 0)
				}
				preDefend = &post
			}
			if !e.success[e.attacker] || len(e.hands[e.attacker]) == 0 {
				break
			}

			card, res = e.defend()
			if res == movePlayed {
				e.know[e.attacker].ObservePlay(card)
				e.rec.RecordMove(e.names[e.defender()], card, len(e.table))
			} else {
				e.rec.RecordPass(e.names[e.defender()])
			}
			if e.train {
				post := e.snapshot(e.attacker)
				if l, ok := e.agents[e.attacker].(agent.Learner); ok {
					l.ObserveAttack(preAttack, &post, 0)
				}
				preAttack = &post
			}
			if !e.success[e.defender()] || len(e.hands[e.defender()]) == 0 {
				break
			}
		}

		if e.deck.Empty() && (len(e.hands[e.defender()]) == 0 || len(e.hands[e.attacker]) == 0) {
			break
		}
		e.resolveRound()
		if e.deck.Empty() && len(e.hands[e.attacker]) == 0 {
			// The round's winner drained the deck refilling and starts the
			// next round with no cards: the game is decided.
			pre := e.snapshot(e.attacker)
			preAttack = &pre
			break
		}
	}

	return e.finish(preAttack, preDefend)
}

// setup shuffles, picks the trump, deals both hands, and seats the first
// attacker: the player holding the lowest trump.
func (e *Engine) setup(rng *rand.Rand) {
	e.deck = game.NewDeck(rng)
	trump, _ := e.deck.Draw()
	e.deck.TuckBottom(trump)
	e.trump = trump

	e.hands = [2][]game.Card{}
	e.know = [2]game.Knowledge{game.NewKnowledge(), game.NewKnowledge()}
	e.success = [2]bool{}
	e.table = nil
	e.trash = nil
	e.moves = 0

	e.rec.NewGame(trump)
	e.refill(0)
	e.refill(1)
	e.attacker = e.firstAttacker()
	log.Debug().Stringer("trump", trump).Str("attacker", e.names[e.attacker]).Msg("game start")
}

func (e *Engine) firstAttacker() int {
	lowest := [2]game.Rank{}
	found := [2]bool{}
	for p := 0; p < 2; p++ {
		for _, c := range e.hands[p] {
			if c.Suit == e.trump.Suit && (!found[p] || c.Rank < lowest[p]) {
				lowest[p] = c.Rank
				found[p] = true
			}
		}
	}
	if found[1] && (!found[0] || lowest[1] < lowest[0]) {
		return 1
	}
	return 0
}

func (e *Engine) defender() int {
	return 1 - e.attacker
}

func (e *Engine) snapshot(p int) game.Snapshot {
	return game.NewSnapshot(e.hands[p], e.know[p], len(e.hands[1-p]), e.trump, e.table, e.deck.Size())
}

// attack asks the attacker to open or continue the attack and applies the
// chosen card. Sets the attacker's success flag.
func (e *Engine) attack() (game.Card, moveResult) {
	atk := e.attacker
	snap := e.snapshot(atk)

	var card game.Card
	if len(e.table) == 0 {
		i := e.agents[atk].ChooseMove(agent.BeginAttack, snap.Hand, snap)
		card = e.hands[atk][i]
	} else {
		options := game.AttackOptions(e.hands[atk], e.table)
		if len(options) == 0 {
			e.success[atk] = false
			log.Debug().Str("player", e.names[atk]).Msg("cannot attack")
			return game.Card{}, moveNoOptions
		}
		i := e.agents[atk].ChooseMove(agent.ContinueAttack, options, snap)
		if i == agent.Stop {
			e.success[atk] = false
			log.Debug().Str("player", e.names[atk]).Msg("gives up the attack")
			return game.Card{}, movePassed
		}
		card = options[i]
	}

	e.playCard(atk, card)
	log.Debug().Str("player", e.names[atk]).Stringer("card", card).Msg("attacks")
	return card, movePlayed
}

// defend asks the defender to beat the top table card and applies the chosen
// card. Sets the defender's success flag.
func (e *Engine) defend() (game.Card, moveResult) {
	def := e.defender()
	options := game.DefendOptions(e.hands[def], e.table[len(e.table)-1], e.trump.Suit)
	if len(options) == 0 {
		e.success[def] = false
		log.Debug().Str("player", e.names[def]).Msg("cannot defend")
		return game.Card{}, moveNoOptions
	}

	snap := e.snapshot(def)
	i := e.agents[def].ChooseMove(agent.Defend, options, snap)
	if i == agent.Stop {
		e.success[def] = false
		log.Debug().Str("player", e.names[def]).Msg("surrenders")
		return game.Card{}, movePassed
	}

	card := options[i]
	e.playCard(def, card)
	log.Debug().Str("player", e.names[def]).Stringer("card", card).Msg("defends")
	return card, movePlayed
}

func (e *Engine) playCard(p int, card game.Card) {
	e.hands[p] = removeCard(e.hands[p], card)
	e.table = append(e.table, card)
	e.success[p] = true
	e.moves++
}

// resolveRound applies end-of-round bookkeeping: a held defense discards the
// table and swaps the roles; a failed one hands the defender the table. Both
// players refill, attacker first.
func (e *Engine) resolveRound() {
	def := e.defender()
	if (e.success[def] && !e.success[e.attacker]) || len(e.hands[def]) == 0 {
		log.Debug().Str("player", e.names[def]).Msg("wins the round and gets to attack")
		e.trash = append(e.trash, e.table...)
		e.table = nil
		e.refill(e.attacker)
		e.refill(def)
		e.rec.EndRound(false)
		e.attacker = def
	} else if (e.success[e.attacker] && !e.success[def]) || len(e.hands[e.attacker]) == 0 {
		log.Debug().Str("player", e.names[e.attacker]).Msg("wins the round and remains the attacker")
		e.know[e.attacker].AddKnown(e.table)
		e.hands[def] = append(e.hands[def], e.table...)
		e.table = nil
		e.refill(e.attacker)
		e.refill(def)
		e.rec.EndRound(true)
	}
}

func (e *Engine) refill(p int) {
	for len(e.hands[p]) < game.HandSize {
		card, ok := e.deck.Draw()
		if !ok {
			return
		}
		e.hands[p] = append(e.hands[p], card)
		e.know[p].ObserveDraw(card)
	}
}

// finish resolves the end of the game: the last-card tie rule, the winner,
// and the terminal TD rewards.
func (e *Engine) finish(preAttack, preDefend *game.Snapshot) Outcome {
	atk, def := e.attacker, e.defender()

	if len(e.hands[def]) == 0 {
		// The attacker gets one last card onto the table to force a tie.
		if len(e.hands[atk]) == 1 {
			card, res := e.attack()
			if res == movePlayed {
				e.rec.RecordMove(e.names[atk], card, len(e.table))
			}
			if e.success[atk] {
				log.Info().Msg("tie game")
				e.rec.EndRound(true)
				e.rec.DeclareTie()
				return Outcome{Tie: true, Moves: e.moves}
			}
		}
		log.Info().Str("player", e.names[def]).Msg("wins")
		e.rec.EndRound(false)
		e.rec.DeclareWinner(e.names[def])
		e.reward(def, atk, preDefend, preAttack)
		return Outcome{Winner: def, Moves: e.moves}
	}

	// The defender may beat the pending attack with their last card to tie.
	if len(e.hands[def]) == 1 && len(e.table) > 0 {
		card, res := e.defend()
		if res == movePlayed {
			e.rec.RecordMove(e.names[def], card, len(e.table))
		}
		if e.success[def] {
			log.Info().Msg("tie game")
			e.rec.EndRound(false)
			e.rec.DeclareTie()
			return Outcome{Tie: true, Moves: e.moves}
		}
	}
	log.Info().Str("player", e.names[atk]).Msg("wins")
	e.rec.EndRound(true)
	e.rec.DeclareWinner(e.names[atk])
	e.reward(atk, def, preAttack, preDefend)
	return Outcome{Winner: atk, Moves: e.moves}
}

// reward sends the terminal TD updates: +1 to the winner's role weights, -1
// to the loser's. Ties train nothing.
func (e *Engine) reward(winner, loser int, preWinner, preLoser *game.Snapshot) {
	if !e.train {
		return
	}
	if l, ok := e.agents[winner].(agent.Learner); ok {
		if winner == e.attacker {
			l.ObserveAttack(preWinner, nil, 1)
		} else {
			l.ObserveDefend(preWinner, nil, 1)
		}
	}
	if l, ok := e.agents[loser].(agent.Learner); ok {
		if loser == e.attacker {
			l.ObserveAttack(preLoser, nil, -1)
		} else {
			l.ObserveDefend(preLoser, nil, -1)
		}
	}
}

func removeCard(hand []game.Card, card game.Card) []game.Card {
	for i, c := range hand {
		if c == card {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	panic("card not in hand")
}
