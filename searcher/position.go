// Package searcher implements the deck-empty endgame lookahead: once no
// hidden cards remain to be drawn, the round alternation becomes a finite
// two-player game searched with depth-limited alpha-beta minimax.
package searcher

import "github.com/smnguyen/ml-durak/game"

// Move is one ply: playing a card, or ending the round (giving up the attack
// as the attacker, surrendering as the defender).
type Move struct {
	Card game.Card
	End  bool
}

// EndRound is the pass/surrender move.
var EndRound = Move{End: true}

// Position is a fully observable endgame state. All updates are functional:
// Play and resolve return fresh copies and never alias mutable state with the
// receiver, so sibling branches of the search cannot perturb each other.
type Position struct {
	hands    [2][]game.Card
	table    []game.Card
	trump    game.Card
	attacker int
	turn     int
	// Round flags, reset when a round resolves.
	attackerStopped     bool
	defenderSurrendered bool
	defenderEmptied     bool
	attackerEmptied     bool
}

// NewPosition builds an endgame position. turn is the player to move;
// attacker holds the attacking role.
func NewPosition(hands [2][]game.Card, table []game.Card, trump game.Card, attacker, turn int) Position {
	return Position{
		hands:    [2][]game.Card{game.CopyCards(hands[0]), game.CopyCards(hands[1])},
		table:    game.CopyCards(table),
		trump:    trump,
		attacker: attacker,
		turn:     turn,
	}
}

func (p Position) Turn() int     { return p.turn }
func (p Position) Attacker() int { return p.attacker }
func (p Position) Defender() int { return 1 - p.attacker }

// Options returns the legal moves for the player to move, in hand order with
// EndRound last. A player with no playable card still has the forced EndRound
// move, except the attacker opening a round, who must play from a non-empty
// hand.
func (p Position) Options() []Move {
	var cards []game.Card
	mayEnd := true
	if p.turn == p.attacker {
		if len(p.table) == 0 {
			cards = p.hands[p.turn]
			mayEnd = false // an opening attacker cannot pass
		} else {
			cards = game.AttackOptions(p.hands[p.turn], p.table)
		}
	} else {
		cards = game.DefendOptions(p.hands[p.turn], p.table[len(p.table)-1], p.trump.Suit)
	}

	moves := make([]Move, 0, len(cards)+1)
	for _, c := range cards {
		moves = append(moves, Move{Card: c})
	}
	if mayEnd {
		moves = append(moves, EndRound)
	}
	return moves
}

// Play applies a move for the player to move and returns the new position.
func (p Position) Play(mv Move) Position {
	next := p
	next.hands = [2][]game.Card{game.CopyCards(p.hands[0]), game.CopyCards(p.hands[1])}
	next.table = game.CopyCards(p.table)

	mover := p.turn
	if mv.End {
		if mover == p.attacker {
			next.attackerStopped = true
		} else {
			next.defenderSurrendered = true
		}
	} else {
		next.hands[mover] = removeCard(next.hands[mover], mv.Card)
		next.table = append(next.table, mv.Card)
		if len(next.hands[mover]) == 0 {
			if mover == p.attacker {
				next.attackerEmptied = true
			} else {
				next.defenderEmptied = true
			}
		}
	}
	next.turn = 1 - mover
	return next
}

// RoundOver reports whether the current round has ended and needs resolving.
func (p Position) RoundOver() bool {
	return p.attackerStopped || p.defenderSurrendered || p.attackerEmptied || p.defenderEmptied
}

// ResolveRound applies end-of-round bookkeeping. When the defender held (the
// attacker stopped or ran out), the table is discarded and the roles swap;
// when the defense failed, the defender picks the table up and the attacker
// keeps the role. With the deck empty there are no refills.
func (p Position) ResolveRound() Position {
	next := p
	next.hands = [2][]game.Card{game.CopyCards(p.hands[0]), game.CopyCards(p.hands[1])}
	next.attackerStopped = false
	next.defenderSurrendered = false
	next.attackerEmptied = false
	next.defenderEmptied = false

	defenderHeld := (p.attackerStopped && !p.defenderSurrendered) || p.defenderEmptied
	if defenderHeld {
		next.table = nil
		next.attacker = p.Defender()
	} else {
		next.hands[p.Defender()] = append(next.hands[p.Defender()], p.table...)
		next.table = nil
	}
	return next
}

// GameOver reports whether either hand is empty. Positions are only built
// once the deck is exhausted, so an empty hand ends the game.
func (p Position) GameOver() bool {
	return len(p.hands[0]) == 0 || len(p.hands[1]) == 0
}

// IsWinner reports whether the given player has shed their whole hand.
func (p Position) IsWinner(player int) bool {
	return len(p.hands[player]) == 0
}

// View returns the given player's snapshot of this position for leaf
// evaluation. The search is full-information: the opponent's entire hand is
// "known" and nothing is unseen.
func (p Position) View(player int) game.Snapshot {
	opp := 1 - player
	return game.Snapshot{
		Hand:             game.CopyCards(p.hands[player]),
		Known:            game.CopyCards(p.hands[opp]),
		OpponentHandSize: len(p.hands[opp]),
		Trump:            p.trump,
		Table:            game.CopyCards(p.table),
		DeckSize:         0,
		Unseen:           make(game.CardSet),
	}
}

func removeCard(hand []game.Card, c game.Card) []game.Card {
	for i, h := range hand {
		if h == c {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	panic("card not in hand")
}
