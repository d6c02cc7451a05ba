package game

import "sort"

// CardSet is an unordered set of cards.
type CardSet map[Card]struct{}

// FullSet returns a set holding the whole card universe.
func FullSet() CardSet {
	set := make(CardSet, DeckCards)
	for _, c := range Universe() {
		set[c] = struct{}{}
	}
	return set
}

func (s CardSet) Has(c Card) bool {
	_, ok := s[c]
	return ok
}

func (s CardSet) Add(c Card) {
	s[c] = struct{}{}
}

func (s CardSet) Remove(c Card) {
	delete(s, c)
}

func (s CardSet) Len() int {
	return len(s)
}

// Cards returns the set contents in deterministic suit-then-rank order.
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, len(s))
	for c := range s {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return cards[i].Rank < cards[j].Rank
	})
	return cards
}

func (s CardSet) Clone() CardSet {
	clone := make(CardSet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// Knowledge is one player's view of hidden information: the cards observed to
// be in the opponent's hand, and the set of cards this player has never seen.
type Knowledge struct {
	Known  []Card
	Unseen CardSet
}

// NewKnowledge returns a fresh view: nothing known, everything unseen.
func NewKnowledge() Knowledge {
	return Knowledge{Unseen: FullSet()}
}

// ObserveDraw records a card entering this player's own hand.
func (k *Knowledge) ObserveDraw(c Card) {
	k.Unseen.Remove(c)
}

// ObservePlay records the opponent playing a card: it is no longer in their
// hand and no longer hidden.
func (k *Knowledge) ObservePlay(c Card) {
	for i, known := range k.Known {
		if known == c {
			k.Known = append(k.Known[:i], k.Known[i+1:]...)
			break
		}
	}
	k.Unseen.Remove(c)
}

// AddKnown records the opponent picking up cards from the table.
func (k *Knowledge) AddKnown(cards []Card) {
	k.Known = append(k.Known, cards...)
}

// MaxRemaining returns the highest rank the opponent could still hold in the
// given suit, derived from the known and unseen cards. The second return is
// false when no card of the suit remains possible.
func (k Knowledge) MaxRemaining(suit Suit) (Rank, bool) {
	var max Rank
	found := false
	for _, c := range k.Known {
		if c.Suit == suit && (!found || c.Rank > max) {
			max = c.Rank
			found = true
		}
	}
	for c := range k.Unseen {
		if c.Suit == suit && (!found || c.Rank > max) {
			max = c.Rank
			found = true
		}
	}
	return max, found
}

func (k Knowledge) Clone() Knowledge {
	return Knowledge{
		Known:  CopyCards(k.Known),
		Unseen: k.Unseen.Clone(),
	}
}

// CopyCards returns an independent copy of a card slice.
func CopyCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
