package game

import "golang.org/x/exp/rand"

// DeckCards is the size of the full 36-card Durak deck.
const DeckCards = NumSuits * NumRanks

// HandSize is the number of cards each player refills to while the deck lasts.
const HandSize = 6

// Universe returns every card in the deck in fixed suit-major order.
func Universe() []Card {
	cards := make([]Card, 0, DeckCards)
	for s := Suit(0); s < NumSuits; s++ {
		for r := MinRank; r <= MaxRank; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Deck is the draw pile. Index 0 is the bottom; draws come off the top.
type Deck struct {
	cards []Card
}

// NewDeck returns a full shuffled deck.
func NewDeck(rng *rand.Rand) *Deck {
	cards := Universe()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Draw removes and returns the top card. The second return is false once the
// deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// TuckBottom places a card at the bottom of the deck. The trump card is drawn
// at setup and tucked back so it is the last card dealt.
func (d *Deck) TuckBottom(c Card) {
	d.cards = append([]Card{c}, d.cards...)
}
