package game

import "fmt"

// Suit is one of the four card suits. The numeric order is part of the
// feature-vector contract: per-suit feature blocks are emitted in this order.
type Suit int

const (
	Clubs Suit = iota
	Hearts
	Diamonds
	Spades
)

const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank is a card rank from MinRank to MaxRank. Ranks above 10 are royals.
type Rank int

const (
	MinRank Rank = 6
	MaxRank Rank = 14

	NumRanks = int(MaxRank-MinRank) + 1
)

func (r Rank) String() string {
	switch r {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Royal reports whether the rank is a face card or ace.
func (r Rank) Royal() bool {
	return r > 10
}

// Card is an immutable value: two cards with equal fields are the same card.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%v of %v", c.Rank, c.Suit)
}
