package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/game"
)

// NumFeatures is the length of the feature vector. It is part of the contract
// with the value model: persisted weight vectors have exactly this length.
const NumFeatures = 4 + game.NumRanks + 1 + game.NumSuits + 1 + game.NumSuits + 1 + 5

// Extract encodes a player's view of the game as a fixed-order feature
// vector. It is pure: the same snapshot always yields the same vector, and
// the snapshot is not modified.
func Extract(s game.Snapshot) *mat.VecDense {
	features := make([]float64, 0, NumFeatures)
	features = append(features,
		float64(len(s.Hand)),
		float64(len(s.Table)),
		float64(s.DeckSize),
		float64(s.OpponentHandSize),
	)

	counts := make(map[game.Rank]int, game.NumRanks)
	for _, c := range s.Hand {
		counts[c.Rank]++
	}
	for r := game.MinRank; r <= game.MaxRank; r++ {
		features = append(features, float64(counts[r]))
	}

	royals := 0
	var suits [game.NumSuits][]game.Card
	for _, c := range s.Hand {
		if c.Rank.Royal() {
			royals++
		}
		suits[c.Suit] = append(suits[c.Suit], c)
	}
	var trumps []game.Card
	for _, c := range s.Hand {
		if c.Suit == s.Trump.Suit {
			trumps = append(trumps, c)
		}
	}

	tableRanks := make(map[game.Rank]bool, len(s.Table))
	var maxTableRank game.Rank
	for _, c := range s.Table {
		tableRanks[c.Rank] = true
		if c.Rank > maxTableRank {
			maxTableRank = c.Rank
		}
	}

	attackCards := 0
	defendCards := 0
	for _, c := range s.Hand {
		if tableRanks[c.Rank] {
			attackCards++
		}
	}
	if len(tableRanks) > 0 {
		for _, c := range s.Hand {
			if c.Rank > maxTableRank || c.Suit == s.Trump.Suit {
				defendCards++
			}
		}
	} else {
		defendCards = len(s.Hand)
	}

	// Observed opponent threat: known cards that could attack or defend here.
	oppAttack := 0
	oppDefend := 0
	for _, c := range s.Known {
		if tableRanks[c.Rank] {
			oppAttack++
		}
	}
	if len(tableRanks) > 0 {
		for _, c := range s.Known {
			if c.Rank > maxTableRank || c.Suit == s.Trump.Suit {
				oppDefend++
			}
		}
	} else {
		oppDefend = len(s.Known)
	}

	features = append(features, float64(royals))
	for suit := game.Suit(0); suit < game.NumSuits; suit++ {
		features = append(features, float64(len(suits[suit])))
	}
	features = append(features, float64(len(trumps)))
	for suit := game.Suit(0); suit < game.NumSuits; suit++ {
		features = append(features, avgRank(suits[suit]))
	}
	features = append(features,
		avgRank(trumps),
		float64(attackCards),
		float64(defendCards),
		float64(len(tableRanks)),
		float64(oppAttack),
		float64(oppDefend),
	)

	return mat.NewVecDense(NumFeatures, features)
}

// avgRank returns the mean rank of the cards, or 0 for an empty set.
func avgRank(cards []game.Card) float64 {
	if len(cards) == 0 {
		return 0
	}
	sum := 0
	for _, c := range cards {
		sum += int(c.Rank)
	}
	return float64(sum) / float64(len(cards))
}
