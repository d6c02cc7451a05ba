package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smnguyen/ml-durak/game"
	"github.com/smnguyen/ml-durak/searcher"
)

func TestEnhancedDelegatesWhileDeckRemains(t *testing.T) {
	// With cards still in the deck and zero weights, the reflex tie-break
	// picks index 0 just like a plain Reflex.
	a := NewEnhanced(zeroWeights())
	snap := game.Snapshot{
		Hand: []game.Card{
			{Suit: game.Clubs, Rank: 6},
			{Suit: game.Spades, Rank: 14},
		},
		OpponentHandSize: 6,
		Trump:            game.Card{Suit: game.Spades, Rank: 9},
		DeckSize:         24,
		Unseen:           game.FullSet(),
	}

	require.Equal(t, 0, a.ChooseMove(BeginAttack, snap.Hand, snap))
	require.Empty(t, a.SearchMetrics())
}

func TestEnhancedForcedOption(t *testing.T) {
	a := NewEnhanced(zeroWeights())
	snap := game.Snapshot{
		Hand:             []game.Card{{Suit: game.Clubs, Rank: 6}},
		Known:            []game.Card{{Suit: game.Hearts, Rank: 10}},
		OpponentHandSize: 1,
		Trump:            game.Card{Suit: game.Spades, Rank: 9},
		DeckSize:         0,
		Unseen:           make(game.CardSet),
	}

	require.Equal(t, 0, a.ChooseMove(BeginAttack, snap.Hand, snap))
	require.Empty(t, a.SearchMetrics(), "a forced move must not search")
}

func TestEnhancedEndgameSearch(t *testing.T) {
	// The opponent holds a lone ten of hearts. Leading the six of hearts gets
	// beaten and loses; leading the ace of clubs cannot be answered and wins.
	snap := game.Snapshot{
		Hand: []game.Card{
			{Suit: game.Hearts, Rank: 6},
			{Suit: game.Clubs, Rank: 14},
		},
		Known:            []game.Card{{Suit: game.Hearts, Rank: 10}},
		OpponentHandSize: 1,
		Trump:            game.Card{Suit: game.Spades, Rank: 9},
		DeckSize:         0,
		Unseen:           make(game.CardSet),
	}

	attack, defend := zeroWeights()
	a := NewEnhanced(attack, defend, searcher.WithMetrics())

	got := a.ChooseMove(BeginAttack, snap.Hand, snap)

	require.Equal(t, 1, got)

	metrics := a.SearchMetrics()
	require.Len(t, metrics, 1)
	require.Positive(t, metrics[0].Nodes)
	require.Empty(t, a.SearchMetrics(), "draining must reset the buffer")
}

func TestEnhancedEndgameDefense(t *testing.T) {
	// A defending endgame search may answer with any legal card or Stop; the
	// returned index must stay inside that range.
	snap := game.Snapshot{
		Hand: []game.Card{
			{Suit: game.Hearts, Rank: 7},
			{Suit: game.Hearts, Rank: 8},
		},
		Known: []game.Card{
			{Suit: game.Clubs, Rank: 14},
			{Suit: game.Hearts, Rank: 12},
		},
		OpponentHandSize: 2,
		Trump:            game.Card{Suit: game.Spades, Rank: 9},
		Table:            []game.Card{{Suit: game.Hearts, Rank: 6}},
		DeckSize:         0,
		Unseen:           make(game.CardSet),
	}
	options := game.DefendOptions(snap.Hand, snap.Table[0], snap.Trump.Suit)
	require.Len(t, options, 2)

	a := NewEnhanced(zeroWeights())

	got := a.ChooseMove(Defend, options, snap)

	require.GreaterOrEqual(t, got, Stop)
	require.Less(t, got, len(options))
}
