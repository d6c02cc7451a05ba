package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/game"
)

func zeroWeights() (*mat.VecDense, *mat.VecDense) {
	return mat.NewVecDense(NumFeatures, nil), mat.NewVecDense(NumFeatures, nil)
}

func TestReflexBeginAttack(t *testing.T) {
	t.Run("zero weights tie-break picks the first card", func(t *testing.T) {
		// Both hypothetical states score exactly 0.5, so the stable argmax
		// must keep index 0.
		a := NewReflex(zeroWeights())
		snap := game.Snapshot{
			Hand: []game.Card{
				{Suit: game.Clubs, Rank: 6},
				{Suit: game.Spades, Rank: 14},
			},
			OpponentHandSize: 6,
			Trump:            game.Card{Suit: game.Spades, Rank: 14},
			DeckSize:         24,
			Unseen:           game.FullSet(),
		}

		got := a.ChooseMove(BeginAttack, snap.Hand, snap)

		require.Equal(t, 0, got)
	})

	t.Run("prefers the card whose post-state scores higher", func(t *testing.T) {
		// Weight only the trump-count feature: keeping the trump in hand
		// scores higher, so the agent leads with the club.
		attack, defend := zeroWeights()
		attack.SetVec(18, 5)
		a := NewReflex(attack, defend)
		snap := game.Snapshot{
			Hand: []game.Card{
				{Suit: game.Spades, Rank: 14},
				{Suit: game.Clubs, Rank: 6},
			},
			OpponentHandSize: 6,
			Trump:            game.Card{Suit: game.Spades, Rank: 9},
			DeckSize:         24,
			Unseen:           game.FullSet(),
		}

		got := a.ChooseMove(BeginAttack, snap.Hand, snap)

		require.Equal(t, 1, got)
	})
}

func TestReflexContinueAttack(t *testing.T) {
	snap := game.Snapshot{
		Hand: []game.Card{
			{Suit: game.Hearts, Rank: 7},
			{Suit: game.Diamonds, Rank: 7},
		},
		OpponentHandSize: 5,
		Trump:            game.Card{Suit: game.Spades, Rank: 9},
		Table:            []game.Card{{Suit: game.Clubs, Rank: 7}},
		DeckSize:         20,
		Unseen:           game.FullSet(),
	}
	options := snap.Hand

	t.Run("returns an index within the option range", func(t *testing.T) {
		a := NewReflex(zeroWeights())

		got := a.ChooseMove(ContinueAttack, options, snap)

		require.GreaterOrEqual(t, got, Stop)
		require.Less(t, got, len(options))
	})

	t.Run("stops when the stop state scores strictly higher", func(t *testing.T) {
		// Penalize table cards: any concrete option leaves cards on the
		// table while the stop state clears it.
		attack, defend := zeroWeights()
		attack.SetVec(1, -10)
		a := NewReflex(attack, defend)

		got := a.ChooseMove(ContinueAttack, options, snap)

		require.Equal(t, Stop, got)
	})

	t.Run("keeps attacking when the stop state ties", func(t *testing.T) {
		// Zero weights score stop and every option at 0.5; the stop choice
		// requires a strictly higher score.
		a := NewReflex(zeroWeights())

		got := a.ChooseMove(ContinueAttack, options, snap)

		require.Equal(t, 0, got)
	})
}

func TestReflexDefend(t *testing.T) {
	snap := game.Snapshot{
		Hand: []game.Card{
			{Suit: game.Clubs, Rank: 11},
			{Suit: game.Hearts, Rank: 6},
		},
		OpponentHandSize: 5,
		Trump:            game.Card{Suit: game.Hearts, Rank: 9},
		Table:            []game.Card{{Suit: game.Clubs, Rank: 10}},
		DeckSize:         18,
		Unseen:           game.FullSet(),
	}
	options := game.DefendOptions(snap.Hand, snap.Table[0], snap.Trump.Suit)

	t.Run("legal options include higher same-suit and trumps", func(t *testing.T) {
		require.Equal(t, []game.Card{
			{Suit: game.Clubs, Rank: 11},
			{Suit: game.Hearts, Rank: 6},
		}, options)
	})

	t.Run("surrenders when picking up scores higher", func(t *testing.T) {
		// Reward hand size: surrendering keeps both hand cards and adds the
		// table card.
		attack, defend := zeroWeights()
		defend.SetVec(0, 10)
		a := NewReflex(attack, defend)

		got := a.ChooseMove(Defend, options, snap)

		require.Equal(t, Stop, got)
	})

	t.Run("defends under zero weights", func(t *testing.T) {
		a := NewReflex(zeroWeights())

		got := a.ChooseMove(Defend, options, snap)

		require.Equal(t, 0, got)
	})
}

func TestReflexContractViolations(t *testing.T) {
	t.Run("panics on empty options", func(t *testing.T) {
		a := NewReflex(zeroWeights())

		require.Panics(t, func() {
			a.ChooseMove(Defend, nil, game.Snapshot{Unseen: game.FullSet()})
		})
	})

	t.Run("panics on mis-sized weights", func(t *testing.T) {
		bad := mat.NewVecDense(3, nil)

		require.Panics(t, func() { NewReflex(bad, bad) })
	})
}

func TestSimple(t *testing.T) {
	snap := game.Snapshot{Trump: game.Card{Suit: game.Spades, Rank: 9}}

	t.Run("plays the lowest non-trump", func(t *testing.T) {
		options := []game.Card{
			{Suit: game.Spades, Rank: 6},
			{Suit: game.Hearts, Rank: 12},
			{Suit: game.Clubs, Rank: 8},
		}

		require.Equal(t, 2, NewSimple().ChooseMove(BeginAttack, options, snap))
	})

	t.Run("falls back to the lowest trump", func(t *testing.T) {
		options := []game.Card{
			{Suit: game.Spades, Rank: 13},
			{Suit: game.Spades, Rank: 7},
		}

		require.Equal(t, 1, NewSimple().ChooseMove(Defend, options, snap))
	})
}
