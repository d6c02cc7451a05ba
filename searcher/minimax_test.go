package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smnguyen/ml-durak/game"
)

func constEval(v float64) Evaluate {
	return func(game.Snapshot, bool) float64 { return v }
}

func TestMinimaxFindsForcedWin(t *testing.T) {
	// The defender holds a lone ten of hearts. Leading the six of hearts gets
	// beaten and loses outright; leading the ace of clubs cannot be answered,
	// the defender picks up, and the attacker sheds their last card next round.
	pos := NewPosition(
		[2][]game.Card{
			{{Suit: game.Hearts, Rank: 6}, {Suit: game.Clubs, Rank: 14}},
			{{Suit: game.Hearts, Rank: 10}},
		},
		nil, trumpNine, 0, 0)

	m := NewMinimax(constEval(0.5))
	mv, _ := m.FindMove(pos, 0)

	require.Equal(t, Move{Card: game.Card{Suit: game.Clubs, Rank: 14}}, mv)
}

func TestMinimaxDefenderTakesWin(t *testing.T) {
	// Mirror of the forced-win position from the defender's side: beating the
	// six empties the defending hand and wins, surrendering loses to the ace.
	pos := NewPosition(
		[2][]game.Card{
			{{Suit: game.Clubs, Rank: 14}},
			{{Suit: game.Hearts, Rank: 10}},
		},
		[]game.Card{{Suit: game.Hearts, Rank: 6}},
		trumpNine, 0, 1)

	m := NewMinimax(constEval(0.5))
	mv, _ := m.FindMove(pos, 1)

	require.Equal(t, Move{Card: game.Card{Suit: game.Hearts, Rank: 10}}, mv)
}

func TestMinimaxDepthZeroIsGreedy(t *testing.T) {
	// With no lookahead budget each root candidate is scored directly, so the
	// search reduces to an argmax over the one-ply leaf values.
	pos := NewPosition(
		[2][]game.Card{
			{
				{Suit: game.Clubs, Rank: 6},
				{Suit: game.Clubs, Rank: 10},
				{Suit: game.Clubs, Rank: 7},
			},
			{
				{Suit: game.Hearts, Rank: 8},
				{Suit: game.Hearts, Rank: 11},
				{Suit: game.Diamonds, Rank: 9},
			},
		},
		nil, trumpNine, 0, 0)

	byTableRank := func(view game.Snapshot, _ bool) float64 {
		return float64(view.Table[len(view.Table)-1].Rank) / 100
	}
	m := NewMinimax(byTableRank, WithDepth(0))
	mv, _ := m.FindMove(pos, 0)

	require.Equal(t, Move{Card: game.Card{Suit: game.Clubs, Rank: 10}}, mv)
}

func TestMinimaxOrderInvariance(t *testing.T) {
	// With a unique best value the chosen card must not depend on the order
	// the candidates are offered in.
	pos := NewPosition(
		[2][]game.Card{
			{{Suit: game.Hearts, Rank: 6}, {Suit: game.Clubs, Rank: 14}},
			{{Suit: game.Hearts, Rank: 10}},
		},
		nil, trumpNine, 0, 0)
	m := NewMinimax(constEval(0.5))

	forward := []Move{
		{Card: game.Card{Suit: game.Hearts, Rank: 6}},
		{Card: game.Card{Suit: game.Clubs, Rank: 14}},
	}
	reversed := []Move{forward[1], forward[0]}

	bestForward, _ := m.FindMoveAmong(pos, 0, forward)
	bestReversed, _ := m.FindMoveAmong(pos, 0, reversed)

	require.Equal(t, forward[bestForward], reversed[bestReversed])
	require.Equal(t, game.Card{Suit: game.Clubs, Rank: 14}, forward[bestForward].Card)
}

func TestMinimaxTieBreak(t *testing.T) {
	// Equal values everywhere must keep the first candidate.
	pos := NewPosition(
		[2][]game.Card{
			{{Suit: game.Clubs, Rank: 6}, {Suit: game.Clubs, Rank: 10}},
			{{Suit: game.Hearts, Rank: 8}, {Suit: game.Hearts, Rank: 11}},
		},
		nil, trumpNine, 0, 0)

	m := NewMinimax(constEval(0.5), WithDepth(0))
	best, _ := m.FindMoveAmong(pos, 0, pos.Options())

	require.Equal(t, 0, best)
}

func TestMinimaxMetrics(t *testing.T) {
	pos := NewPosition(
		[2][]game.Card{
			{{Suit: game.Hearts, Rank: 6}, {Suit: game.Clubs, Rank: 14}},
			{{Suit: game.Hearts, Rank: 10}, {Suit: game.Clubs, Rank: 7}},
		},
		nil, trumpNine, 0, 0)

	t.Run("collects node counts when enabled", func(t *testing.T) {
		m := NewMinimax(constEval(0.5), WithDepth(3), WithMetrics())

		_, metric := m.FindMove(pos, 0)

		require.Equal(t, 3, metric.Depth)
		require.Positive(t, metric.Nodes)
		require.GreaterOrEqual(t, metric.Nodes, metric.Leaves)
	})

	t.Run("stays silent by default", func(t *testing.T) {
		m := NewMinimax(constEval(0.5), WithDepth(3))

		_, metric := m.FindMove(pos, 0)

		require.Zero(t, metric)
	})
}

func TestMinimaxContract(t *testing.T) {
	t.Run("requires an evaluation function", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax(nil) })
	})

	t.Run("requires at least one candidate", func(t *testing.T) {
		m := NewMinimax(constEval(0.5))
		pos := NewPosition(
			[2][]game.Card{
				{{Suit: game.Clubs, Rank: 6}},
				{{Suit: game.Hearts, Rank: 8}},
			},
			nil, trumpNine, 0, 0)

		require.Panics(t, func() { m.FindMoveAmong(pos, 0, nil) })
	})
}
