package gamelog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smnguyen/ml-durak/game"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder("alice", "bob")

	rec.NewGame(game.Card{Suit: game.Spades, Rank: 9})
	rec.NewRound(24, 0)
	rec.RecordMove("alice", game.Card{Suit: game.Clubs, Rank: 6}, 1)
	rec.RecordMove("bob", game.Card{Suit: game.Clubs, Rank: 10}, 2)
	rec.RecordPass("alice")
	rec.EndRound(false)
	rec.NewRound(22, 2)
	rec.RecordMove("bob", game.Card{Suit: game.Hearts, Rank: 12}, 1)
	rec.EndRound(true)
	rec.DeclareWinner("bob")

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got session
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, []string{"alice", "bob"}, got.Players)
	require.Len(t, got.Games, 1)

	g := got.Games[0]
	require.NotEmpty(t, g.ID)
	require.Equal(t, "bob", g.Winner)
	require.False(t, g.Tie)
	require.Len(t, g.Rounds, 2)

	first := g.Rounds[0]
	require.Equal(t, 24, first.DeckSize)
	require.Equal(t, 0, first.Trashed)
	require.False(t, first.DefenderLost)
	require.Len(t, first.Moves, 3)
	require.Equal(t, "alice", first.Moves[0].Mover)
	require.NotEmpty(t, first.Moves[0].Card)
	require.True(t, first.Moves[2].Pass)

	second := g.Rounds[1]
	require.Equal(t, 22, second.DeckSize)
	require.Equal(t, 2, second.Trashed)
	require.True(t, second.DefenderLost)
}

func TestRecorderMultipleGames(t *testing.T) {
	rec := NewRecorder("alice", "bob")

	rec.NewGame(game.Card{Suit: game.Hearts, Rank: 6})
	rec.NewRound(24, 0)
	rec.RecordMove("alice", game.Card{Suit: game.Clubs, Rank: 6}, 1)
	rec.EndRound(false)
	rec.DeclareTie()

	rec.NewGame(game.Card{Suit: game.Diamonds, Rank: 11})
	rec.NewRound(24, 0)
	rec.RecordMove("bob", game.Card{Suit: game.Spades, Rank: 8}, 1)
	rec.EndRound(true)
	rec.DeclareWinner("alice")

	r := rec.(*recorder)
	require.Len(t, r.session.Games, 2)
	require.True(t, r.session.Games[0].Tie)
	require.Equal(t, "alice", r.session.Games[1].Winner)
	require.NotEqual(t, r.session.Games[0].ID, r.session.Games[1].ID)
}

func TestRecorderContract(t *testing.T) {
	t.Run("round events need a game", func(t *testing.T) {
		rec := NewRecorder("alice", "bob")

		require.Panics(t, func() { rec.NewRound(24, 0) })
	})

	t.Run("moves need a round", func(t *testing.T) {
		rec := NewRecorder("alice", "bob")
		rec.NewGame(game.Card{Suit: game.Spades, Rank: 9})

		require.Panics(t, func() {
			rec.RecordMove("alice", game.Card{Suit: game.Clubs, Rank: 6}, 1)
		})
	})
}

func TestDummyRecorder(t *testing.T) {
	rec := NewDummyRecorder()

	// Every event is a no-op, including events with no game in progress.
	rec.NewRound(24, 0)
	rec.RecordMove("alice", game.Card{Suit: game.Clubs, Rank: 6}, 1)
	rec.DeclareTie()
	require.NoError(t, rec.Write(filepath.Join(t.TempDir(), "ignored.json")))
}
