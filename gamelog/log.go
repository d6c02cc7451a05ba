// Package gamelog records played games as a JSON document, one session per
// recorder: trump and rounds per game, moves per round, and the outcome.
package gamelog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/smnguyen/ml-durak/game"
)

// Recorder receives game events from the engine. NewDummyRecorder returns a
// no-op implementation for runs that do not keep a log.
type Recorder interface {
	NewGame(trump game.Card)
	NewRound(deckSize, trashed int)
	RecordMove(mover string, card game.Card, tableSize int)
	RecordPass(mover string)
	EndRound(defenderLost bool)
	DeclareWinner(name string)
	DeclareTie()
	Write(path string) error
}

type session struct {
	Players []string     `json:"players"`
	Games   []gameRecord `json:"games"`
}

type gameRecord struct {
	ID     string        `json:"id"`
	Trump  string        `json:"trump"`
	Rounds []roundRecord `json:"rounds"`
	Winner string        `json:"winner,omitempty"`
	Tie    bool          `json:"tie,omitempty"`
}

type roundRecord struct {
	DeckSize     int          `json:"deckSize"`
	Trashed      int          `json:"trashed"`
	Moves        []moveRecord `json:"moves"`
	DefenderLost bool         `json:"defenderLost"`
}

type moveRecord struct {
	Mover     string `json:"mover"`
	Card      string `json:"card,omitempty"`
	Pass      bool   `json:"pass,omitempty"`
	TableSize int    `json:"tableSize"`
}

type recorder struct {
	session session
}

// NewRecorder returns a recorder for a session between the two named players.
func NewRecorder(playerOne, playerTwo string) Recorder {
	return &recorder{session: session{Players: []string{playerOne, playerTwo}}}
}

func (r *recorder) NewGame(trump game.Card) {
	r.session.Games = append(r.session.Games, gameRecord{
		ID:    uuid.NewString(),
		Trump: trump.String(),
	})
}

func (r *recorder) NewRound(deckSize, trashed int) {
	g := r.currentGame()
	g.Rounds = append(g.Rounds, roundRecord{DeckSize: deckSize, Trashed: trashed})
}

func (r *recorder) RecordMove(mover string, card game.Card, tableSize int) {
	round := r.currentRound()
	round.Moves = append(round.Moves, moveRecord{
		Mover:     mover,
		Card:      card.String(),
		TableSize: tableSize,
	})
}

func (r *recorder) RecordPass(mover string) {
	round := r.currentRound()
	round.Moves = append(round.Moves, moveRecord{Mover: mover, Pass: true})
}

func (r *recorder) EndRound(defenderLost bool) {
	r.currentRound().DefenderLost = defenderLost
}

func (r *recorder) DeclareWinner(name string) {
	r.currentGame().Winner = name
}

func (r *recorder) DeclareTie() {
	r.currentGame().Tie = true
}

// Write stores the session as indented JSON.
func (r *recorder) Write(path string) error {
	data, err := json.MarshalIndent(r.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write game log: %w", err)
	}
	return nil
}

func (r *recorder) currentGame() *gameRecord {
	if len(r.session.Games) == 0 {
		panic("no game in progress")
	}
	return &r.session.Games[len(r.session.Games)-1]
}

func (r *recorder) currentRound() *roundRecord {
	g := r.currentGame()
	if len(g.Rounds) == 0 {
		panic("no round in progress")
	}
	return &g.Rounds[len(g.Rounds)-1]
}

type dummyRecorder struct{}

// NewDummyRecorder returns a recorder that keeps nothing.
func NewDummyRecorder() Recorder {
	return dummyRecorder{}
}

func (dummyRecorder) NewGame(game.Card)                 {}
func (dummyRecorder) NewRound(int, int)                 {}
func (dummyRecorder) RecordMove(string, game.Card, int) {}
func (dummyRecorder) RecordPass(string)                 {}
func (dummyRecorder) EndRound(bool)                     {}
func (dummyRecorder) DeclareWinner(string)              {}
func (dummyRecorder) DeclareTie()                       {}
func (dummyRecorder) Write(string) error                { return nil }
