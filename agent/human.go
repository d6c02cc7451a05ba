package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smnguyen/ml-durak/game"
)

// Human prompts for a 0-based option index on each decision (-1 to stop or
// surrender where allowed), reading lines from in and writing prompts to out.
type Human struct {
	Name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{Name: name, in: bufio.NewScanner(in), out: out}
}

func (a *Human) ChooseMove(d Decision, options []game.Card, snap game.Snapshot) int {
	if len(options) == 0 {
		panic("no options to choose from")
	}
	a.printInfo(snap)
	fmt.Fprintf(a.out, "  Your options: %v\n", options)

	switch d {
	case BeginAttack:
		return a.readIndex(0, len(options)-1, "  Select a card to begin attack: ")
	case ContinueAttack:
		return a.readIndex(Stop, len(options)-1, "  Select a card to attack (-1 to stop): ")
	case Defend:
		return a.readIndex(Stop, len(options)-1, "  Select a card to defend (-1 to surrender): ")
	default:
		panic("unknown decision")
	}
}

func (a *Human) printInfo(snap game.Snapshot) {
	fmt.Fprintf(a.out, "  Your hand: %v\n", snap.Hand)
	fmt.Fprintf(a.out, "  The table: %v\n", snap.Table)
	fmt.Fprintf(a.out, "  Trump card: %v\n", snap.Trump)
	fmt.Fprintf(a.out, "  Cards left in deck: %d\n", snap.DeckSize)
	fmt.Fprintf(a.out, "  Opponent cards: %d\n", snap.OpponentHandSize)

	// Card-counting hint: the strongest card per suit that could still be
	// out there, derived from what has not been seen.
	k := game.Knowledge{Known: snap.Known, Unseen: snap.Unseen}
	var hints []string
	for suit := game.Suit(0); suit < game.NumSuits; suit++ {
		if max, ok := k.MaxRemaining(suit); ok {
			hints = append(hints, fmt.Sprintf("%v<=%v", suit, max))
		}
	}
	if len(hints) > 0 {
		fmt.Fprintf(a.out, "  Opponent could hold up to: %s\n", strings.Join(hints, " "))
	}
}

// readIndex keeps prompting until it reads an integer in [lo, hi]. EOF on
// input falls back to the first option: an interrupted session should not
// wedge the game loop.
func (a *Human) readIndex(lo, hi int, prompt string) int {
	for {
		fmt.Fprint(a.out, prompt)
		if !a.in.Scan() {
			return max(lo, 0)
		}
		n, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil || n < lo || n > hi {
			fmt.Fprintf(a.out, "  Enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n
	}
}
