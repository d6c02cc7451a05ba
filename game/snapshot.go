package game

// Snapshot is one player's immutable view of the game at a decision or
// learning point. Snapshots are deep copies: mutating the live game after
// capture never changes a snapshot, and agents exploring hypothetical moves
// derive fresh snapshots rather than touching this one.
type Snapshot struct {
	Hand             []Card
	Known            []Card
	OpponentHandSize int
	Trump            Card
	Table            []Card
	DeckSize         int
	Unseen           CardSet
}

// NewSnapshot captures a player's view, cloning every mutable input.
func NewSnapshot(hand []Card, k Knowledge, opponentHandSize int, trump Card, table []Card, deckSize int) Snapshot {
	return Snapshot{
		Hand:             CopyCards(hand),
		Known:            CopyCards(k.Known),
		OpponentHandSize: opponentHandSize,
		Trump:            trump,
		Table:            CopyCards(table),
		DeckSize:         deckSize,
		Unseen:           k.Unseen.Clone(),
	}
}

// WithMove returns the hypothetical view after playing the given hand card
// onto the table. The receiver is unchanged.
func (s Snapshot) WithMove(c Card) Snapshot {
	hand := make([]Card, 0, len(s.Hand))
	removed := false
	for _, h := range s.Hand {
		if !removed && h == c {
			removed = true
			continue
		}
		hand = append(hand, h)
	}
	table := make([]Card, 0, len(s.Table)+1)
	table = append(table, s.Table...)
	table = append(table, c)

	next := s
	next.Hand = hand
	next.Table = table
	return next
}
