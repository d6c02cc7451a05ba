package game

// AttackOptions returns the hand cards that may continue an attack: cards
// whose rank already appears on the table.
func AttackOptions(hand, table []Card) []Card {
	ranks := make(map[Rank]bool, len(table))
	for _, c := range table {
		ranks[c.Rank] = true
	}
	var options []Card
	for _, c := range hand {
		if ranks[c.Rank] {
			options = append(options, c)
		}
	}
	return options
}

// DefendOptions returns the hand cards that beat the attacking card: same
// suit and strictly higher rank, plus every trump when the attack is not a
// trump itself.
func DefendOptions(hand []Card, attack Card, trump Suit) []Card {
	var options []Card
	for _, c := range hand {
		if c.Suit == attack.Suit && c.Rank > attack.Rank {
			options = append(options, c)
		}
	}
	if attack.Suit != trump {
		for _, c := range hand {
			if c.Suit == trump {
				options = append(options, c)
			}
		}
	}
	return options
}
