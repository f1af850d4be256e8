package game

import (
	"github.com/fusiongabin/uno-server/deck"
)

func cardsUnique(cards []deck.Card) bool {
	seen := map[string]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			return false
		}
		seen[c.ID] = struct{}{}
	}
	return true
}

func containsCard(s []deck.Card, targets ...deck.Card) bool {
	for _, c := range s {
		for _, tg := range targets {
			if c.ID == tg.ID {
				return true
			}
		}
	}
	return false
}

// totalCards counts every card in existence at the table: hands, draw pile
// and discard pile. The sum is invariant for the lifetime of a round.
func totalCards(t *Table) int {
	n := len(t.DrawPile) + len(t.DiscardPile)
	for _, p := range t.Seats {
		n += len(p.Hand)
	}
	return n
}
