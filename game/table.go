package game

import (
	"math/rand"

	"github.com/fusiongabin/uno-server/deck"
)

// Player represents one seat at the table. Seat order is turn order.
type Player struct {
	ID        string
	Name      string
	Hand      []deck.Card
	CalledUno bool
	Spectator bool
}

// Table is the complete authoritative state of one game
type Table struct {
	DrawPile       deck.Deck
	DiscardPile    []deck.Card
	Seats          []*Player
	CurrentSeat    int
	Direction      int
	PendingPenalty int
}

func newTable() *Table {
	return &Table{
		Seats:     []*Player{},
		Direction: 1,
	}
}

// DiscardTop returns the active card defining the current legal colour/kind
func (t *Table) DiscardTop() (deck.Card, bool) {
	if len(t.DiscardPile) == 0 {
		return deck.Card{}, false
	}
	return t.DiscardPile[len(t.DiscardPile)-1], true
}

// Seat finds a player by id
func (t *Table) Seat(playerID string) (*Player, bool) {
	for _, p := range t.Seats {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// ActiveSeats counts the non-spectator seats
func (t *Table) ActiveSeats() int {
	n := 0
	for _, p := range t.Seats {
		if !p.Spectator {
			n++
		}
	}
	return n
}

// CurrentPlayer returns the player whose turn it is
func (t *Table) CurrentPlayer() (*Player, bool) {
	if len(t.Seats) == 0 || t.CurrentSeat < 0 || t.CurrentSeat >= len(t.Seats) {
		return nil, false
	}
	return t.Seats[t.CurrentSeat], true
}

// drawWithReshuffle pops up to n cards from the draw pile, folding the
// discard pile (minus its top card) back in whenever the draw pile runs dry.
// In the degenerate case where the discard holds a single card, fewer than n
// cards come back and callers must cope.
func (t *Table) drawWithReshuffle(n int, rng *rand.Rand) []deck.Card {
	drawn := []deck.Card{}
	for len(drawn) < n {
		if len(t.DrawPile) == 0 {
			t.reshuffleDiscard(rng)
			if len(t.DrawPile) == 0 {
				break
			}
		}
		drawn = append(drawn, t.DrawPile.Deal(1)...)
	}
	return drawn
}

// reshuffleDiscard sets the discard top aside, shuffles the rest into a
// fresh draw pile and reseeds the discard with just the top
func (t *Table) reshuffleDiscard(rng *rand.Rand) {
	if len(t.DiscardPile) <= 1 {
		return
	}
	top := t.DiscardPile[len(t.DiscardPile)-1]
	rest := deck.Deck(t.DiscardPile[:len(t.DiscardPile)-1])
	rest.Shuffle(rng)
	t.DrawPile = append(t.DrawPile, rest...)
	t.DiscardPile = []deck.Card{top}
}

// seedDiscard draws until a number card surfaces, pushing anything else
// back under the draw pile. A neutral starting top guarantees no accidental
// first-turn effect.
func (t *Table) seedDiscard(rng *rand.Rand) {
	for {
		cards := t.DrawPile.Deal(1)
		if len(cards) == 0 {
			return
		}
		card := cards[0]
		if card.Kind == deck.Number {
			t.DiscardPile = append(t.DiscardPile, card)
			return
		}
		t.DrawPile = append(deck.Deck{card}, t.DrawPile...)
	}
}

// smallestActiveHand returns the size of the smallest non-spectator hand,
// used to deal a proportionate hand to a mid-round joiner
func (t *Table) smallestActiveHand() int {
	smallest := 0
	for _, p := range t.Seats {
		if p.Spectator {
			continue
		}
		if smallest == 0 || len(p.Hand) < smallest {
			smallest = len(p.Hand)
		}
	}
	return smallest
}

// fixCursor moves the turn cursor onto a non-spectator seat if it is not on
// one already. No-op when every seat is a spectator.
func (t *Table) fixCursor() {
	if len(t.Seats) == 0 || t.ActiveSeats() == 0 {
		return
	}
	if t.CurrentSeat >= len(t.Seats) {
		t.CurrentSeat = 0
	}
	for t.Seats[t.CurrentSeat].Spectator {
		t.CurrentSeat = (t.CurrentSeat + t.Direction + len(t.Seats)) % len(t.Seats)
	}
}
