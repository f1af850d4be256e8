package game

import (
	"testing"

	"github.com/fusiongabin/uno-server/deck"
	utils "github.com/fusiongabin/uno-server/internal"
)

func TestTurnAdvance(t *testing.T) {
	threeSeats := func() *Game {
		return liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 2)},
			[]deck.Card{numberCard(deck.Red, 3)},
		)
	}

	t.Run("wraps forwards", func(t *testing.T) {
		g := threeSeats()
		g.table.CurrentSeat = 2

		g.table.advance(1)
		utils.AssertEqual(t, g.table.CurrentSeat, 0)
	})

	t.Run("wraps backwards when reversed", func(t *testing.T) {
		g := threeSeats()
		g.table.Direction = -1

		g.table.advance(1)
		utils.AssertEqual(t, g.table.CurrentSeat, 2)
	})

	t.Run("passes straight through spectators", func(t *testing.T) {
		g := threeSeats()
		g.table.Seats[1].Spectator = true

		g.table.advance(1)
		utils.AssertEqual(t, g.table.CurrentSeat, 2)
	})

	t.Run("skip hops count active seats only", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 2)},
			[]deck.Card{numberCard(deck.Red, 3)},
			[]deck.Card{numberCard(deck.Red, 4)},
		)
		g.table.Seats[1].Spectator = true

		g.table.advance(2)
		utils.AssertEqual(t, g.table.CurrentSeat, 3)
	})

	t.Run("stays put with no active seats", func(t *testing.T) {
		g := threeSeats()
		for _, p := range g.table.Seats {
			p.Spectator = true
		}
		g.table.CurrentSeat = 1

		g.table.advance(1)
		utils.AssertEqual(t, g.table.CurrentSeat, 1)
	})
}
