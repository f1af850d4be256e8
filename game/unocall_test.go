package game

import (
	"testing"

	"github.com/fusiongabin/uno-server/deck"
	utils "github.com/fusiongabin/uno-server/internal"
	"github.com/stretchr/testify/assert"

	"github.com/fusiongabin/uno-server/protocol"
)

func TestCallUno(t *testing.T) {
	t.Run("protects a player on one card", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Blue, 4)},
		)

		events, err := g.CallUno("p1")
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, g.table.Seats[0].CalledUno)
		utils.AssertEqual(t, events[0].Cmd, protocol.CallUno)
	})

	t.Run("rejects a call on more than one card", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1), numberCard(deck.Blue, 2)},
			[]deck.Card{numberCard(deck.Red, 3)},
		)

		_, err := g.CallUno("p1")
		utils.AssertErrorIs(t, err, ErrCannotCallUno)
	})

	t.Run("rejects an unknown player", func(t *testing.T) {
		g := liveGame(Config{}, []deck.Card{numberCard(deck.Red, 1)})

		_, err := g.CallUno("nobody")
		utils.AssertErrorIs(t, err, ErrUnknownPlayer)
	})

	t.Run("protection lapses when the hand changes", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Blue, 4)},
		)
		topCard(g, numberCard(deck.Blue, 9))

		_, err := g.CallUno("p1")
		utils.AssertNoError(t, err)

		_, err = g.Draw("p1")
		utils.AssertNoError(t, err)
		assert.False(t, g.table.Seats[0].CalledUno)
	})
}

func TestCounterUno(t *testing.T) {
	t.Run("penalises a lapsed call with two cards", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Blue, 4)},
		)

		events, err := g.CounterUno("p2", "p1")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(g.table.Seats[0].Hand), 3)
		utils.AssertEqual(t, events[0].Cmd, protocol.CounterUno)
		utils.AssertEqual(t, events[0].PlayerID, "p2")
	})

	t.Run("works out of turn", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Blue, 4)},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 6), numberCard(deck.Blue, 7)},
		)
		// p1 holds the turn, but p3 may still catch p2
		_, err := g.CounterUno("p3", "p2")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(g.table.Seats[1].Hand), 3)
	})

	t.Run("a declared call cannot be countered", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Blue, 4)},
		)

		_, err := g.CallUno("p1")
		utils.AssertNoError(t, err)

		_, err = g.CounterUno("p2", "p1")
		utils.AssertErrorIs(t, err, ErrInvalidCounter)
	})

	t.Run("rejects a target not on one card", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1), numberCard(deck.Blue, 2)},
			[]deck.Card{numberCard(deck.Red, 3)},
		)

		_, err := g.CounterUno("p2", "p1")
		utils.AssertErrorIs(t, err, ErrInvalidCounter)
	})

	t.Run("rejects unknown seats", func(t *testing.T) {
		g := liveGame(Config{},
			[]deck.Card{numberCard(deck.Red, 1)},
			[]deck.Card{numberCard(deck.Red, 3)},
		)

		_, err := g.CounterUno("nobody", "p1")
		utils.AssertErrorIs(t, err, ErrUnknownPlayer)

		_, err = g.CounterUno("p2", "nobody")
		utils.AssertErrorIs(t, err, ErrInvalidTarget)
	})
}
