package game

import (
	"math/rand"
	"testing"

	"github.com/fusiongabin/uno-server/deck"
	utils "github.com/fusiongabin/uno-server/internal"
	"github.com/stretchr/testify/assert"
)

func TestDrawWithReshuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("folds the discard back in, keeping its top", func(t *testing.T) {
		top := numberCard(deck.Red, 9)
		buried := []deck.Card{
			numberCard(deck.Blue, 1),
			numberCard(deck.Blue, 2),
			numberCard(deck.Blue, 3),
		}

		table := newTable()
		table.DiscardPile = append(append([]deck.Card{}, buried...), top)

		drawn := table.drawWithReshuffle(3, rng)

		utils.AssertEqual(t, len(drawn), 3)
		utils.AssertDeepEqual(t, table.DiscardPile, []deck.Card{top})
		assert.False(t, containsCard(drawn, top))
		utils.AssertTrue(t, cardsUnique(drawn))
	})

	t.Run("returns short when no cards can come back", func(t *testing.T) {
		table := newTable()
		table.DiscardPile = []deck.Card{numberCard(deck.Red, 9)}

		drawn := table.drawWithReshuffle(2, rng)
		utils.AssertEqual(t, len(drawn), 0)
	})
}

func TestSeedDiscard(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	table := newTable()
	// the tail is dealt first, so the special surfaces before the number
	table.DrawPile = deck.Deck{numberCard(deck.Green, 4), kindCard(deck.Skip, deck.Red)}

	table.seedDiscard(rng)

	top, ok := table.DiscardTop()
	utils.AssertTrue(t, ok)
	utils.AssertEqual(t, top.Kind, deck.Number)
	utils.AssertEqual(t, top.Color, deck.Green)

	// the skip went back under the pile rather than vanishing
	utils.AssertEqual(t, len(table.DrawPile), 1)
	utils.AssertEqual(t, table.DrawPile[0].Kind, deck.Skip)
}

func TestSmallestActiveHand(t *testing.T) {
	g := liveGame(Config{},
		[]deck.Card{numberCard(deck.Red, 1), numberCard(deck.Red, 2)},
		[]deck.Card{numberCard(deck.Red, 3)},
		[]deck.Card{numberCard(deck.Red, 4), numberCard(deck.Red, 5), numberCard(deck.Red, 6)},
	)

	utils.AssertEqual(t, g.table.smallestActiveHand(), 1)

	g.table.Seats[1].Spectator = true
	utils.AssertEqual(t, g.table.smallestActiveHand(), 2)
}

func TestCardConservation(t *testing.T) {
	g := liveGame(Config{},
		[]deck.Card{kindCard(deck.DrawTwo, deck.Red), numberCard(deck.Red, 1), numberCard(deck.Blue, 2)},
		[]deck.Card{numberCard(deck.Red, 3), numberCard(deck.Green, 8)},
		[]deck.Card{numberCard(deck.Red, 6), numberCard(deck.Yellow, 9)},
	)
	topCard(g, numberCard(deck.Red, 5))

	total := totalCards(g.table)

	_, err := g.Play("p1", 0, deck.NoColor)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, totalCards(g.table), total)

	_, err = g.Draw("p2")
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, totalCards(g.table), total)

	_, err = g.Draw("p3")
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, totalCards(g.table), total)
}
