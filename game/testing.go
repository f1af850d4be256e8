package game

import (
	"fmt"
	"math/rand"

	"github.com/fusiongabin/uno-server/deck"
)

// fixtures for tests

func numberCard(color deck.Color, n int) deck.Card {
	return deck.NewCard(deck.Number, color, n)
}

func kindCard(kind deck.Kind, color deck.Color) deck.Card {
	return deck.NewCard(kind, color, 0)
}

// fixedGame returns a game with a deterministic shuffle
func fixedGame(cfg Config) *Game {
	return newWithRand(cfg, rand.New(rand.NewSource(42)))
}

// liveGame seats players p1..pn with the given hands and puts the table
// mid-round with a full spare draw pile. Callers set the discard top.
func liveGame(cfg Config, hands ...[]deck.Card) *Game {
	g := fixedGame(cfg)

	for i, hand := range hands {
		g.table.Seats = append(g.table.Seats, &Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("player-%d", i+1),
			Hand: hand,
		})
	}

	g.table.DrawPile = deck.Build(deck.Options{Colors: g.cfg.Colors, WithDrawOne: g.cfg.WithDrawOne})
	g.state = inRound

	return g
}

// topCard replaces the discard pile with a single card
func topCard(g *Game, c deck.Card) {
	g.table.DiscardPile = []deck.Card{c}
}
