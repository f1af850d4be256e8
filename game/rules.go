package game

import (
	"fmt"

	"github.com/fusiongabin/uno-server/deck"
	"github.com/fusiongabin/uno-server/protocol"
)

// CardLegal decides whether candidate may be played on top under the given
// house rules. A card is legal on a matching colour, a matching number, a
// matching non-number kind, or unconditionally when wild.
func CardLegal(cfg Config, candidate, top deck.Card) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.Color == top.Color {
		// A resolved wild's chosen colour counts as a real match unless the
		// house rules restrict draw-card stacking to kind matches.
		if cfg.StackSameKindOnly && top.IsWild() && isDrawKind(candidate.Kind) {
			return false
		}
		return true
	}
	if candidate.Kind == deck.Number && top.Kind == deck.Number && candidate.Number == top.Number {
		return true
	}
	if candidate.Kind == top.Kind && candidate.Kind != deck.Number {
		return true
	}
	return false
}

func isDrawKind(k deck.Kind) bool {
	return k == deck.DrawOne || k == deck.DrawTwo
}

// realColor reports whether the colour is in this table's colour set
func (g *Game) realColor(c deck.Color) bool {
	for _, col := range g.cfg.Colors {
		if c == col {
			return true
		}
	}
	return false
}

// Play validates and resolves a single card play for the acting player.
// Validation happens before any state changes, so a rejected play leaves
// the table untouched.
func (g *Game) Play(playerID string, cardIndex int, chosen deck.Color) ([]Event, error) {
	p, ok := g.table.Seat(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}

	current, _ := g.table.CurrentPlayer()
	if g.state != inRound || current == nil || current.ID != playerID || p.Spectator {
		return nil, ErrNotYourTurn
	}

	if cardIndex < 0 || cardIndex >= len(p.Hand) {
		return nil, ErrInvalidCardIndex
	}

	card := p.Hand[cardIndex]
	top, ok := g.table.DiscardTop()
	if !ok {
		return nil, ErrNotYourTurn
	}

	if !CardLegal(g.cfg, card, top) {
		return nil, ErrIllegalPlay
	}

	if len(p.Hand) == 1 && card.Kind != deck.Number {
		return nil, ErrCannotEndOnSpecial
	}

	if card.IsWild() && !g.realColor(chosen) {
		return nil, ErrColorRequired
	}

	// The play is valid; from here every change commits.
	p.Hand = append(p.Hand[:cardIndex], p.Hand[cardIndex+1:]...)
	if card.IsWild() {
		card.Color = chosen
	}
	g.table.DiscardPile = append(g.table.DiscardPile, card)

	advance := 1
	switch card.Kind {
	case deck.Reverse:
		g.table.Direction *= -1
	case deck.Skip:
		advance = 2
	case deck.DrawOne:
		g.table.PendingPenalty++
	case deck.DrawTwo:
		g.table.PendingPenalty += 2
	case deck.WildDrawFour:
		g.table.PendingPenalty += 4
	}

	if len(p.Hand) != 1 {
		p.CalledUno = false
	}

	events := []Event{{
		Cmd:      protocol.Play,
		PlayerID: p.ID,
		Message:  fmt.Sprintf("%s played %s", p.Name, card),
	}}

	if len(p.Hand) == 0 {
		// the lifecycle sweep records the win and decides what happens next
		return append(events, g.sweep()...), nil
	}

	g.table.advance(advance)
	return append(events, g.sweep()...), nil
}

// Draw resolves a draw action. A pending penalty is discharged in full
// before normal single-card draws resume; either way the turn passes.
func (g *Game) Draw(playerID string) ([]Event, error) {
	p, ok := g.table.Seat(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}

	current, _ := g.table.CurrentPlayer()
	if g.state != inRound || current == nil || current.ID != playerID || p.Spectator {
		return nil, ErrNotYourTurn
	}

	count := 1
	penalised := g.table.PendingPenalty > 0
	if penalised {
		count = g.table.PendingPenalty
		g.table.PendingPenalty = 0
	}

	drawn := g.table.drawWithReshuffle(count, g.rng)
	p.Hand = append(p.Hand, drawn...)

	if len(p.Hand) != 1 {
		p.CalledUno = false
	}

	msg := fmt.Sprintf("%s drew a card", p.Name)
	if penalised {
		msg = fmt.Sprintf("%s drew %d penalty cards", p.Name, len(drawn))
	}
	events := []Event{{
		Cmd:      protocol.Draw,
		PlayerID: p.ID,
		Message:  msg,
	}}

	g.table.advance(1)
	return append(events, g.sweep()...), nil
}
