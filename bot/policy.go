package bot

import (
	"github.com/fusiongabin/uno-server/deck"
	"github.com/fusiongabin/uno-server/game"
	"github.com/fusiongabin/uno-server/protocol"
)

// Move is one command a policy wants submitted through the normal validated
// game entry points. Bots receive no special authority.
type Move struct {
	Command   protocol.Cmd
	CardIndex int
	Color     deck.Color
}

// Policy decides a bot's moves from the same redacted view a human client
// receives
type Policy interface {
	ChooseMoves(view game.TableView, playerID string) []Move
}

// FirstLegal plays the lowest-index legal card, picks the dominant hand
// colour for wilds and draws when stuck. It calls UNO whenever a play takes
// it down to one card.
type FirstLegal struct {
	Rules game.Config
}

func (f FirstLegal) ChooseMoves(view game.TableView, playerID string) []Move {
	var hand []deck.Card
	for _, seat := range view.Seats {
		if seat.PlayerID == playerID {
			hand = seat.Hand
			break
		}
	}
	if len(hand) == 0 || view.DiscardTop == nil {
		return nil
	}

	for i, c := range hand {
		if !game.CardLegal(f.Rules, c, *view.DiscardTop) {
			continue
		}
		if len(hand) == 1 && c.Kind != deck.Number {
			continue
		}

		mv := Move{Command: protocol.Play, CardIndex: i}
		if c.IsWild() {
			mv.Color = f.dominantColor(hand, i)
		}

		moves := []Move{mv}
		if len(hand) == 2 {
			moves = append(moves, Move{Command: protocol.CallUno})
		}
		return moves
	}

	return []Move{{Command: protocol.Draw}}
}

// dominantColor picks the colour the bot holds most of, excluding the card
// about to be played
func (f FirstLegal) dominantColor(hand []deck.Card, playedIdx int) deck.Color {
	counts := map[deck.Color]int{}
	for i, c := range hand {
		if i == playedIdx || c.Color == deck.NoColor {
			continue
		}
		counts[c.Color]++
	}

	colors := f.Rules.Colors
	if len(colors) == 0 {
		colors = deck.DefaultColors()
	}

	best := colors[0]
	for _, color := range colors {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return best
}
