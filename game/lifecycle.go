package game

import (
	"fmt"

	"github.com/fusiongabin/uno-server/protocol"
)

// sweep runs after every state-changing action. Emptied hands and hands
// over the ceiling both turn their owner into a spectator; once a single
// active seat remains the round restarts with a full re-deal to everyone
// still connected.
func (g *Game) sweep() []Event {
	if g.state != inRound {
		return nil
	}

	events := []Event{}
	for _, p := range g.table.Seats {
		if p.Spectator {
			continue
		}
		if len(p.Hand) == 0 {
			p.Spectator = true
			events = append(events, Event{
				Cmd:      protocol.RoundWon,
				PlayerID: p.ID,
				Message:  fmt.Sprintf("%s wins the round!", p.Name),
			})
			continue
		}
		if len(p.Hand) > g.cfg.HandCeiling {
			p.Spectator = true
			events = append(events, Event{
				Cmd:      protocol.Log,
				PlayerID: p.ID,
				Message:  fmt.Sprintf("%s is out with %d cards", p.Name, len(p.Hand)),
			})
		}
	}

	if g.table.ActiveSeats() > 1 {
		g.table.fixCursor()
		return events
	}

	// Round boundary. Re-deal when enough players remain, otherwise go
	// back to waiting for joiners.
	if len(g.table.Seats) >= g.cfg.MinPlayers {
		events = append(events, g.startRound())
	} else {
		g.state = awaitingPlayers
	}

	return events
}
