package game

import (
	"fmt"

	"github.com/fusiongabin/uno-server/protocol"
)

// CallUno declares UNO for a player holding exactly one card. The
// declaration protects them until their hand size changes.
func (g *Game) CallUno(playerID string) ([]Event, error) {
	p, ok := g.table.Seat(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if len(p.Hand) != 1 {
		return nil, ErrCannotCallUno
	}

	p.CalledUno = true
	return []Event{{
		Cmd:      protocol.CallUno,
		PlayerID: p.ID,
		Message:  fmt.Sprintf("%s calls UNO!", p.Name),
	}}, nil
}

// CounterUno lets any player penalise a lapse: a target caught on one card
// without a declaration draws two, out-of-band of any pending penalty.
// Not gated by whose turn it is.
func (g *Game) CounterUno(accuserID, targetID string) ([]Event, error) {
	accuser, ok := g.table.Seat(accuserID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	target, ok := g.table.Seat(targetID)
	if !ok {
		return nil, ErrInvalidTarget
	}
	if len(target.Hand) != 1 || target.CalledUno {
		return nil, ErrInvalidCounter
	}

	drawn := g.table.drawWithReshuffle(2, g.rng)
	target.Hand = append(target.Hand, drawn...)

	events := []Event{{
		Cmd:      protocol.CounterUno,
		PlayerID: accuser.ID,
		Message:  fmt.Sprintf("%s caught %s without a call: +%d cards", accuser.Name, target.Name, len(drawn)),
	}}

	return append(events, g.sweep()...), nil
}
