package game

import "github.com/fusiongabin/uno-server/deck"

// SeatView is one seat as a given observer sees it. The literal card list
// appears only on the observer's own seat; everyone else is a count.
type SeatView struct {
	PlayerID    string      `json:"playerID"`
	Name        string      `json:"name"`
	HandSize    int         `json:"handSize"`
	Hand        []deck.Card `json:"hand,omitempty"`
	CalledUno   bool        `json:"calledUno"`
	Spectator   bool        `json:"spectator"`
	CurrentTurn bool        `json:"currentTurn"`
}

// TableView is the complete redacted state sent to one observer
type TableView struct {
	Seats           []SeatView `json:"seats"`
	DiscardTop      *deck.Card `json:"discardTop,omitempty"`
	DrawPileSize    int        `json:"drawPileSize"`
	CurrentPlayerID string     `json:"currentPlayerID,omitempty"`
	Direction       int        `json:"direction"`
	PendingPenalty  int        `json:"pendingPenalty"`
	RoundLive       bool       `json:"roundLive"`
}

// View projects the table for one observer. This is the single place where
// hand redaction happens; every broadcast goes through it.
func (g *Game) View(viewerID string) TableView {
	t := g.table

	view := TableView{
		Seats:          []SeatView{},
		DrawPileSize:   len(t.DrawPile),
		Direction:      t.Direction,
		PendingPenalty: t.PendingPenalty,
		RoundLive:      g.state == inRound,
	}

	if top, ok := t.DiscardTop(); ok {
		topCopy := top
		view.DiscardTop = &topCopy
	}

	current, _ := t.CurrentPlayer()

	for _, p := range t.Seats {
		sv := SeatView{
			PlayerID:    p.ID,
			Name:        p.Name,
			HandSize:    len(p.Hand),
			CalledUno:   p.CalledUno,
			Spectator:   p.Spectator,
			CurrentTurn: current != nil && current.ID == p.ID && !p.Spectator,
		}
		if p.ID == viewerID {
			sv.Hand = append([]deck.Card{}, p.Hand...)
		}
		view.Seats = append(view.Seats, sv)

		if sv.CurrentTurn {
			view.CurrentPlayerID = p.ID
		}
	}

	return view
}
