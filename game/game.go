package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fusiongabin/uno-server/deck"
	"github.com/fusiongabin/uno-server/protocol"
	uuid "github.com/satori/go.uuid"
)

// Event is one entry for the narration feed, broadcast unredacted to every
// seat after a successful command
type Event struct {
	Cmd      protocol.Cmd `json:"command"`
	PlayerID string       `json:"playerID,omitempty"`
	Message  string       `json:"message"`
}

// Game owns one Table and applies validated commands to it. It is not safe
// for concurrent use; callers must serialise access (one goroutine per
// table).
type Game struct {
	cfg   Config
	table *Table
	rng   *rand.Rand
	state PlayState
}

// New constructs a game with the given house rules
func New(cfg Config) *Game {
	return newWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newWithRand(cfg Config, rng *rand.Rand) *Game {
	return &Game{
		cfg:   cfg.withDefaults(),
		table: newTable(),
		rng:   rng,
	}
}

// Table exposes the authoritative state for projections and tests
func (g *Game) Table() *Table {
	return g.table
}

// Config returns the table's house rules
func (g *Game) Config() Config {
	return g.cfg
}

// RoundLive reports whether a round is in progress
func (g *Game) RoundLive() bool {
	return g.state == inRound
}

// Join seats a new player. A round starts once the seated threshold is
// reached; a player joining a live round is dealt in immediately.
func (g *Game) Join(name string) (string, []Event, error) {
	p := &Player{
		ID:   uuid.NewV4().String(),
		Name: name,
	}

	if g.state == inRound {
		size := g.cfg.InitialHandSize
		if !g.cfg.FreshHandForJoiner {
			if smallest := g.table.smallestActiveHand(); smallest > 0 {
				size = smallest
			}
		}
		p.Hand = g.table.drawWithReshuffle(size, g.rng)
	}

	g.table.Seats = append(g.table.Seats, p)

	events := []Event{{
		Cmd:      protocol.NewJoiner,
		PlayerID: p.ID,
		Message:  fmt.Sprintf("%s has joined the game!", p.Name),
	}}

	if g.state != inRound && g.table.ActiveSeats() >= g.cfg.MinPlayers {
		events = append(events, g.startRound())
	}

	return p.ID, events, nil
}

// Leave removes a seat, implicitly on disconnection. The departed player's
// cards leave the game with them; the next round's deck is rebuilt in full.
func (g *Game) Leave(playerID string) []Event {
	idx := -1
	for i, p := range g.table.Seats {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	departed := g.table.Seats[idx]
	g.table.Seats = append(g.table.Seats[:idx], g.table.Seats[idx+1:]...)

	if len(g.table.Seats) == 0 {
		g.state = awaitingPlayers
		g.table = newTable()
		return nil
	}

	if idx < g.table.CurrentSeat {
		g.table.CurrentSeat--
	}
	g.table.fixCursor()

	events := []Event{{
		Cmd:      protocol.Leave,
		PlayerID: departed.ID,
		Message:  fmt.Sprintf("%s has left the game", departed.Name),
	}}

	return append(events, g.sweep()...)
}

// startRound rebuilds the deck and deals every seat a fresh hand. The
// discard is seeded with a number card so the first turn carries no effect.
func (g *Game) startRound() Event {
	t := g.table

	t.DrawPile = deck.Build(deck.Options{
		Colors:      g.cfg.Colors,
		WithDrawOne: g.cfg.WithDrawOne,
	})
	t.DrawPile.Shuffle(g.rng)
	t.DiscardPile = []deck.Card{}
	t.CurrentSeat = 0
	t.Direction = 1
	t.PendingPenalty = 0

	for _, p := range t.Seats {
		p.Hand = t.DrawPile.Deal(g.cfg.InitialHandSize)
		p.CalledUno = false
		p.Spectator = false
	}

	t.seedDiscard(g.rng)
	g.state = inRound

	return Event{
		Cmd:     protocol.Restart,
		Message: fmt.Sprintf("new round: %d cards each", g.cfg.InitialHandSize),
	}
}
