package server

import (
	"fmt"

	"github.com/fusiongabin/uno-server/game"
	"github.com/fusiongabin/uno-server/protocol"
	"github.com/sirupsen/logrus"
)

// client is one attached observer: a websocket connection or a bot seat
type client interface {
	Send(msg OutboundMessage)
	Close()
}

// registration carries a joining client into the room goroutine. attach is
// invoked on that goroutine once the game has seated the player, so the
// client learns its player id before any pump starts.
type registration struct {
	name   string
	human  bool
	attach func(playerID string) client
}

// Room couples one Game to its connected clients. A single Listen goroutine
// is the only writer of the game state: every command, bot tick and
// disconnect funnels through the same channels and runs to completion
// before the next is accepted.
type Room struct {
	id       string
	game     *game.Game
	clients  map[string]client
	humans   int
	commands chan InboundMessage
	register chan registration
	done     chan struct{}
	onEmpty  func(roomID string)
	log      *logrus.Entry
}

// NewRoom constructs a room around a fresh game. onEmpty is called when the
// last human disconnects so the store can drop the room.
func NewRoom(id string, cfg game.Config, logger *logrus.Logger, onEmpty func(string)) *Room {
	if onEmpty == nil {
		onEmpty = func(string) {}
	}
	return &Room{
		id:       id,
		game:     game.New(cfg),
		clients:  map[string]client{},
		commands: make(chan InboundMessage),
		register: make(chan registration),
		done:     make(chan struct{}),
		onEmpty:  onEmpty,
		log:      logger.WithField("room", id),
	}
}

// GameConfig returns the table's house rules with defaults applied
func (r *Room) GameConfig() game.Config {
	return r.game.Config()
}

// Listen runs the room's command loop. It returns when the last human
// leaves.
func (r *Room) Listen() {
	for {
		select {
		case reg := <-r.register:
			r.seat(reg)

		case msg := <-r.commands:
			r.apply(msg)

		case <-r.done:
			return
		}
	}
}

// Submit queues a command for the room. Safe to call from any goroutine;
// a no-op once the room has shut down.
func (r *Room) Submit(msg InboundMessage) {
	select {
	case r.commands <- msg:
	case <-r.done:
	}
}

func (r *Room) enqueue(reg registration) {
	select {
	case r.register <- reg:
	case <-r.done:
	}
}

func (r *Room) seat(reg registration) {
	playerID, events, err := r.game.Join(reg.name)
	if err != nil {
		r.log.WithError(err).Warn("could not seat player")
		return
	}

	c := reg.attach(playerID)
	r.clients[playerID] = c
	if reg.human {
		r.humans++
	}

	c.Send(OutboundMessage{
		Command:  protocol.Join,
		PlayerID: playerID,
		Info:     &protocol.PlayerInfo{PlayerID: playerID, Name: reg.name},
	})
	r.broadcast(events)

	r.log.WithFields(logrus.Fields{
		"player": playerID,
		"name":   reg.name,
		"bot":    !reg.human,
	}).Info("player seated")
}

func (r *Room) apply(msg InboundMessage) {
	var (
		events []game.Event
		err    error
	)

	switch msg.Command {
	case protocol.Play:
		events, err = r.game.Play(msg.PlayerID, msg.CardIndex, msg.Color)
	case protocol.Draw:
		events, err = r.game.Draw(msg.PlayerID)
	case protocol.CallUno:
		events, err = r.game.CallUno(msg.PlayerID)
	case protocol.CounterUno:
		events, err = r.game.CounterUno(msg.PlayerID, msg.TargetID)
	case protocol.Leave:
		r.removePlayer(msg.PlayerID)
		return
	default:
		err = fmt.Errorf("unexpected command %s", msg.Command)
	}

	if err != nil {
		// validation failures go to the acting connection only
		r.sendError(msg.PlayerID, err)
		return
	}

	r.broadcast(events)
}

func (r *Room) removePlayer(playerID string) {
	c, ok := r.clients[playerID]
	if !ok {
		return
	}
	delete(r.clients, playerID)
	c.Close()
	if r.humans > 0 {
		r.humans--
	}

	events := r.game.Leave(playerID)
	r.log.WithField("player", playerID).Info("player left")

	if r.humans == 0 {
		for id, rest := range r.clients {
			rest.Close()
			delete(r.clients, id)
		}
		close(r.done)
		r.onEmpty(r.id)
		return
	}

	r.broadcast(events)
}

// broadcast fans out the narration feed unredacted, then a per-recipient
// redacted state projection
func (r *Room) broadcast(events []game.Event) {
	for _, ev := range events {
		for _, c := range r.clients {
			c.Send(OutboundMessage{
				Command:  ev.Cmd,
				PlayerID: ev.PlayerID,
				Message:  ev.Message,
			})
		}
	}

	for playerID, c := range r.clients {
		view := r.game.View(playerID)
		c.Send(OutboundMessage{
			Command:  protocol.State,
			PlayerID: playerID,
			State:    &view,
		})
	}
}

func (r *Room) sendError(playerID string, err error) {
	if c, ok := r.clients[playerID]; ok {
		c.Send(OutboundMessage{
			Command:  protocol.Error,
			PlayerID: playerID,
			Error:    err.Error(),
		})
	}
}
