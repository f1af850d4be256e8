package server

import (
	"time"

	"github.com/fusiongabin/uno-server/bot"
	"github.com/fusiongabin/uno-server/game"
	"github.com/fusiongabin/uno-server/protocol"
)

// botSeat drives a scripted player. It receives the same redacted
// broadcasts as a websocket client, and on a fixed cadence submits its
// policy's moves through the room's normal command channel; the rule engine
// grants it no special authority.
type botSeat struct {
	playerID string
	policy   bot.Policy
	room     *Room
	interval time.Duration
	views    chan game.TableView
	stop     chan struct{}
}

// AddBot seats a scripted player in the room
func (r *Room) AddBot(name string, policy bot.Policy, interval time.Duration) {
	r.enqueue(registration{
		name:  name,
		human: false,
		attach: func(playerID string) client {
			b := &botSeat{
				playerID: playerID,
				policy:   policy,
				room:     r,
				interval: interval,
				views:    make(chan game.TableView, 1),
				stop:     make(chan struct{}),
			}
			go b.run()
			return b
		},
	})
}

// Send keeps only the latest state snapshot; narration is of no use to a bot
func (b *botSeat) Send(msg OutboundMessage) {
	if msg.Command != protocol.State || msg.State == nil {
		return
	}
	select {
	case <-b.views:
	default:
	}
	b.views <- *msg.State
}

func (b *botSeat) Close() {
	select {
	case <-b.stop:
	default:
		close(b.stop)
	}
}

func (b *botSeat) run() {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.act()
		case <-b.stop:
			return
		}
	}
}

func (b *botSeat) act() {
	var view game.TableView
	select {
	case view = <-b.views:
	default:
		return
	}

	if view.CurrentPlayerID != b.playerID {
		return
	}

	for _, mv := range b.policy.ChooseMoves(view, b.playerID) {
		b.room.Submit(InboundMessage{
			PlayerID:  b.playerID,
			Command:   mv.Command,
			CardIndex: mv.CardIndex,
			Color:     mv.Color,
		})
	}
}
