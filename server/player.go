package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fusiongabin/uno-server/protocol"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// WSPlayer binds one websocket connection to one seat in a room
type WSPlayer struct {
	id        string
	name      string
	conn      *websocket.Conn
	send      chan []byte
	room      *Room
	log       *logrus.Entry
	closeOnce sync.Once
}

func newWSPlayer(name string, conn *websocket.Conn, room *Room, logger *logrus.Logger) *WSPlayer {
	return &WSPlayer{
		name: name,
		conn: conn,
		send: make(chan []byte, 32),
		room: room,
		log:  logger.WithField("room", room.id),
	}
}

// JoinRoom registers the player with the room. The pumps start only after
// the room has seated the player and assigned an id.
func (p *WSPlayer) JoinRoom() {
	p.room.enqueue(registration{
		name:  p.name,
		human: true,
		attach: func(playerID string) client {
			p.id = playerID
			p.log = p.log.WithField("player", playerID)
			go p.writePump()
			go p.readPump()
			return p
		},
	})
}

// Send queues a message for the write pump. A client too slow to drain its
// buffer loses the message; the next broadcast carries fresh state anyway.
func (p *WSPlayer) Send(msg OutboundMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		p.log.WithError(err).Error("could not marshal outbound message")
		return
	}

	select {
	case p.send <- data:
	default:
		p.log.Warn("dropping message to slow client")
	}
}

// Close shuts the write pump down, which closes the connection
func (p *WSPlayer) Close() {
	p.closeOnce.Do(func() {
		close(p.send)
	})
}

func (p *WSPlayer) readPump() {
	defer func() {
		p.room.Submit(InboundMessage{PlayerID: p.id, Command: protocol.Leave})
	}()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.Send(OutboundMessage{Command: protocol.Error, Error: "malformed message"})
			continue
		}

		// identity comes from the connection, never from the payload
		msg.PlayerID = p.id
		p.room.Submit(msg)
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
