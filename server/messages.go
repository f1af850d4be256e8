package server

import (
	"github.com/fusiongabin/uno-server/deck"
	"github.com/fusiongabin/uno-server/game"
	"github.com/fusiongabin/uno-server/protocol"
)

// InboundMessage is a command from a client to a room. PlayerID is stamped
// server-side from the connection; anything a client puts there is ignored.
type InboundMessage struct {
	PlayerID  string       `json:"playerID"`
	Command   protocol.Cmd `json:"command"`
	CardIndex int          `json:"cardIndex"`
	Color     deck.Color   `json:"color"`
	TargetID  string       `json:"targetID"`
}

// OutboundMessage is a message from a room to one client. Info rides along
// on the join ack only.
type OutboundMessage struct {
	Command  protocol.Cmd         `json:"command"`
	PlayerID string               `json:"playerID,omitempty"`
	Message  string               `json:"message,omitempty"`
	Info     *protocol.PlayerInfo `json:"info,omitempty"`
	State    *game.TableView      `json:"state,omitempty"`
	Error    string               `json:"error,omitempty"`
}
