package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd represents a command crossing the player/server boundary
type Cmd int

const (
	Null Cmd = iota
	Join
	NewJoiner
	Play
	Draw
	CallUno
	CounterUno
	Leave
	// server -> player only
	State
	Log
	Error
	Restart
	RoundWon
)

var CmdNames = map[Cmd]string{
	Null:       "Null",
	Join:       "Join",
	NewJoiner:  "NewJoiner",
	Play:       "Play",
	Draw:       "Draw",
	CallUno:    "CallUno",
	CounterUno: "CounterUno",
	Leave:      "Leave",
	State:      "State",
	Log:        "Log",
	Error:      "Error",
	Restart:    "Restart",
	RoundWon:   "RoundWon",
}

var NameToCmd = map[string]Cmd{
	"Null":       Null,
	"Join":       Join,
	"NewJoiner":  NewJoiner,
	"Play":       Play,
	"Draw":       Draw,
	"CallUno":    CallUno,
	"CounterUno": CounterUno,
	"Leave":      Leave,
	"State":      State,
	"Log":        Log,
	"Error":      Error,
	"Restart":    Restart,
	"RoundWon":   RoundWon,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalJSON serialises a Cmd by name so clients never deal in enum values
func (c Cmd) MarshalJSON() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return json.Marshal(name)
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}
