package server

import (
	"time"

	"github.com/fusiongabin/uno-server/game"
)

// Config is the process configuration, decoded from the environment
type Config struct {
	Addr string `env:"UNO_ADDR,default=:8000"`

	// MultiRoom supports independent tables; when false every connection
	// lands at the single global table
	MultiRoom bool `env:"UNO_MULTI_ROOM,default=false"`

	MinPlayers         int  `env:"UNO_MIN_PLAYERS,default=2"`
	InitialHandSize    int  `env:"UNO_HAND_SIZE,default=7"`
	HandCeiling        int  `env:"UNO_HAND_CEILING,default=35"`
	WithDrawOne        bool `env:"UNO_WITH_DRAW_ONE,default=false"`
	FreshHandForJoiner bool `env:"UNO_FRESH_HAND_FOR_JOINER,default=true"`
	StackSameKindOnly  bool `env:"UNO_STACK_SAME_KIND_ONLY,default=false"`

	BotCount    int           `env:"UNO_BOTS,default=0"`
	BotInterval time.Duration `env:"UNO_BOT_INTERVAL,default=2s"`
}

// GameConfig maps the environment knobs onto a table's house rules
func (c Config) GameConfig() game.Config {
	return game.Config{
		MinPlayers:         c.MinPlayers,
		InitialHandSize:    c.InitialHandSize,
		HandCeiling:        c.HandCeiling,
		WithDrawOne:        c.WithDrawOne,
		FreshHandForJoiner: c.FreshHandForJoiner,
		StackSameKindOnly:  c.StackSameKindOnly,
	}
}
