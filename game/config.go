package game

import "github.com/fusiongabin/uno-server/deck"

const (
	defaultHandCeiling     = 35
	defaultInitialHandSize = 7
	defaultMinPlayers      = 2
)

// Config holds the house rules for a table. The zero value is usable; every
// field falls back to the standard game via withDefaults.
type Config struct {
	// Colors is the colour set used to build the deck
	Colors []deck.Color

	// WithDrawOne includes draw-one as a distinct kind. Variants that omit
	// it play with draw-two only.
	WithDrawOne bool

	// HandCeiling is the hand size at which a player is eliminated, guarding
	// against runaway penalty accumulation
	HandCeiling int

	// InitialHandSize is the number of cards dealt at a round boundary
	InitialHandSize int

	// MinPlayers is the seated-player threshold that starts a round
	MinPlayers int

	// FreshHandForJoiner deals a full InitialHandSize hand to a player who
	// joins mid-round. When false the joiner receives a hand matching the
	// smallest active hand instead.
	FreshHandForJoiner bool

	// StackSameKindOnly rejects a draw-one/draw-two played onto a resolved
	// wild when its only claim to legality is the wild's chosen colour.
	// Variants disagree on this; the default treats a resolved colour like
	// a real colour match.
	StackSameKindOnly bool
}

func (c Config) withDefaults() Config {
	if len(c.Colors) == 0 {
		c.Colors = deck.DefaultColors()
	}
	if c.HandCeiling == 0 {
		c.HandCeiling = defaultHandCeiling
	}
	if c.InitialHandSize == 0 {
		c.InitialHandSize = defaultInitialHandSize
	}
	if c.MinPlayers == 0 {
		c.MinPlayers = defaultMinPlayers
	}
	return c
}
