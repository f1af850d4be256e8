package game

import "errors"

// Every rule error is a recoverable, player-visible rejection of a single
// command. They are reported to the acting connection only and never leave
// the table in a half-mutated state.
var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidCardIndex   = errors.New("card index out of range")
	ErrIllegalPlay        = errors.New("card does not match the discard top")
	ErrCannotEndOnSpecial = errors.New("cannot win on a non-number card")
	ErrColorRequired      = errors.New("a colour must be chosen for a wild card")
	ErrCannotCallUno      = errors.New("uno can only be called on exactly one card")
	ErrInvalidCounter     = errors.New("target is not exposed to a counter-uno")
	ErrInvalidTarget      = errors.New("no such player")
	ErrUnknownPlayer      = errors.New("player is not seated at this table")
)
