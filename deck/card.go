package deck

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// Kind represents the kind of an Uno card
type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawOne
	DrawTwo
	Wild
	WildDrawFour
)

var kindNames = []string{"Number", "Skip", "Reverse", "DrawOne", "DrawTwo", "Wild", "WildDrawFour"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Color represents the colour of an Uno card.
// NoColor belongs to the two wild kinds until a colour is chosen.
type Color int

const (
	NoColor Color = iota
	Red
	Green
	Blue
	Yellow
)

var colorNames = []string{"NoColor", "Red", "Green", "Blue", "Yellow"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}

// Card represents a single Uno card. Cards are value objects; the ID exists
// only so clients can reconcile their view and has no gameplay meaning.
type Card struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Color  Color  `json:"color"`
	Number int    `json:"number"`
}

// NewCard constructs a card with a fresh id
func NewCard(kind Kind, color Color, number int) Card {
	return Card{
		ID:     uuid.NewV4().String(),
		Kind:   kind,
		Color:  color,
		Number: number,
	}
}

// IsWild reports whether the card requires a colour choice when played
func (c Card) IsWild() bool {
	return c.Kind == Wild || c.Kind == WildDrawFour
}

func (c Card) String() string {
	if c.Kind == Number {
		return fmt.Sprintf("%s %d", c.Color, c.Number)
	}
	if c.IsWild() && c.Color == NoColor {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s %s", c.Color, c.Kind)
}
