package deck

import (
	"math/rand"
)

// Deck represents a pile of cards, dealt from the tail
type Deck []Card

// Options configures the composition of a built deck
type Options struct {
	// Colors is the set of real colours to build. Defaults to the four
	// standard colours when empty.
	Colors []Color
	// WithDrawOne includes two draw-one cards per colour. Some variants
	// use draw-two only.
	WithDrawOne bool
}

// DefaultColors is the standard four-colour set
func DefaultColors() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

// Build enumerates a full deck for the given options. Per colour: one 0,
// two each of 1-9, two skips, two reverses, two draw-twos and, when
// configured, two draw-ones. Four wilds and four wild-draw-fours are
// colourless.
func Build(opts Options) Deck {
	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultColors()
	}

	cards := Deck{}
	for _, color := range colors {
		cards = append(cards, NewCard(Number, color, 0))
		for n := 1; n <= 9; n++ {
			cards = append(cards, NewCard(Number, color, n))
			cards = append(cards, NewCard(Number, color, n))
		}
		for i := 0; i < 2; i++ {
			cards = append(cards, NewCard(Skip, color, 0))
			cards = append(cards, NewCard(Reverse, color, 0))
			cards = append(cards, NewCard(DrawTwo, color, 0))
			if opts.WithDrawOne {
				cards = append(cards, NewCard(DrawOne, color, 0))
			}
		}
	}

	for i := 0; i < 4; i++ {
		cards = append(cards, NewCard(Wild, NoColor, 0))
		cards = append(cards, NewCard(WildDrawFour, NoColor, 0))
	}

	return cards
}

// Shuffle shuffles the deck in place with a Fisher-Yates pass, producing
// each permutation with equal probability
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals up to n cards from the tail of the deck. Callers must
// tolerate receiving fewer cards than asked for.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	start := len(*d) - n
	dealt := (*d)[start:]
	*d = (*d)[:start]
	return dealt
}
