package game

// nextSeat computes the seat index reached by advancing step hops from the
// current seat in the table's direction. Only non-spectator seats consume a
// hop; spectators are passed straight through. With no active seats the
// cursor stays put.
func (t *Table) nextSeat(step int) int {
	if t.ActiveSeats() == 0 {
		return t.CurrentSeat
	}
	idx := t.CurrentSeat
	for step > 0 {
		idx = (idx + t.Direction + len(t.Seats)) % len(t.Seats)
		if !t.Seats[idx].Spectator {
			step--
		}
	}
	return idx
}

// advance moves the turn cursor. A reverse played in the same resolution
// must flip Direction before this is called, so the flip decides who plays
// next rather than who just played.
func (t *Table) advance(step int) {
	t.CurrentSeat = t.nextSeat(step)
}
