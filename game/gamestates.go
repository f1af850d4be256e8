package game

// PlayState represents the lifecycle of a table
// awaitingPlayers -> too few seats for a round (pre game and post teardown)
// inRound -> round in progress
// A restart is not a distinct state: the re-deal completes within the
// command that triggered it.
type PlayState int

const (
	awaitingPlayers PlayState = iota
	inRound
)

func (s PlayState) String() string {
	if s == awaitingPlayers {
		return "awaitingPlayers"
	} else if s == inRound {
		return "inRound"
	}
	return ""
}
