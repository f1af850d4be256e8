package protocol

// PlayerInfo identifies a seated player to other components
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}
