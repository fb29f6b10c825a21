package game

// Player is a participant in one session. IDs are assigned in join
// order and are only meaningful within that session.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Score  int    `json:"score"`
	IsHost bool   `json:"isHost"`
}

// Guess is one player's answer for the current round.
type Guess struct {
	PlayerID string  `json:"playerId"`
	Position float64 `json:"position"`
}
