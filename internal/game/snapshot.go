package game

// Snapshot is a full-state view of a session. Clients treat snapshots
// as idempotent replacements, never deltas, so delivering one twice is
// harmless.
//
// Snapshots handed to the transport for a specific player are filtered:
// the target stays hidden from guessers until reveal, the clue is
// hidden while the clue giver is still composing it, and other players'
// guesses only become visible at reveal.
type Snapshot struct {
	ID                string   `json:"id"`
	Players           []Player `json:"players"`
	Phase             Phase    `json:"phase"`
	CurrentRound      int      `json:"currentRound"`
	TotalRounds       int      `json:"totalRounds"`
	ActivePlayerIndex int      `json:"activePlayerIndex"`
	Category          string   `json:"category"`
	Prompt            string   `json:"prompt"`
	Clue              string   `json:"clue,omitempty"`
	Guesses           []Guess  `json:"guesses"`
	TargetPosition    *float64 `json:"targetPosition,omitempty"`
	InputDeadline     int      `json:"inputDeadline"`
	GuessDeadline     int      `json:"guessDeadline"`
	GameOver          bool     `json:"gameOver"`
}
