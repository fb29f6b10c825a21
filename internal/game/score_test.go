package game

import "testing"

func scoringPlayers() []*Player {
	return []*Player{
		{ID: "0", Name: "Host", IsHost: true},
		{ID: "1", Name: "Ann"},
		{ID: "2", Name: "Ben"},
		{ID: "3", Name: "Cal"},
	}
}

func TestScoreRound_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		want     int
	}{
		{"dead center", 0.50, 4},
		{"inner band edge", 0.575, 4},
		{"middle tier", 0.58, 3},
		{"outer tier", 0.63, 2},
		{"just outside band", 0.66, 0},
		{"outside band", 0.80, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := scoringPlayers()
			guesses := []Guess{{PlayerID: "1", Position: tt.position}}
			awards := ScoreRound(0.50, "0", players, guesses)
			if awards["1"] != tt.want {
				t.Errorf("guess at %v: got %d points, want %d", tt.position, awards["1"], tt.want)
			}
		})
	}
}

func TestScoreRound_ActivePlayerBonus(t *testing.T) {
	players := scoringPlayers()
	guesses := []Guess{
		{PlayerID: "1", Position: 0.50}, // 4 points
		{PlayerID: "2", Position: 0.90}, // 0 points
		{PlayerID: "3", Position: 0.63}, // 2 points
	}

	awards := ScoreRound(0.50, "0", players, guesses)

	if awards["1"] != 4 || awards["2"] != 0 || awards["3"] != 2 {
		t.Errorf("guesser awards = %d/%d/%d, want 4/0/2", awards["1"], awards["2"], awards["3"])
	}
	// Two guessers scored above zero, so the clue giver earns 2.
	if awards["0"] != 2 {
		t.Errorf("active player bonus = %d, want 2", awards["0"])
	}
}

func TestScoreRound_MissingGuessScoresZero(t *testing.T) {
	players := scoringPlayers()
	awards := ScoreRound(0.50, "0", players, nil)

	for _, id := range []string{"0", "1", "2", "3"} {
		if awards[id] != 0 {
			t.Errorf("player %s = %d points with no guesses, want 0", id, awards[id])
		}
	}
}

// The guessing dial is drawn as a circle, but scoring distance is
// linear. A guess just across the wrap boundary scores nothing even
// though it is visually adjacent to the target. Pins the current
// behavior.
func TestScoreRound_NoWraparound(t *testing.T) {
	players := scoringPlayers()
	guesses := []Guess{{PlayerID: "1", Position: 0.97}}

	awards := ScoreRound(0.02, "0", players, guesses)
	if awards["1"] != 0 {
		t.Errorf("wrap-adjacent guess scored %d, want 0", awards["1"])
	}
}
