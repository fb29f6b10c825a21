package game

import "math"

// ScoringBand is the tolerance width around the target, as a fraction
// of the scale. Guesses are bucketed into point tiers within it.
const ScoringBand = 0.15

// ScoreRound computes the points awarded for one round. Every player
// gets an entry, zero included. Guessers are scored by linear distance
// to the target; the scale does not wrap even though the dial is drawn
// as a circle. The clue giver earns one point per guesser who scored.
func ScoreRound(target float64, activePlayerID string, players []*Player, guesses []Guess) map[string]int {
	byPlayer := make(map[string]float64, len(guesses))
	for _, g := range guesses {
		byPlayer[g.PlayerID] = g.Position
	}

	awards := make(map[string]int, len(players))
	hits := 0
	for _, p := range players {
		if p.ID == activePlayerID {
			continue
		}
		awards[p.ID] = 0
		pos, ok := byPlayer[p.ID]
		if !ok {
			continue
		}
		points := scoreDistance(math.Abs(pos - target))
		awards[p.ID] = points
		if points > 0 {
			hits++
		}
	}
	awards[activePlayerID] = hits
	return awards
}

func scoreDistance(d float64) int {
	switch {
	case d <= ScoringBand/2:
		return 4
	case d <= ScoringBand*0.75:
		return 3
	case d <= ScoringBand:
		return 2
	default:
		return 0
	}
}
