package game

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty accepts the wire spelling case-insensitively. The second
// return reports whether the input was a known level.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToUpper(s)) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// DecideAction picks hit or stand for the AI seat given its hand and the
// dealer's visible up-card.
func DecideAction(difficulty Difficulty, hand []Card, dealerUpCard Card) string {
	score := Score(hand)
	dealer := dealerUpCard.Value()

	switch difficulty {
	case DifficultyEasy:
		if score < 17 {
			return "hit"
		}
		return "stand"

	case DifficultyMedium:
		if score < 12 {
			return "hit"
		}
		if score >= 17 {
			return "stand"
		}
		// 12..16: press when the dealer shows strength.
		if dealer >= 7 || dealer == 11 {
			return "hit"
		}
		return "stand"

	case DifficultyHard:
		if score <= 11 {
			return "hit"
		}
		if score == 12 {
			if dealer >= 4 && dealer <= 6 {
				return "stand"
			}
			return "hit"
		}
		if score >= 13 && score <= 16 {
			if dealer >= 2 && dealer <= 6 {
				return "stand"
			}
			return "hit"
		}
		return "stand"
	}

	return "stand"
}
