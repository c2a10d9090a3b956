package game

import "testing"

func TestParseDifficulty(t *testing.T) {
	for _, raw := range []string{"easy", "MEDIUM", "Hard"} {
		if _, ok := ParseDifficulty(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Fatalf("expected unknown difficulty to fail")
	}
}

func hand(ranks ...string) []Card {
	out := make([]Card, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, Card{Suit: "Clubs", Rank: r})
	}
	return out
}

func TestDecideAction(t *testing.T) {
	cases := []struct {
		name       string
		difficulty Difficulty
		hand       []Card
		up         Card
		want       string
	}{
		{"easy hits below 17", DifficultyEasy, hand("10", "6"), Card{Rank: "2"}, "hit"},
		{"easy stands at 17", DifficultyEasy, hand("10", "7"), Card{Rank: "Ace"}, "stand"},

		{"medium always hits below 12", DifficultyMedium, hand("5", "6"), Card{Rank: "2"}, "hit"},
		{"medium stands at 17", DifficultyMedium, hand("10", "7"), Card{Rank: "Ace"}, "stand"},
		{"medium hits 14 vs strong dealer", DifficultyMedium, hand("10", "4"), Card{Rank: "9"}, "hit"},
		{"medium hits 14 vs dealer ace", DifficultyMedium, hand("10", "4"), Card{Rank: "Ace"}, "hit"},
		{"medium stands 14 vs weak dealer", DifficultyMedium, hand("10", "4"), Card{Rank: "5"}, "stand"},

		{"hard hits at 11", DifficultyHard, hand("5", "6"), Card{Rank: "10"}, "hit"},
		{"hard stands 12 vs dealer 5", DifficultyHard, hand("10", "2"), Card{Rank: "5"}, "stand"},
		{"hard hits 12 vs dealer 2", DifficultyHard, hand("10", "2"), Card{Rank: "2"}, "hit"},
		{"hard stands 15 vs dealer 4", DifficultyHard, hand("10", "5"), Card{Rank: "4"}, "stand"},
		{"hard hits 15 vs dealer 10", DifficultyHard, hand("10", "5"), Card{Rank: "King"}, "hit"},
		{"hard stands at 17", DifficultyHard, hand("10", "7"), Card{Rank: "Ace"}, "stand"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecideAction(tc.difficulty, tc.hand, tc.up)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
