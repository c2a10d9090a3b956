package game

import (
	"math/rand"
	"testing"
)

func TestCardValue(t *testing.T) {
	cases := []struct {
		rank string
		want int
	}{
		{"2", 2},
		{"9", 9},
		{"10", 10},
		{"Jack", 10},
		{"Queen", 10},
		{"King", 10},
		{"Ace", 11},
	}
	for _, tc := range cases {
		c := Card{Suit: "Hearts", Rank: tc.rank}
		if got := c.Value(); got != tc.want {
			t.Fatalf("Value(%s): got %d, want %d", tc.rank, got, tc.want)
		}
	}
}

func TestScore_AceDemotion(t *testing.T) {
	cases := []struct {
		name string
		hand []Card
		want int
	}{
		{
			name: "ace counts high when safe",
			hand: []Card{{Rank: "Ace"}, {Rank: "7"}},
			want: 18,
		},
		{
			name: "ace demotes past 21",
			hand: []Card{{Rank: "Ace"}, {Rank: "9"}, {Rank: "5"}},
			want: 15,
		},
		{
			name: "two aces demote one",
			hand: []Card{{Rank: "Ace"}, {Rank: "Ace"}, {Rank: "9"}},
			want: 21,
		},
		{
			name: "all aces demote as needed",
			hand: []Card{{Rank: "Ace"}, {Rank: "Ace"}, {Rank: "Ace"}, {Rank: "Ace"}},
			want: 14,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.hand); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBlackjackAndBust(t *testing.T) {
	bj := []Card{{Rank: "Ace"}, {Rank: "King"}}
	if !IsBlackjack(bj) {
		t.Fatalf("ace+king should be blackjack")
	}
	three21 := []Card{{Rank: "7"}, {Rank: "7"}, {Rank: "7"}}
	if IsBlackjack(three21) {
		t.Fatalf("21 in three cards is not blackjack")
	}
	bust := []Card{{Rank: "King"}, {Rank: "Queen"}, {Rank: "5"}}
	if !IsBust(bust) {
		t.Fatalf("25 should be bust")
	}
}

func TestDeck_DealsAllFiftyTwoOnce(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	seen := map[Card]bool{}
	for i := 0; i < 52; i++ {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal %d: %v", i, err)
		}
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
	if _, err := d.Deal(); err == nil {
		t.Fatalf("expected error dealing from empty deck")
	}
	if d.Remaining() != 0 {
		t.Fatalf("expected empty deck, %d remain", d.Remaining())
	}
}
