package game

import (
	"errors"
	"math/rand"

	"github.com/EMMA019/black-jackgames/pkg/types"
)

var ErrEmptyDeck = errors.New("deck is empty")

var suits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

type Card struct {
	Suit string
	Rank string
}

// Value returns the blackjack value of the card, counting aces high. Ace
// demotion to 1 happens during hand scoring, not here.
func (c Card) Value() int {
	switch c.Rank {
	case "Jack", "Queen", "King":
		return 10
	case "Ace":
		return 11
	default:
		v := 0
		for _, ch := range c.Rank {
			v = v*10 + int(ch-'0')
		}
		return v
	}
}

func (c Card) Wire() types.Card {
	return types.Card{Suit: c.Suit, Rank: c.Rank}
}

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a shuffled 52-card deck. The source is injectable so tests
// can deal deterministically.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for _, s := range suits {
		for _, r := range ranks {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	shuffler := rand.Shuffle
	if d.rng != nil {
		shuffler = d.rng.Shuffle
	}
	shuffler(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

func (d *Deck) Remaining() int { return len(d.cards) }

// Score computes the blackjack score of a hand, demoting aces from 11 to 1
// while the total exceeds 21.
func Score(hand []Card) int {
	score, aces := 0, 0
	for _, c := range hand {
		score += c.Value()
		if c.Rank == "Ace" {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

func IsBust(hand []Card) bool { return Score(hand) > 21 }

func IsBlackjack(hand []Card) bool { return len(hand) == 2 && Score(hand) == 21 }
