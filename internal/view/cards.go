package view

import "github.com/EMMA019/black-jackgames/pkg/types"

var suitSymbols = map[string]string{
	"Hearts":   "♥",
	"Diamonds": "♦",
	"Clubs":    "♣",
	"Spades":   "♠",
}

var rankShort = map[string]string{
	"Ace":   "A",
	"King":  "K",
	"Queen": "Q",
	"Jack":  "J",
}

// Glyph renders one card as a short display string. A hidden card renders
// blank-faced; its rank is never shown or inspected.
func Glyph(c types.Card) string {
	if c.Suit == types.SuitHidden {
		return "[??]"
	}
	rank := c.Rank
	if short, ok := rankShort[rank]; ok {
		rank = short
	}
	sym, ok := suitSymbols[c.Suit]
	if !ok {
		sym = "?"
	}
	return "[" + rank + sym + "]"
}

// Glyphs renders a whole hand in deal order.
func Glyphs(hand []types.Card) []string {
	out := make([]string, 0, len(hand))
	for _, c := range hand {
		out = append(out, Glyph(c))
	}
	return out
}
