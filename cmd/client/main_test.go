package main

import (
	"io"
	"testing"

	"github.com/EMMA019/black-jackgames/internal/ui"
	"github.com/EMMA019/black-jackgames/internal/view"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

// The client loop renders snapshots while the prompt goroutine prints the
// table, so the targets must tolerate concurrent access.
func TestTable_ConcurrentRenderAndPrint(t *testing.T) {
	tbl := newTable()
	renderer := view.NewRenderer(tbl.registry(), nil)
	snap := &types.Snapshot{
		Phase:       types.PhasePlayerTurn,
		CanHitStand: true,
		Dealer: types.Participant{
			Name:  "Dealer",
			Hand:  []types.Card{{Suit: types.SuitHidden, Rank: types.SuitHidden}, {Suit: "Hearts", Rank: "King"}},
			Score: 10,
		},
		Player: types.PlayerState{
			Participant: types.Participant{
				Name:  "Player",
				Hand:  []types.Card{{Suit: "Spades", Rank: "Ace"}, {Suit: "Clubs", Rank: "9"}},
				Score: 20,
			},
			Balance:    900,
			CurrentBet: 100,
		},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			renderer.Apply(snap)
		}
	}()
	for i := 0; i < 200; i++ {
		tbl.print(io.Discard, ui.ScreenGame)
	}
	<-done

	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	if tbl.balance.text != "900" {
		t.Fatalf("want balance 900 rendered, got %q", tbl.balance.text)
	}
	if len(tbl.dealerHand.cards) != 2 || tbl.dealerHand.cards[0] != "[??]" {
		t.Fatalf("dealer hand not rendered, got %v", tbl.dealerHand.cards)
	}
}
