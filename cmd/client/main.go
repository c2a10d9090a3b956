package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/client"
	"github.com/EMMA019/black-jackgames/internal/config"
	"github.com/EMMA019/black-jackgames/internal/ui"
	"github.com/EMMA019/black-jackgames/internal/view"
)

// element is a render target written by the client loop while the prompt
// goroutine reads it, so every access goes through the table lock.
type element struct {
	mu      *sync.Mutex
	text    string
	visible bool
}

func (e *element) SetText(s string) {
	e.mu.Lock()
	e.text = s
	e.mu.Unlock()
}

func (e *element) SetVisible(v bool) {
	e.mu.Lock()
	e.visible = v
	e.mu.Unlock()
}

type hand struct {
	mu    *sync.Mutex
	cards []string
}

func (h *hand) SetCards(cards []string) {
	h.mu.Lock()
	h.cards = append(h.cards[:0], cards...)
	h.mu.Unlock()
}

// table is the full set of render targets for the terminal frontend. One
// lock covers every target so print sees a consistent frame.
type table struct {
	mu sync.Mutex

	status, winner, thinking, actions, nextRound element
	balance, currentBet, notice                  element
	dealerScore, aiScore, playerScore            element
	dealerHand, aiHand, playerHand               hand
}

func newTable() *table {
	t := &table{}
	for _, e := range []*element{
		&t.status, &t.winner, &t.thinking, &t.actions, &t.nextRound,
		&t.balance, &t.currentBet, &t.notice,
		&t.dealerScore, &t.aiScore, &t.playerScore,
	} {
		e.mu = &t.mu
	}
	for _, h := range []*hand{&t.dealerHand, &t.aiHand, &t.playerHand} {
		h.mu = &t.mu
	}
	return t
}

func (t *table) registry() *view.Registry {
	reg := view.NewRegistry()
	for _, screen := range view.ScreenAll {
		reg.Bind(screen, view.FieldStatus, &t.status)
		reg.Bind(screen, view.FieldNextRound, &t.nextRound)
		reg.Bind(screen, view.FieldBalance, &t.balance)
		reg.Bind(screen, view.FieldCurrentBet, &t.currentBet)
		reg.Bind(screen, view.FieldNotice, &t.notice)
	}
	reg.Bind(ui.ScreenGame, view.FieldWinner, &t.winner)
	reg.Bind(ui.ScreenGame, view.FieldThinking, &t.thinking)
	reg.Bind(ui.ScreenGame, view.FieldActions, &t.actions)
	reg.Bind(ui.ScreenGame, view.FieldDealerScore, &t.dealerScore)
	reg.Bind(ui.ScreenGame, view.FieldAIScore, &t.aiScore)
	reg.Bind(ui.ScreenGame, view.FieldPlayerScore, &t.playerScore)
	reg.BindHand(view.HandDealer, &t.dealerHand)
	reg.BindHand(view.HandAI, &t.aiHand)
	reg.BindHand(view.HandPlayer, &t.playerHand)
	return reg
}

func (t *table) print(w io.Writer, screen ui.Screen) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "== %s ==\n", screen)
	fmt.Fprintln(w, t.status.text)
	if t.notice.visible {
		fmt.Fprintf(w, "!! %s\n", t.notice.text)
	}
	if screen == ui.ScreenGame {
		fmt.Fprintf(w, "Dealer (%s): %s\n", t.dealerScore.text, strings.Join(t.dealerHand.cards, " "))
		fmt.Fprintf(w, "AI     (%s): %s\n", t.aiScore.text, strings.Join(t.aiHand.cards, " "))
		fmt.Fprintf(w, "You    (%s): %s\n", t.playerScore.text, strings.Join(t.playerHand.cards, " "))
		if t.winner.visible {
			fmt.Fprintf(w, "*** %s ***\n", t.winner.text)
		}
		if t.thinking.visible {
			fmt.Fprintln(w, t.thinking.text)
		}
	}
	fmt.Fprintf(w, "Balance: %s  Bet: %s\n", t.balance.text, t.currentBet.text)
	if t.nextRound.visible {
		fmt.Fprintf(w, "[%s]  ", t.nextRound.text)
	}
	if t.actions.visible {
		fmt.Fprint(w, "[hit] [stand]")
	}
	fmt.Fprintln(w)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := zap.NewNop() // keep the terminal clean; set LOG_LEVEL via server

	t := newTable()
	renderer := view.NewRenderer(t.registry(), logger)
	c := client.New(cfg.ServerURL, renderer, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := c.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
	}()

	fmt.Println("Commands: bet <amount> [easy|medium|hard], hit, stand, show, quit")
	scanner := bufio.NewScanner(os.Stdin)
	difficulty := "MEDIUM"
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			t.print(os.Stdout, c.State().Screen)
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "show":
			t.print(os.Stdout, c.State().Screen)
		case "hit":
			c.Hit()
		case "stand":
			c.Stand()
		case "bet", "deal":
			amount := 0
			if len(fields) > 1 {
				amount, _ = strconv.Atoi(fields[1])
			}
			if len(fields) > 2 {
				difficulty = strings.ToUpper(fields[2])
			}
			if c.State().Mode == ui.ModeRestart {
				fmt.Print("Start a new game? Your balance will be reset. [y/N] ")
				if !scanner.Scan() || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(scanner.Text())), "y") {
					continue
				}
			}
			c.SubmitBet(amount, difficulty)
		default:
			fmt.Println("unknown command")
		}
	}
}
