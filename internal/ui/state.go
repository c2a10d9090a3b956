package ui

import (
	"fmt"

	"github.com/EMMA019/black-jackgames/pkg/types"
)

type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenLobby   Screen = "lobby"
	ScreenGame    Screen = "game"
)

// BetMode tags what the next-round control means right now, so intent
// handling can branch on an explicit mode instead of a rendered label.
type BetMode string

const (
	ModeNone    BetMode = "none"    // betting controls hidden
	ModeBet     BetMode = "bet"     // place a bet / start the next round
	ModeRestart BetMode = "restart" // recover from game over, full reset
)

const (
	LabelPlaceBet = "Place Bet"
	LabelNewGame  = "New Game"
)

// DefaultBet is what the bet input shows after every snapshot application.
// In-progress edits are discarded whenever a snapshot arrives.
const DefaultBet = 100

// State is the full set of UI decisions derived from one snapshot. It is
// recomputed wholesale on every update, never patched field by field.
type State struct {
	Screen                   Screen
	BettingControlsVisible   bool
	ActionControlsVisible    bool
	WinnerBannerVisible      bool
	ThinkingIndicatorVisible bool
	NextRoundLabel           string
	Mode                     BetMode
	StatusMessage            string
	WinnerText               string
}

var phaseMessages = map[string]string{
	types.PhaseWaitingForBet: "Place your bet to begin.",
	types.PhaseDealing:       "Dealing cards...",
	types.PhasePlayerTurn:    "Your turn. Hit or stand?",
	types.PhaseAITurn:        "AI Player is thinking...",
	types.PhaseDealerTurn:    "Dealer's turn...",
	types.PhaseRoundEnd:      "Round over.",
	types.PhaseGameOver:      "GAME OVER - You ran out of money!",
}

const gameOverMessage = "GAME OVER - You ran out of money!"

// Derive maps a snapshot to the one UI configuration that represents it.
// It is total over every phase/flag combination and idempotent: the same
// snapshot always yields the same State. A nil snapshot means nothing has
// arrived yet and forces the loading screen.
func Derive(snap *types.Snapshot) State {
	if snap == nil {
		return State{Screen: ScreenLoading, Mode: ModeNone}
	}

	s := State{Mode: ModeNone}

	if snap.Phase == types.PhaseWaitingForBet {
		s.Screen = ScreenLobby
	} else {
		s.Screen = ScreenGame
	}

	s.WinnerBannerVisible = snap.Phase == types.PhaseRoundEnd
	if s.WinnerBannerVisible {
		s.WinnerText = winnerText(snap.LastRoundWinner)
	}

	// The authority alone decides whether hit/stand is legal; the phase is
	// not consulted here.
	s.ActionControlsVisible = snap.CanHitStand
	s.ThinkingIndicatorVisible = snap.Phase == types.PhaseAITurn

	// Game over wins over can_bet even if the authority asserts both.
	switch {
	case snap.IsGameOver:
		s.BettingControlsVisible = true
		s.NextRoundLabel = LabelNewGame
		s.Mode = ModeRestart
	case snap.CanBet:
		s.BettingControlsVisible = true
		s.NextRoundLabel = LabelPlaceBet
		s.Mode = ModeBet
	}

	if snap.IsGameOver {
		s.StatusMessage = gameOverMessage
	} else if msg, ok := phaseMessages[snap.Phase]; ok {
		s.StatusMessage = msg
	} else {
		s.StatusMessage = "Waiting for the table..."
	}

	return s
}

// AwaitingStart is the configuration for the authority's "no session yet"
// notice: the lobby, ready to take a first bet.
func AwaitingStart(message string) State {
	if message == "" {
		message = phaseMessages[types.PhaseWaitingForBet]
	}
	return State{
		Screen:                 ScreenLobby,
		BettingControlsVisible: true,
		NextRoundLabel:         LabelPlaceBet,
		Mode:                   ModeBet,
		StatusMessage:          message,
	}
}

func winnerText(winner string) string {
	switch winner {
	case "", "None":
		return ""
	case "Push":
		return "Push! Bets returned."
	default:
		return fmt.Sprintf("Winner: %s!", winner)
	}
}
