package view

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/ui"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

// Renderer projects a snapshot onto the registry. Every application fully
// recomputes the derived state and rewrites every bound field, so applying
// the same snapshot twice leaves the registry unchanged.
type Renderer struct {
	reg *Registry
	log *zap.Logger
}

func NewRenderer(reg *Registry, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{reg: reg, log: log}
}

// Apply populates the registry from snap and returns the derived state so
// the caller can keep it for intent handling. A nil snapshot shows loading.
func (r *Renderer) Apply(snap *types.Snapshot) ui.State {
	state := ui.Derive(snap)
	r.ApplyState(state)
	if snap == nil {
		return state
	}

	r.reg.Hand(HandDealer).SetCards(Glyphs(snap.Dealer.Hand))
	r.reg.Hand(HandAI).SetCards(Glyphs(snap.AIPlayer.Hand))
	r.reg.Hand(HandPlayer).SetCards(Glyphs(snap.Player.Hand))

	r.reg.Lookup(ui.ScreenGame, FieldDealerScore).SetText(strconv.Itoa(snap.Dealer.Score))
	r.reg.Lookup(ui.ScreenGame, FieldAIScore).SetText(strconv.Itoa(snap.AIPlayer.Score))
	r.reg.Lookup(ui.ScreenGame, FieldPlayerScore).SetText(strconv.Itoa(snap.Player.Score))

	r.setBoth(FieldBalance, strconv.Itoa(snap.Player.Balance))
	r.setBoth(FieldCurrentBet, strconv.Itoa(snap.Player.CurrentBet))

	// The bet input resets to the default on every snapshot, discarding any
	// in-progress edit.
	bet := r.reg.Lookup(state.Screen, FieldBetInput)
	bet.SetText(strconv.Itoa(ui.DefaultBet))
	bet.SetVisible(state.BettingControlsVisible)

	r.log.Debug("snapshot rendered",
		zap.String("phase", snap.Phase),
		zap.String("screen", string(state.Screen)))
	return state
}

// ShowLoading forces the loading screen, used on channel loss before any
// replacement snapshot exists.
func (r *Renderer) ShowLoading(notice string) ui.State {
	state := ui.Derive(nil)
	r.ApplyState(state)
	if notice != "" {
		r.Notice(notice)
	}
	return state
}

// Notice shows a transient message on whatever screen is active. Dismissal
// timing is owned by the caller.
func (r *Renderer) Notice(msg string) {
	for _, screen := range ScreenAll {
		t := r.reg.Lookup(screen, FieldNotice)
		t.SetText(msg)
		t.SetVisible(msg != "")
	}
}

// ApplyState writes a derived state without touching snapshot-sourced
// fields, used for configurations with no snapshot behind them.
func (r *Renderer) ApplyState(s ui.State) {
	status := r.reg.Lookup(s.Screen, FieldStatus)
	status.SetText(s.StatusMessage)
	status.SetVisible(true)

	next := r.reg.Lookup(s.Screen, FieldNextRound)
	next.SetText(s.NextRoundLabel)
	next.SetVisible(s.BettingControlsVisible)

	winner := r.reg.Lookup(ui.ScreenGame, FieldWinner)
	winner.SetText(s.WinnerText)
	winner.SetVisible(s.WinnerBannerVisible)

	thinking := r.reg.Lookup(ui.ScreenGame, FieldThinking)
	thinking.SetText("AI Player is thinking...")
	thinking.SetVisible(s.ThinkingIndicatorVisible)

	actions := r.reg.Lookup(ui.ScreenGame, FieldActions)
	actions.SetText("Hit / Stand")
	actions.SetVisible(s.ActionControlsVisible)
}

func (r *Renderer) setBoth(f Field, text string) {
	r.reg.Lookup(ui.ScreenLobby, f).SetText(text)
	r.reg.Lookup(ui.ScreenGame, f).SetText(text)
}

// ScreenAll lists every screen a notice can appear on.
var ScreenAll = []ui.Screen{ui.ScreenLoading, ui.ScreenLobby, ui.ScreenGame}
