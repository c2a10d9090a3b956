package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EMMA019/black-jackgames/pkg/types"
)

var allPhases = []string{
	types.PhaseWaitingForBet,
	types.PhaseDealing,
	types.PhasePlayerTurn,
	types.PhaseAITurn,
	types.PhaseDealerTurn,
	types.PhaseRoundEnd,
	types.PhaseGameOver,
}

func TestDerive_TotalOverPhaseFlagSpace(t *testing.T) {
	bools := []bool{false, true}
	for _, phase := range allPhases {
		for _, canBet := range bools {
			for _, canHitStand := range bools {
				for _, gameOver := range bools {
					snap := &types.Snapshot{
						Phase:       phase,
						CanBet:      canBet,
						CanHitStand: canHitStand,
						IsGameOver:  gameOver,
					}
					s := Derive(snap)

					if s.Screen == "" {
						t.Fatalf("no screen for phase=%s flags=%v/%v/%v", phase, canBet, canHitStand, gameOver)
					}
					if s.StatusMessage == "" {
						t.Fatalf("no status message for phase=%s", phase)
					}
					if s.Mode == "" {
						t.Fatalf("no mode for phase=%s", phase)
					}
					if s.BettingControlsVisible && s.NextRoundLabel == "" {
						t.Fatalf("visible betting controls without a label, phase=%s", phase)
					}
				}
			}
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	snap := &types.Snapshot{
		Phase:           types.PhaseRoundEnd,
		CanBet:          true,
		LastRoundWinner: "Player",
	}
	first := Derive(snap)
	second := Derive(snap)
	require.Equal(t, first, second)
}

func TestDerive_GameOverBeatsCanBet(t *testing.T) {
	snap := &types.Snapshot{
		Phase:       types.PhaseRoundEnd,
		CanBet:      true,
		IsGameOver:  true,
		CanHitStand: false,
	}
	s := Derive(snap)
	assert.True(t, s.BettingControlsVisible)
	assert.Equal(t, LabelNewGame, s.NextRoundLabel)
	assert.Equal(t, ModeRestart, s.Mode)
}

func TestDerive_NilSnapshotIsLoading(t *testing.T) {
	s := Derive(nil)
	assert.Equal(t, ScreenLoading, s.Screen)
	assert.Equal(t, ModeNone, s.Mode)
	assert.False(t, s.BettingControlsVisible)
	assert.False(t, s.ActionControlsVisible)
}

func TestDerive_WaitingForBetShowsLobby(t *testing.T) {
	snap := &types.Snapshot{
		Phase:  types.PhaseWaitingForBet,
		CanBet: true,
	}
	snap.Player.Balance = 1000
	s := Derive(snap)
	assert.Equal(t, ScreenLobby, s.Screen)
	assert.False(t, s.ActionControlsVisible)
	assert.False(t, s.WinnerBannerVisible)
	assert.Equal(t, ModeBet, s.Mode)
}

func TestDerive_AITurnShowsThinking(t *testing.T) {
	snap := &types.Snapshot{
		Phase:       types.PhaseAITurn,
		CanHitStand: false,
	}
	s := Derive(snap)
	assert.Equal(t, ScreenGame, s.Screen)
	assert.True(t, s.ThinkingIndicatorVisible)
	assert.False(t, s.ActionControlsVisible)
}

func TestDerive_RoundEndShowsWinnerBanner(t *testing.T) {
	snap := &types.Snapshot{
		Phase:           types.PhaseRoundEnd,
		LastRoundWinner: "Player",
		CanBet:          true,
	}
	s := Derive(snap)
	assert.True(t, s.WinnerBannerVisible)
	assert.Equal(t, "Winner: Player!", s.WinnerText)
	assert.True(t, s.BettingControlsVisible)
	assert.Equal(t, LabelPlaceBet, s.NextRoundLabel)
	assert.Equal(t, ModeBet, s.Mode)
}

func TestDerive_GameOverMessageOverridesPhase(t *testing.T) {
	snap := &types.Snapshot{
		Phase:      types.PhaseDealerTurn,
		IsGameOver: true,
	}
	s := Derive(snap)
	assert.Equal(t, ScreenGame, s.Screen)
	assert.Contains(t, s.StatusMessage, "GAME OVER")
	assert.True(t, s.BettingControlsVisible)
	assert.Equal(t, LabelNewGame, s.NextRoundLabel)
}

func TestDerive_ActionControlsFollowAuthorityFlag(t *testing.T) {
	// The flag decides, not the phase.
	hit := Derive(&types.Snapshot{Phase: types.PhaseDealerTurn, CanHitStand: true})
	assert.True(t, hit.ActionControlsVisible)

	noHit := Derive(&types.Snapshot{Phase: types.PhasePlayerTurn, CanHitStand: false})
	assert.False(t, noHit.ActionControlsVisible)
}

func TestDerive_PushWinnerText(t *testing.T) {
	s := Derive(&types.Snapshot{Phase: types.PhaseRoundEnd, LastRoundWinner: "Push"})
	assert.Equal(t, "Push! Bets returned.", s.WinnerText)
}

func TestAwaitingStart(t *testing.T) {
	s := AwaitingStart("Please start a new game.")
	assert.Equal(t, ScreenLobby, s.Screen)
	assert.Equal(t, "Please start a new game.", s.StatusMessage)
	assert.True(t, s.BettingControlsVisible)
	assert.Equal(t, ModeBet, s.Mode)
}

func TestDerive_UnknownPhaseStillRenders(t *testing.T) {
	s := Derive(&types.Snapshot{Phase: "future_phase"})
	assert.Equal(t, ScreenGame, s.Screen)
	assert.NotEmpty(t, s.StatusMessage)
}
