package client

import (
	"github.com/EMMA019/black-jackgames/internal/ui"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

// Intent is a user input event. Intents are validated on the client loop
// against the latest derived state, so no game state leaks out of the loop.
type Intent interface{ isIntent() }

// BetIntent is the next-round control. What it means depends on the current
// bet mode: a normal bet starts the next round, game-over recovery resets
// the whole game.
type BetIntent struct {
	Amount     int
	Difficulty string
}

func (BetIntent) isIntent() {}

// ActionIntent is hit or stand.
type ActionIntent struct {
	Action string
}

func (ActionIntent) isIntent() {}

// SubmitBet queues the next-round control press. Safe from any goroutine.
func (c *Client) SubmitBet(amount int, difficulty string) {
	c.intents <- BetIntent{Amount: amount, Difficulty: difficulty}
}

// Hit queues a hit action.
func (c *Client) Hit() { c.intents <- ActionIntent{Action: types.ActionHit} }

// Stand queues a stand action.
func (c *Client) Stand() { c.intents <- ActionIntent{Action: types.ActionStand} }

func (c *Client) handleIntent(intent Intent) {
	switch it := intent.(type) {
	case BetIntent:
		c.handleBet(it)
	case ActionIntent:
		c.handleAction(it)
	}
}

func (c *Client) handleBet(it BetIntent) {
	switch c.state.Mode {
	case ui.ModeRestart:
		// Irreversible: resets the balance. Confirm, send at most once, and
		// never retry automatically; on a later error the user triggers it
		// again.
		if !c.confirm("Start a new game? Your balance will be reset.") {
			return
		}
		c.send(types.ClientMessage{Type: types.MsgResetGame})

	case ui.ModeBet:
		if it.Amount <= 0 {
			// Local validation failure never reaches the wire.
			c.showNotice("Bet amount must be a positive number.")
			return
		}
		difficulty := it.Difficulty
		if difficulty == "" {
			difficulty = "MEDIUM"
		}
		c.send(types.ClientMessage{
			Type:       types.MsgStartGame,
			Difficulty: difficulty,
			BetAmount:  it.Amount,
		})

	default:
		c.showNotice("Betting is not available right now.")
	}
}

func (c *Client) handleAction(it ActionIntent) {
	if !c.state.ActionControlsVisible {
		c.showNotice("It is not your turn to act.")
		return
	}
	c.send(types.ClientMessage{Type: types.MsgPlayerAction, Action: it.Action})
}
