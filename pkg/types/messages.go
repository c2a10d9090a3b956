package types

// Wire protocol between the blackjack client and the game authority.
// Every message is a single flat JSON envelope; fields not used by a given
// message type are omitted.

// Client -> Server
const (
	MsgStartGame    = "start_game"
	MsgPlayerAction = "player_action"
	MsgResetGame    = "reset_game"
)

// Server -> Client
const (
	MsgAwaitingStart   = "awaiting_start"
	MsgGameStateUpdate = "game_state_update"
	MsgGameOver        = "game_over"
	MsgError           = "error"
)

const (
	ActionHit   = "hit"
	ActionStand = "stand"
)

type ClientMessage struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	BetAmount  int    `json:"bet_amount,omitempty"`
	Action     string `json:"action,omitempty"`
}

type ServerMessage struct {
	Type    string    `json:"type"` // "awaiting_start" | "game_state_update" | "game_over" | "error"
	Message string    `json:"message,omitempty"`
	State   *Snapshot `json:"state,omitempty"`
}
