package types

// Game phases as emitted by the authority. The client treats these as opaque
// stage names; it never advances them on its own.
const (
	PhaseWaitingForBet = "waiting_for_bet"
	PhaseDealing       = "dealing"
	PhasePlayerTurn    = "player_turn"
	PhaseAITurn        = "ai_turn"
	PhaseDealerTurn    = "dealer_turn"
	PhaseRoundEnd      = "round_end"
	PhaseGameOver      = "game_over"
)

// SuitHidden marks a face-down card. The authority never transmits the real
// suit or rank of a hidden card; it renders as a blank-faced card.
const SuitHidden = "Hidden"

type Card struct {
	Suit string `json:"suit"` // "Hearts" | "Diamonds" | "Clubs" | "Spades" | "Hidden"
	Rank string `json:"rank"`
}

// Participant is the client-facing view of one seat at the table.
type Participant struct {
	Name        string `json:"name"`
	Hand        []Card `json:"hand"`
	Score       int    `json:"score"`
	IsBust      bool   `json:"is_bust"`
	IsBlackjack bool   `json:"is_blackjack"`
}

// PlayerState extends Participant with the money figures the authority echoes
// back each update. The client treats both as read-only display values.
type PlayerState struct {
	Participant
	Balance    int `json:"balance"`
	CurrentBet int `json:"current_bet"`
}

type DeckInfo struct {
	Remaining int `json:"remaining"`
}

// Snapshot is the authoritative, complete description of game state at one
// instant. It is received wholesale on every update and never partially
// merged client-side.
type Snapshot struct {
	SessionID       string      `json:"session_id,omitempty"`
	Phase           string      `json:"phase"`
	Difficulty      string      `json:"difficulty,omitempty"`
	LastRoundWinner string      `json:"last_round_winner,omitempty"`
	CanBet          bool        `json:"can_bet"`
	CanHitStand     bool        `json:"can_hit_stand"`
	IsGameOver      bool        `json:"is_game_over"`
	Dealer          Participant `json:"dealer"`
	AIPlayer        Participant `json:"ai_player"`
	Player          PlayerState `json:"player"`
	Deck            DeckInfo    `json:"deck"`
}
