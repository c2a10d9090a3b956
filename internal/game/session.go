package game

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/pkg/types"
)

var ErrWrongPhase = errors.New("action not allowed in current phase")
var ErrInvalidBet = errors.New("invalid bet amount or insufficient funds")
var ErrNoFunds = errors.New("game over, player has no money")

type Phase string

const (
	PhaseWaitingForBet Phase = types.PhaseWaitingForBet
	PhaseDealing       Phase = types.PhaseDealing
	PhasePlayerTurn    Phase = types.PhasePlayerTurn
	PhaseAITurn        Phase = types.PhaseAITurn
	PhaseDealerTurn    Phase = types.PhaseDealerTurn
	PhaseRoundEnd      Phase = types.PhaseRoundEnd
	PhaseGameOver      Phase = types.PhaseGameOver
)

const InitialBalance = 1000

// reshuffleThreshold: a fresh deck is swapped in before a round when fewer
// cards than this remain.
const reshuffleThreshold = 15

type seat struct {
	name string
	hand []Card
}

// Session holds one player's table: their seat, the AI opponent, and the
// dealer. All mutation happens through the owning session actor, one
// goroutine at a time.
type Session struct {
	ID         string
	Difficulty Difficulty

	player seat
	ai     seat
	dealer seat

	balance    int
	currentBet int

	deck       *Deck
	phase      Phase
	lastWinner string

	rng *rand.Rand
	log *zap.Logger
}

func NewSession(id string, difficulty Difficulty, balance int, rng *rand.Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		ID:         id,
		Difficulty: difficulty,
		player:     seat{name: "Player"},
		ai:         seat{name: "AI Player"},
		dealer:     seat{name: "Dealer"},
		balance:    balance,
		deck:       NewDeck(rng),
		phase:      PhaseWaitingForBet,
		lastWinner: "None",
		rng:        rng,
		log:        log,
	}
	s.log.Info("game session initialized",
		zap.String("session_id", id),
		zap.String("difficulty", string(difficulty)),
		zap.Int("balance", balance))
	return s
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Balance() int { return s.balance }

// StartRound places the bet and deals the opening hands. Blackjacks on the
// deal shortcut the turn order: a player blackjack skips straight to the AI
// turn, an AI or dealer blackjack to the dealer turn.
func (s *Session) StartRound(bet int) error {
	if s.phase != PhaseWaitingForBet && s.phase != PhaseRoundEnd {
		return ErrWrongPhase
	}
	if s.balance <= 0 {
		s.phase = PhaseGameOver
		return ErrNoFunds
	}
	if bet <= 0 || bet > s.balance {
		return fmt.Errorf("%w: %d with balance %d", ErrInvalidBet, bet, s.balance)
	}

	s.currentBet = bet
	s.balance -= bet
	s.player.hand = nil
	s.ai.hand = nil
	s.dealer.hand = nil
	s.lastWinner = "None"

	if s.deck.Remaining() < reshuffleThreshold {
		s.deck = NewDeck(s.rng)
		s.log.Info("deck was low, reshuffled", zap.String("session_id", s.ID))
	}

	s.phase = PhaseDealing
	for i := 0; i < 2; i++ {
		for _, st := range []*seat{&s.player, &s.ai, &s.dealer} {
			c, err := s.deck.Deal()
			if err != nil {
				s.deck = NewDeck(s.rng)
				return fmt.Errorf("deck error, round reset: %w", err)
			}
			st.hand = append(st.hand, c)
		}
	}

	switch {
	case IsBlackjack(s.player.hand):
		s.phase = PhaseAITurn
	case IsBlackjack(s.ai.hand), IsBlackjack(s.dealer.hand):
		s.phase = PhaseDealerTurn
	default:
		s.phase = PhasePlayerTurn
	}

	s.log.Info("round started",
		zap.String("session_id", s.ID),
		zap.Int("bet", bet),
		zap.String("phase", string(s.phase)))
	return nil
}

func (s *Session) PlayerHit() error {
	if s.phase != PhasePlayerTurn {
		return ErrWrongPhase
	}
	c, err := s.deck.Deal()
	if err != nil {
		return err
	}
	s.player.hand = append(s.player.hand, c)
	score := Score(s.player.hand)
	s.log.Info("player hit", zap.String("session_id", s.ID), zap.Int("score", score))
	if score >= 21 {
		s.phase = PhaseAITurn
	}
	return nil
}

func (s *Session) PlayerStand() error {
	if s.phase != PhasePlayerTurn {
		return ErrWrongPhase
	}
	s.log.Info("player stood", zap.String("session_id", s.ID), zap.Int("score", Score(s.player.hand)))
	s.phase = PhaseAITurn
	return nil
}

// PlayAITurn runs the AI seat to completion. When the player already busted
// the AI does not act; the round goes straight to the dealer.
func (s *Session) PlayAITurn() error {
	if s.phase != PhaseAITurn {
		return ErrWrongPhase
	}
	if IsBust(s.player.hand) {
		s.phase = PhaseDealerTurn
		return nil
	}

	for !IsBust(s.ai.hand) && Score(s.ai.hand) < 21 {
		if DecideAction(s.Difficulty, s.ai.hand, s.dealer.hand[1]) != "hit" {
			break
		}
		c, err := s.deck.Deal()
		if err != nil {
			return err
		}
		s.ai.hand = append(s.ai.hand, c)
	}
	s.log.Info("ai turn finished", zap.String("session_id", s.ID), zap.Int("score", Score(s.ai.hand)))
	s.phase = PhaseDealerTurn
	return nil
}

// PlayDealerTurn reveals the hole card, draws to 17, and settles the round.
func (s *Session) PlayDealerTurn() error {
	if s.phase != PhaseDealerTurn {
		return ErrWrongPhase
	}
	for Score(s.dealer.hand) < 17 {
		c, err := s.deck.Deal()
		if err != nil {
			return err
		}
		s.dealer.hand = append(s.dealer.hand, c)
	}
	s.log.Info("dealer turn finished", zap.String("session_id", s.ID), zap.Int("score", Score(s.dealer.hand)))
	s.phase = PhaseRoundEnd
	s.settle()
	return nil
}

func (s *Session) settle() {
	playerScore := Score(s.player.hand)
	dealerScore := Score(s.dealer.hand)
	playerBJ := IsBlackjack(s.player.hand)
	dealerBJ := IsBlackjack(s.dealer.hand)

	var result string
	switch {
	case IsBust(s.player.hand):
		result = "loss"
	case IsBust(s.dealer.hand):
		if playerBJ {
			result = "blackjack"
		} else {
			result = "win"
		}
	case playerBJ && !dealerBJ:
		result = "blackjack"
	case dealerBJ && !playerBJ:
		result = "loss"
	case playerScore > dealerScore:
		result = "win"
	case playerScore < dealerScore:
		result = "loss"
	default:
		result = "push"
	}

	switch result {
	case "blackjack":
		s.balance += int(float64(s.currentBet) * 2.5)
		s.lastWinner = s.player.name
	case "win":
		s.balance += s.currentBet * 2
		s.lastWinner = s.player.name
	case "push":
		s.balance += s.currentBet
		s.lastWinner = "Push"
	case "loss":
		s.lastWinner = s.dealer.name
	}
	s.currentBet = 0

	s.log.Info("round settled",
		zap.String("session_id", s.ID),
		zap.String("result", result),
		zap.Int("balance", s.balance))

	if s.balance <= 0 {
		s.phase = PhaseGameOver
		s.log.Info("player out of money, game over", zap.String("session_id", s.ID))
	}
}

// Reset restores a fresh session keeping only the difficulty.
func (s *Session) Reset(balance int) {
	s.player = seat{name: "Player"}
	s.ai = seat{name: "AI Player"}
	s.dealer = seat{name: "Dealer"}
	s.balance = balance
	s.currentBet = 0
	s.deck = NewDeck(s.rng)
	s.phase = PhaseWaitingForBet
	s.lastWinner = "None"
	s.log.Info("game session reset", zap.String("session_id", s.ID))
}

// Snapshot builds the client-facing state. With hideHole set the dealer's
// first card is masked and the dealer score shows only the up-card value.
func (s *Session) Snapshot(hideHole bool) *types.Snapshot {
	snap := &types.Snapshot{
		SessionID:       s.ID,
		Phase:           string(s.phase),
		Difficulty:      string(s.Difficulty),
		LastRoundWinner: s.lastWinner,
		CanBet:          s.phase == PhaseWaitingForBet || s.phase == PhaseRoundEnd,
		CanHitStand:     s.phase == PhasePlayerTurn,
		IsGameOver:      s.balance <= 0 && s.phase == PhaseGameOver,
		AIPlayer:        participant(s.ai),
		Deck:            types.DeckInfo{Remaining: s.deck.Remaining()},
	}

	snap.Player = types.PlayerState{
		Participant: participant(s.player),
		Balance:     s.balance,
		CurrentBet:  s.currentBet,
	}

	dealer := participant(s.dealer)
	if hideHole && len(s.dealer.hand) > 0 {
		dealer.Hand = append([]types.Card{{Suit: types.SuitHidden, Rank: types.SuitHidden}}, dealer.Hand[1:]...)
		if len(s.dealer.hand) > 1 {
			dealer.Score = s.dealer.hand[1].Value()
		} else {
			dealer.Score = 0
		}
		dealer.IsBust = false
		dealer.IsBlackjack = false
	}
	snap.Dealer = dealer
	return snap
}

// HideHole reports whether the dealer's hole card should still be masked for
// the current phase.
func (s *Session) HideHole() bool {
	return s.phase != PhaseRoundEnd && s.phase != PhaseGameOver
}

func participant(st seat) types.Participant {
	hand := make([]types.Card, 0, len(st.hand))
	for _, c := range st.hand {
		hand = append(hand, c.Wire())
	}
	return types.Participant{
		Name:        st.name,
		Hand:        hand,
		Score:       Score(st.hand),
		IsBust:      IsBust(st.hand),
		IsBlackjack: IsBlackjack(st.hand),
	}
}
