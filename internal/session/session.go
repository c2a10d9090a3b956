package session

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/game"
	"github.com/EMMA019/black-jackgames/internal/store"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

type Msg interface{ isSessionMsg() }

type Join struct {
	ClientID string
	Outbox   chan types.ServerMessage
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type StartGame struct {
	ClientID   string
	Difficulty string
	BetAmount  int
}

func (StartGame) isSessionMsg() {}

type PlayerAction struct {
	ClientID string
	Action   string
}

func (PlayerAction) isSessionMsg() {}

type ResetGame struct{ ClientID string }

func (ResetGame) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// advanceTurn is posted by the turn timer to run the next AI/dealer stage.
type advanceTurn struct{ gen int }

func (advanceTurn) isSessionMsg() {}

// GetView reflects internal state without data races. Test-only.
type GetView struct {
	Reply chan View
}

func (GetView) isSessionMsg() {}

type View struct {
	NumClients int
	Phase      game.Phase
	Balance    int
	HasGame    bool
}

// Session is the actor owning one player's game. All state transitions run
// on its single loop goroutine; clients talk to it through the inbox and
// receive full-state events on their outbox.
type Session struct {
	ID string

	inbox    chan Msg
	clients  map[string]chan types.ServerMessage
	g        *game.Session
	balances store.Balances

	turnDelay time.Duration
	timerGen  int

	rng *rand.Rand
	log *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, id string, balances store.Balances, turnDelay time.Duration, rng *rand.Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:        id,
		inbox:     make(chan Msg, 64),
		clients:   make(map[string]chan types.ServerMessage),
		balances:  balances,
		turnDelay: turnDelay,
		rng:       rng,
		log:       log.With(zap.String("session_id", id)),
		ctx:       ctx,
		cancel:    cancel,
	}
	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.clients[msg.ClientID] = msg.Outbox
				if s.g != nil {
					s.sendTo(msg.ClientID, stateMsg(s.g))
					s.log.Info("client resumed session", zap.String("client_id", msg.ClientID))
				} else {
					s.sendTo(msg.ClientID, types.ServerMessage{
						Type:    types.MsgAwaitingStart,
						Message: "Please start a new game.",
					})
				}

			case Leave:
				delete(s.clients, msg.ClientID)
				s.persistBalance()

			case StartGame:
				s.handleStart(msg)

			case PlayerAction:
				s.handleAction(msg)

			case ResetGame:
				s.handleReset(msg)

			case advanceTurn:
				if msg.gen == s.timerGen {
					s.runTurnStage()
				}

			case GetView:
				v := View{NumClients: len(s.clients), HasGame: s.g != nil}
				if s.g != nil {
					v.Phase = s.g.Phase()
					v.Balance = s.g.Balance()
				}
				msg.Reply <- v

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) handleStart(msg StartGame) {
	difficulty, ok := game.ParseDifficulty(msg.Difficulty)
	if !ok {
		s.errorTo(msg.ClientID, "Invalid difficulty level.")
		return
	}
	if msg.BetAmount <= 0 {
		s.errorTo(msg.ClientID, "Bet amount must be a positive integer.")
		return
	}

	if s.g == nil || s.g.Phase() == game.PhaseGameOver {
		balance, err := s.balances.Load(s.ID)
		if err != nil {
			s.log.Error("balance load failed", zap.Error(err))
			s.errorTo(msg.ClientID, "An unexpected error occurred. Please try again.")
			return
		}
		if s.g != nil && s.g.Phase() == game.PhaseGameOver && balance <= 0 {
			balance = game.InitialBalance
		}
		s.g = game.NewSession(s.ID, difficulty, balance, s.rng, s.log)
	} else if p := s.g.Phase(); p == game.PhaseWaitingForBet || p == game.PhaseRoundEnd {
		// A difficulty sent between rounds takes effect for the next deal.
		s.g.Difficulty = difficulty
	}

	if err := s.g.StartRound(msg.BetAmount); err != nil {
		s.errorTo(msg.ClientID, userMessage(err))
		return
	}
	s.persistBalance()
	s.broadcast(stateMsg(s.g))
	s.scheduleTurns()
}

func (s *Session) handleAction(msg PlayerAction) {
	if s.g == nil {
		s.errorTo(msg.ClientID, "No active game session. Please start a new game.")
		return
	}
	if s.g.Phase() != game.PhasePlayerTurn {
		s.errorTo(msg.ClientID, "It is not your turn to act.")
		return
	}

	var err error
	switch msg.Action {
	case types.ActionHit:
		err = s.g.PlayerHit()
	case types.ActionStand:
		err = s.g.PlayerStand()
	default:
		s.errorTo(msg.ClientID, "Invalid player action.")
		return
	}
	if err != nil {
		s.errorTo(msg.ClientID, userMessage(err))
		return
	}

	s.broadcast(stateMsg(s.g))
	s.scheduleTurns()
}

func (s *Session) handleReset(msg ResetGame) {
	if err := s.balances.Save(s.ID, game.InitialBalance); err != nil {
		s.log.Error("balance reset failed", zap.Error(err))
		s.errorTo(msg.ClientID, "An unexpected error occurred during game reset.")
		return
	}
	if s.g == nil {
		s.g = game.NewSession(s.ID, game.DifficultyMedium, game.InitialBalance, s.rng, s.log)
	} else {
		s.g.Reset(game.InitialBalance)
	}
	s.timerGen++ // invalidate any pending turn timer
	s.broadcast(stateMsg(s.g))
	s.log.Info("session reset")
}

// scheduleTurns arms the turn timer when the round has moved past the
// player's turn. Each stage re-arms for the next one so the AI and dealer
// act on a visible cadence.
func (s *Session) scheduleTurns() {
	phase := s.g.Phase()
	if phase != game.PhaseAITurn && phase != game.PhaseDealerTurn {
		return
	}
	s.timerGen++
	gen := s.timerGen
	time.AfterFunc(s.turnDelay, func() {
		select {
		case s.inbox <- advanceTurn{gen: gen}:
		case <-s.ctx.Done():
		}
	})
}

func (s *Session) runTurnStage() {
	if s.g == nil {
		return
	}
	switch s.g.Phase() {
	case game.PhaseAITurn:
		if err := s.g.PlayAITurn(); err != nil {
			s.log.Warn("ai turn failed", zap.Error(err))
			s.broadcastError(userMessage(err))
			return
		}
		s.broadcast(stateMsg(s.g))
		s.scheduleTurns()

	case game.PhaseDealerTurn:
		if err := s.g.PlayDealerTurn(); err != nil {
			s.log.Warn("dealer turn failed", zap.Error(err))
			s.broadcastError(userMessage(err))
			return
		}
		s.persistBalance()
		s.broadcast(stateMsg(s.g))
		if s.g.Phase() == game.PhaseGameOver {
			s.broadcast(types.ServerMessage{
				Type:    types.MsgGameOver,
				Message: "You ran out of money! Game Over.",
			})
		}
	}
}

func (s *Session) persistBalance() {
	if s.g == nil {
		return
	}
	if err := s.balances.Save(s.ID, s.g.Balance()); err != nil {
		s.log.Error("balance save failed", zap.Error(err))
	}
}

func stateMsg(g *game.Session) types.ServerMessage {
	return types.ServerMessage{
		Type:  types.MsgGameStateUpdate,
		State: g.Snapshot(g.HideHole()),
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNoFunds):
		return "Game Over. Player has no money."
	case errors.Is(err, game.ErrInvalidBet):
		return "Invalid bet amount or insufficient funds."
	case errors.Is(err, game.ErrWrongPhase):
		return "Cannot do that right now."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

func (s *Session) errorTo(clientID, message string) {
	s.sendTo(clientID, types.ServerMessage{Type: types.MsgError, Message: message})
}

func (s *Session) broadcastError(message string) {
	s.broadcast(types.ServerMessage{Type: types.MsgError, Message: message})
}

func (s *Session) sendTo(clientID string, msg types.ServerMessage) {
	ch, ok := s.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		close(ch)
		delete(s.clients, clientID)
	}
}

func (s *Session) broadcast(msg types.ServerMessage) {
	for id, ch := range s.clients {
		select {
		case ch <- msg:
		default:
			// Client is slow or full, drop them.
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
	s.persistBalance()
	s.cancel()
}
