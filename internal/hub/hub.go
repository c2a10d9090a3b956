package hub

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/session"
	"github.com/EMMA019/black-jackgames/internal/store"
)

type HubMsg interface{ isHubMsg() }

type EnsureSession struct {
	SID   string
	Reply chan *session.Session
}

type GetSession struct {
	SID   string
	Reply chan *session.Session
}

type RemoveSession struct {
	SID string
}

type ShutdownHub struct{}

func (EnsureSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Hub is the registry actor owning one session actor per session id.
type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*session.Session

	balances  store.Balances
	turnDelay time.Duration
	log       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, balances store.Balances, turnDelay time.Duration, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:     make(chan HubMsg, 64),
		sessions:  make(map[string]*session.Session),
		balances:  balances,
		turnDelay: turnDelay,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case EnsureSession:
				if s := h.sessions[msg.SID]; s != nil {
					msg.Reply <- s
					break
				}
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				s := session.New(h.ctx, msg.SID, h.balances, h.turnDelay, rng, h.log)
				h.sessions[msg.SID] = s
				h.log.Info("session created", zap.String("session_id", msg.SID))
				msg.Reply <- s

			case GetSession:
				msg.Reply <- h.sessions[msg.SID] // May be nil

			case RemoveSession:
				if s := h.sessions[msg.SID]; s != nil {
					s.Inbox() <- session.Shutdown{}
				}
				delete(h.sessions, msg.SID)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for sid, s := range h.sessions {
		s.Inbox() <- session.Shutdown{}
		delete(h.sessions, sid)
	}
	h.cancel()
}
