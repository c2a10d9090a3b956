package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/hub"
	"github.com/EMMA019/black-jackgames/internal/session"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

// Handler upgrades to a websocket and bridges it onto the session actor for
// the client's sid. Reconnecting with the same sid resumes the session; a
// missing sid gets a fresh one.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sid := r.URL.Query().Get("sid")
		if sid == "" {
			sid = randID(12)
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.EnsureSession{SID: sid, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan types.ServerMessage, 16)
		clientID := randID(6)
		log.Info("client connected", zap.String("session_id", sid), zap.String("client_id", clientID))

		sess.Inbox() <- session.Join{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				log.Debug("read ended", zap.String("client_id", clientID), zap.Error(err))
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"error","message":"bad json"}`))
				continue
			}

			msg, ok := toSessionMsg(clientID, cm)
			if !ok {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"error","message":"unknown message type"}`))
				continue
			}
			sess.Inbox() <- msg
		}
	}
}

func toSessionMsg(clientID string, m types.ClientMessage) (session.Msg, bool) {
	switch m.Type {
	case types.MsgStartGame:
		return session.StartGame{ClientID: clientID, Difficulty: m.Difficulty, BetAmount: m.BetAmount}, true
	case types.MsgPlayerAction:
		return session.PlayerAction{ClientID: clientID, Action: m.Action}, true
	case types.MsgResetGame:
		return session.ResetGame{ClientID: clientID}, true
	default:
		return nil, false
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
