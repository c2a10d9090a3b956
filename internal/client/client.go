package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/ui"
	"github.com/EMMA019/black-jackgames/internal/view"
	"github.com/EMMA019/black-jackgames/pkg/types"
)

const (
	// noticeTTL is how long a transient error banner stays up. A newer
	// notice replaces the pending dismissal.
	noticeTTL = 4 * time.Second

	reconnectDelay = 2 * time.Second
	writeTimeout   = 3 * time.Second
)

// Confirmer is asked before an irreversible intent (game reset) is sent.
// It runs on the client loop, so it should return promptly.
type Confirmer func(prompt string) bool

// Client keeps the view in sync with the authority's snapshot stream and
// carries user intents the other way. It holds no game state of its own
// beyond the single most recent snapshot; every update recomputes the whole
// view from scratch.
type Client struct {
	url      string
	renderer *view.Renderer
	confirm  Confirmer
	log      *zap.Logger

	intents chan Intent
	queries chan stateQuery

	// Loop-owned. Written and read only by the run loop.
	conn    *websocket.Conn
	state   ui.State
	snap    *types.Snapshot
	noticeC <-chan time.Time
	timer   *time.Timer
}

func New(url string, renderer *view.Renderer, confirm Confirmer, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Client{
		url:      url,
		renderer: renderer,
		confirm:  confirm,
		log:      log,
		intents:  make(chan Intent, 8),
		queries:  make(chan stateQuery),
	}
}

// Run dials the authority and processes events until ctx is cancelled. On
// channel loss it forces the loading screen, suspends outbound sends, and
// redials; the authority resends full state on reconnect.
func (c *Client) Run(ctx context.Context) error {
	c.state = c.renderer.ShowLoading("Connecting...")
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warn("dial failed, retrying", zap.Error(err))
			c.state = c.renderer.ShowLoading("Reconnecting...")
			if !c.waitReconnect(ctx) {
				return ctx.Err()
			}
			continue
		}

		c.session(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.state = c.renderer.ShowLoading("Connection lost. Reconnecting...")
		if !c.waitReconnect(ctx) {
			return ctx.Err()
		}
	}
}

// dial runs the websocket handshake while still answering state queries, so
// frontends never hang on a slow or unreachable authority.
func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	type result struct {
		conn *websocket.Conn
		err  error
	}
	done := make(chan result, 1)
	go func() {
		conn, _, err := websocket.Dial(ctx, c.url, nil)
		done <- result{conn: conn, err: err}
	}()
	for {
		select {
		case res := <-done:
			return res.conn, res.err
		case q := <-c.queries:
			q.reply <- c.state
		case <-ctx.Done():
			// Dial honours ctx, so the handshake is about to give up.
			res := <-done
			if res.conn != nil {
				res.conn.Close(websocket.StatusNormalClosure, "bye")
			}
			return nil, ctx.Err()
		}
	}
}

// waitReconnect sleeps out the redial backoff while still answering state
// queries, so frontends never hang on a dropped connection.
func (c *Client) waitReconnect(ctx context.Context) bool {
	deadline := time.After(reconnectDelay)
	for {
		select {
		case <-deadline:
			return true
		case q := <-c.queries:
			q.reply <- c.state
		case <-ctx.Done():
			return false
		}
	}
}

// session runs one connection to completion.
func (c *Client) session(ctx context.Context, conn *websocket.Conn) {
	c.conn = conn
	defer func() {
		c.conn = nil
		conn.Close(websocket.StatusNormalClosure, "bye")
	}()

	events := make(chan types.ServerMessage, 16)
	readErr := make(chan error, 1)
	go readPump(ctx, conn, events, readErr, c.log)

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-readErr:
			c.log.Info("connection closed", zap.Error(err))
			return
		case msg := <-events:
			c.handleEvent(msg)
		case intent := <-c.intents:
			c.handleIntent(intent)
		case q := <-c.queries:
			q.reply <- c.state
		case <-c.noticeC:
			c.noticeC = nil
			c.renderer.Notice("")
		}
	}
}

func readPump(ctx context.Context, conn *websocket.Conn, events chan<- types.ServerMessage, readErr chan<- error, log *zap.Logger) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			readErr <- err
			return
		}
		var msg types.ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Warn("malformed server message ignored", zap.Error(err))
			continue
		}
		events <- msg
	}
}

func (c *Client) handleEvent(msg types.ServerMessage) {
	switch msg.Type {
	case types.MsgGameStateUpdate:
		if msg.State == nil {
			c.log.Warn("game_state_update without state ignored")
			return
		}
		c.snap = msg.State
		c.state = c.renderer.Apply(c.snap)

	case types.MsgAwaitingStart:
		c.snap = nil
		c.state = ui.AwaitingStart(msg.Message)
		c.renderer.ApplyState(c.state)

	case types.MsgGameOver:
		c.showNotice(msg.Message)

	case types.MsgError:
		c.showNotice(msg.Message)

	default:
		// Unknown message kinds are ignored, not fatal.
		c.log.Debug("ignoring unknown message kind", zap.String("type", msg.Type))
	}
}

// showNotice surfaces a transient banner and (re)arms its dismissal timer.
func (c *Client) showNotice(msg string) {
	c.renderer.Notice(msg)
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.NewTimer(noticeTTL)
	c.noticeC = c.timer.C
}

type stateQuery struct {
	reply chan ui.State
}

// State returns the most recently derived UI state. It round-trips through
// the run loop, so callers on other goroutines never race it. Must not be
// called from a Confirmer.
func (c *Client) State() ui.State {
	q := stateQuery{reply: make(chan ui.State, 1)}
	c.queries <- q
	return <-q.reply
}

// send transmits one message, at most once. While the channel is down the
// message is dropped and the user told to wait for reconnection.
func (c *Client) send(msg types.ClientMessage) {
	if c.conn == nil {
		c.showNotice("Not connected. Waiting for reconnection...")
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("marshal failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, payload); err != nil {
		c.log.Warn("send failed", zap.String("type", msg.Type), zap.Error(err))
		c.showNotice("Send failed. Waiting for reconnection...")
	}
}
