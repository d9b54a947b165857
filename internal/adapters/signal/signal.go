// Package signal is the WebSocket transport for the chat relay: it
// owns connection lifecycles and translates wire frames to and from
// the app layer's typed events.
package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/app"
	"github.com/mohd-musheer/backendChat/internal/config"
	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

type ChatWSController struct {
	Cfg      *config.Config
	Manager  *app.Manager
	Registry *app.Registry
	Router   *app.Router
}

func NewChatWSController(cfg *config.Config, mgr *app.Manager, reg *app.Registry, router *app.Router) *ChatWSController {
	return &ChatWSController{Cfg: cfg, Manager: mgr, Registry: reg, Router: router}
}

// WsChatConn implements core.SignalConnection over a websocket.
type WsChatConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsChatConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsChatConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleChat upgrades the request and runs the connection until it
// drops. Each websocket gets its own ConnID; the browser's cookie
// token identifies the client across connections but not to the rooms.
func (ctl *ChatWSController) HandleChat(ctx context.Context, c *gin.Context) {
	cid := domain.ConnID(uuid.NewString())
	log.Info().Str("module", "signal").Str("conn", string(cid)).Str("client", c.GetString("client_token")).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.Cfg.ReadLimit)

	conn := &WsChatConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	ctl.Registry.Bind(cid, conn)
	ctx, cancel := context.WithCancel(ctx)

	go ctl.writePump(ctx, conn)
	go func() {
		defer cancel()
		ctl.readPump(ctx, cid, conn)
		ctl.disconnect(cid)
	}()
}

// disconnect runs the leave sweep before the registry entry goes away
// so departing presence events still carry the display name.
func (ctl *ChatWSController) disconnect(cid domain.ConnID) {
	ctl.Manager.Leave(cid)
	ctl.Registry.Unbind(cid)
	log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("disconnected")
}
