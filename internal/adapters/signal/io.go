package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

func (ctl *ChatWSController) writePump(ctx context.Context, c *WsChatConn) {
	ticker := time.NewTicker(ctl.Cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *ChatWSController) readPump(ctx context.Context, cid domain.ConnID, c *WsChatConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("readPump closing")
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn().Err(err).Str("module", "signal").Str("conn", string(cid)).Msg("readPump read error")
				}
				return
			}
			ctl.handleFrame(cid, c, data)
		}
	}
}

func (ctl *ChatWSController) handleFrame(cid domain.ConnID, c *WsChatConn, data []byte) {
	var env core.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "bad_payload")
		return
	}

	switch env.Type {
	case core.InJoinRoom:
		ctl.handleJoin(cid, c, data)
	case core.InChatMessage:
		ctl.handleChatMessage(cid, c, data)
	case core.InMessageSeen:
		ctl.handleMessageSeen(cid, c, data)
	case core.InTyping:
		ctl.handleTyping(cid, c, data)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown event")
		ctl.sendError(c, "unknown_event")
	}
}

func (ctl *ChatWSController) sendJSON(c *WsChatConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}

func (ctl *ChatWSController) sendError(c *WsChatConn, msg string) {
	ctl.sendJSON(c, core.ErrorEvent{Type: core.OutError, Error: msg})
}
