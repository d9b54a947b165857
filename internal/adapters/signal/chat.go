package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

func (ctl *ChatWSController) handleChatMessage(cid domain.ConnID, c *WsChatConn, data []byte) {
	var p core.ChatMessageRequest
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Router.ChatMessage(cid, domain.RoomID(p.RoomID), p.Message, p.MessageID)
}

func (ctl *ChatWSController) handleMessageSeen(cid domain.ConnID, c *WsChatConn, data []byte) {
	var p core.MessageSeenRequest
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad seen payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Router.ReadReceipt(cid, domain.RoomID(p.RoomID), p.MessageID)
}

func (ctl *ChatWSController) handleTyping(cid domain.ConnID, c *WsChatConn, data []byte) {
	var p core.TypingRequest
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad typing payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Router.Typing(cid, domain.RoomID(p.RoomID), p.IsTyping)
}
