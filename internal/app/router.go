package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

// Router fans typed events out to a room (with or without the sender)
// or to a single connection. Sender attribution is resolved from the
// Registry at dispatch time, not cached when the message was composed,
// so a rename between composition and delivery is reflected.
type Router struct {
	Registry  *Registry
	Directory *Directory
}

func NewRouter(reg *Registry, dir *Directory) *Router {
	return &Router{Registry: reg, Directory: dir}
}

func (rt *Router) ToConn(cid domain.ConnID, v any) {
	sess, ok := rt.Registry.Session(cid)
	if !ok {
		return
	}
	rt.send(cid, sess, v)
}

func (rt *Router) ToRoom(room domain.RoomID, v any) {
	for _, cid := range rt.Directory.Members(room) {
		rt.ToConn(cid, v)
	}
}

func (rt *Router) ToRoomExcluding(sender domain.ConnID, room domain.RoomID, v any) {
	for _, cid := range rt.Directory.Members(room) {
		if cid == sender {
			continue
		}
		rt.ToConn(cid, v)
	}
}

// ChatMessage relays a text message to the room, never back to its
// sender. The client-supplied message id is echoed for ack correlation.
func (rt *Router) ChatMessage(sender domain.ConnID, room domain.RoomID, text, messageID string) {
	rt.ToRoomExcluding(sender, room, core.ChatMessage{
		Type:       core.OutChatMessage,
		Message:    text,
		MessageID:  messageID,
		SenderID:   sender,
		SenderName: rt.Registry.Username(sender),
	})
}

func (rt *Router) Typing(sender domain.ConnID, room domain.RoomID, isTyping bool) {
	rt.ToRoomExcluding(sender, room, core.Typing{
		Type:       core.OutTyping,
		SenderName: rt.Registry.Username(sender),
		IsTyping:   isTyping,
	})
}

// ReadReceipt tells the rest of the room a message was seen. Only the
// message id travels; the acknowledger stays anonymous.
func (rt *Router) ReadReceipt(sender domain.ConnID, room domain.RoomID, messageID string) {
	rt.ToRoomExcluding(sender, room, core.ReadReceipt{
		Type:      core.OutReadReceipt,
		MessageID: messageID,
	})
}

func (rt *Router) send(cid domain.ConnID, sess core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.router").Msg("marshal event")
		return
	}
	if err := sess.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "app.router").Str("conn", string(cid)).Msg("dropped frame")
	}
}
