package app

import (
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

// Notifier announces stored blobs to their target room. Storage and
// retention belong to the blob store; this only routes the event.
type Notifier struct {
	reg    *Registry
	router *Router
}

func NewNotifier(reg *Registry, router *Router) *Notifier {
	return &Notifier{reg: reg, router: router}
}

// Notify dispatches a file-shared event for att into the room. The
// sender's display name is resolved now; if the connection disconnected
// between upload and notification the fallback placeholder is used.
// tempID, when set, lets the uploader match its optimistic placeholder
// to the confirmed file.
func (n *Notifier) Notify(room domain.RoomID, sender domain.ConnID, att domain.Attachment, tempID string, includeSender bool) {
	ev := core.FileShared{
		Type:         core.OutFileShared,
		Filename:     att.Filename,
		OriginalName: att.OriginalName,
		MimeType:     att.MimeType,
		Size:         att.Size,
		Path:         att.Path,
		SenderID:     sender,
		SenderName:   n.reg.Username(sender),
		TempID:       tempID,
	}
	if includeSender {
		n.router.ToRoom(room, ev)
	} else {
		n.router.ToRoomExcluding(sender, room, ev)
	}
	log.Info().Str("module", "app.attach").Str("room", string(room)).Str("file", att.Filename).Int64("size", att.Size).Msg("file shared")
}
