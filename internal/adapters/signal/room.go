package signal

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/app"
	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

// handleJoin applies the create-or-join contract and maps every
// rejection to its requester-only event. Rejections mutate nothing and
// are never broadcast.
func (ctl *ChatWSController) handleJoin(cid domain.ConnID, c *WsChatConn, data []byte) {
	var p core.JoinRoomRequest
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(c, "bad_payload")
		return
	}

	kind, err := domain.ParseRoomKind(p.RoomType)
	if err != nil {
		ctl.sendError(c, "bad_room_type")
		return
	}
	if err := domain.ValidateUsername(p.Username); err != nil {
		ctl.sendError(c, "invalid_username")
		return
	}

	room, err := ctl.Manager.RequestJoin(cid, domain.RoomID(p.RoomID), kind, p.Username)
	if err != nil {
		var mismatch *app.KindMismatchError
		switch {
		case errors.As(err, &mismatch):
			ctl.sendJSON(c, core.RoomTypeMismatch{
				Type:          core.OutRoomTypeMismatch,
				ExistingType:  mismatch.Existing,
				AttemptedType: mismatch.Attempted,
			})
		case errors.Is(err, app.ErrRoomFull):
			ctl.sendJSON(c, core.RoomFull{Type: core.OutRoomFull})
		case errors.Is(err, app.ErrRoomNotFound):
			ctl.sendJSON(c, core.RoomNotFound{Type: core.OutRoomNotFound})
		default:
			log.Error().Err(err).Str("module", "signal").Str("conn", string(cid)).Msg("join failed")
			ctl.sendError(c, "join_failed")
		}
		return
	}

	ctl.sendJSON(c, core.JoinSuccess{Type: core.OutJoinSuccess, RoomID: room})
}
