package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

var (
	ErrRoomFull     = errors.New("room full")
	ErrRoomNotFound = errors.New("room not found")
)

// KindMismatchError rejects a join whose requested kind differs from
// the one the room was created with.
type KindMismatchError struct {
	Existing  domain.RoomKind
	Attempted domain.RoomKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("room kind mismatch: existing %s, attempted %s", e.Existing, e.Attempted)
}

// Manager owns the room lifecycle: join with auto-create, the
// disconnect sweep, and cleanup of rooms the moment they empty.
//
// Its mutex is the single mutual-exclusion domain over join/leave
// sequences. Directory and Registry have their own locks for safe
// concurrent reads, but every multi-step transition runs under this
// one, so a join can never interleave with the leave that deletes the
// room it examined.
type Manager struct {
	mu     sync.Mutex
	dir    *Directory
	reg    *Registry
	router *Router

	// strict makes joins to absent rooms fail instead of creating
	// them. A configuration choice, not a separate code path.
	strict bool
}

func NewManager(dir *Directory, reg *Registry, router *Router, strict bool) *Manager {
	return &Manager{dir: dir, reg: reg, router: router, strict: strict}
}

// RequestJoin applies the unified create-or-join contract. An empty
// room id gets a generated one. On success the new member's name is
// recorded and a user-joined presence event goes to every member that
// was already in the room; the caller sends join-success to the
// requester itself.
func (m *Manager) RequestJoin(cid domain.ConnID, room domain.RoomID, kind domain.RoomKind, username string) (domain.RoomID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if room == "" {
		room = domain.NewRoomID()
	}

	existing, ok := m.dir.KindOf(room)
	switch {
	case !ok:
		if m.strict {
			return "", ErrRoomNotFound
		}
		if err := m.dir.Register(room, kind); err != nil {
			return "", err
		}
	case existing != kind:
		return "", &KindMismatchError{Existing: existing, Attempted: kind}
	case existing == domain.RoomPrivate && m.dir.MemberCount(room) >= domain.MaxPrivateMembers:
		return "", ErrRoomFull
	}

	m.reg.SetUsername(cid, username)

	// Snapshot the audience before adding the new member so its own
	// join is never announced to it.
	peers := m.dir.Members(room)
	m.dir.AddMember(room, cid)
	m.reg.AddRoom(cid, room)

	joined := core.UserJoined{Type: core.OutUserJoined, Username: username}
	for _, peer := range peers {
		if peer == cid {
			// Rejoining an already-joined room announces nothing.
			continue
		}
		m.router.ToConn(peer, joined)
	}

	log.Info().Str("module", "app.lifecycle").Str("conn", string(cid)).Str("room", string(room)).Str("username", username).Msg("joined room")
	return room, nil
}

// Leave sweeps every room the connection belongs to. For each room the
// user-left presence event reaches the remaining members before the
// zero-member check runs, so a two-to-one transition still notifies the
// survivor while a departing sole member notifies nobody. A room is
// unregistered the instant its membership hits zero.
func (m *Manager) Leave(cid domain.ConnID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username := m.reg.Username(cid)
	for _, room := range m.reg.Rooms(cid) {
		// A connection's own id is not a joinable room.
		if string(room) == string(cid) {
			continue
		}
		m.dir.RemoveMember(room, cid)
		m.reg.RemoveRoom(cid, room)

		m.router.ToRoom(room, core.UserLeft{Type: core.OutUserLeft, Username: username})

		if m.dir.MemberCount(room) == 0 {
			m.dir.Unregister(room)
		}
		log.Info().Str("module", "app.lifecycle").Str("conn", string(cid)).Str("room", string(room)).Msg("left room")
	}
}
