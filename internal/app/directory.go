package app

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/domain"
)

var ErrRoomExists = errors.New("room already registered")

// Directory is the single source of truth for which rooms exist, what
// kind each one is, and who is in them. One lock covers both the room
// table and the membership index so every mutation is atomic with
// respect to the derived member count.
type Directory struct {
	mu      sync.RWMutex
	kinds   map[domain.RoomID]domain.RoomKind
	members map[domain.RoomID]map[domain.ConnID]struct{}
}

func NewDirectory() *Directory {
	return &Directory{
		kinds:   make(map[domain.RoomID]domain.RoomKind),
		members: make(map[domain.RoomID]map[domain.ConnID]struct{}),
	}
}

func (d *Directory) Exists(id domain.RoomID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.kinds[id]
	return ok
}

func (d *Directory) KindOf(id domain.RoomID) (domain.RoomKind, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	kind, ok := d.kinds[id]
	return kind, ok
}

// Register records a fresh room. Kind cannot change afterwards; there
// is deliberately no method for that.
func (d *Directory) Register(id domain.RoomID, kind domain.RoomKind) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.kinds[id]; ok {
		return ErrRoomExists
	}
	d.kinds[id] = kind
	d.members[id] = make(map[domain.ConnID]struct{})
	log.Info().Str("module", "app.directory").Str("room", string(id)).Str("kind", string(kind)).Msg("room registered")
	return nil
}

func (d *Directory) Unregister(id domain.RoomID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.kinds, id)
	delete(d.members, id)
	log.Info().Str("module", "app.directory").Str("room", string(id)).Msg("room unregistered")
}

func (d *Directory) AddMember(id domain.RoomID, cid domain.ConnID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set, ok := d.members[id]; ok {
		set[cid] = struct{}{}
	}
}

func (d *Directory) RemoveMember(id domain.RoomID, cid domain.ConnID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set, ok := d.members[id]; ok {
		delete(set, cid)
	}
}

// Members returns a snapshot; callers may range over it while the
// directory keeps mutating.
func (d *Directory) Members(id domain.RoomID) []domain.ConnID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	set := d.members[id]
	out := make([]domain.ConnID, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	return out
}

func (d *Directory) MemberCount(id domain.RoomID) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.members[id])
}

// RoomInfo is a read-only view for the rooms API.
type RoomInfo struct {
	ID          domain.RoomID   `json:"id"`
	Kind        domain.RoomKind `json:"kind"`
	MemberCount int             `json:"memberCount"`
}

func (d *Directory) List() []RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]RoomInfo, 0, len(d.kinds))
	for id, kind := range d.kinds {
		out = append(out, RoomInfo{ID: id, Kind: kind, MemberCount: len(d.members[id])})
	}
	return out
}
