package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/core"
	"github.com/mohd-musheer/backendChat/internal/domain"
)

// FallbackUsername attributes events whose sender is no longer bound,
// e.g. a connection that dropped between an upload and its broadcast.
const FallbackUsername = "someone"

type connEntry struct {
	Session  core.SignalConnection
	Username string
	Rooms    map[domain.RoomID]struct{}
}

// Registry maps live connections to their session data: transport
// endpoint, chosen display name, and current room memberships. The
// membership set here drives the disconnect sweep; the Directory keeps
// the room-side index.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.ConnID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[domain.ConnID]*connEntry)}
}

func (r *Registry) Bind(cid domain.ConnID, sess core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[cid] = &connEntry{
		Session: sess,
		Rooms:   make(map[domain.RoomID]struct{}),
	}
	log.Info().Str("module", "app.registry").Str("conn", string(cid)).Msg("bound connection")
}

func (r *Registry) Unbind(cid domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, cid)
	log.Info().Str("module", "app.registry").Str("conn", string(cid)).Msg("unbound connection")
}

func (r *Registry) Session(cid domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[cid]; ok {
		return e.Session, true
	}
	return nil, false
}

// SetUsername is called on every join; only the owning connection ever
// writes its own name.
func (r *Registry) SetUsername(cid domain.ConnID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[cid]; ok {
		e.Username = name
		log.Info().Str("module", "app.registry").Str("conn", string(cid)).Str("username", name).Msg("updated username")
	}
}

// Username resolves a display name for attribution. Unknown or unnamed
// connections get the fallback placeholder.
func (r *Registry) Username(cid domain.ConnID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[cid]; ok && e.Username != "" {
		return e.Username
	}
	return FallbackUsername
}

func (r *Registry) AddRoom(cid domain.ConnID, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[cid]; ok {
		e.Rooms[room] = struct{}{}
	}
}

func (r *Registry) RemoveRoom(cid domain.ConnID, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[cid]; ok {
		delete(e.Rooms, room)
	}
}

// Rooms returns a snapshot of the connection's memberships.
func (r *Registry) Rooms(cid domain.ConnID) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.conns[cid]
	if !ok {
		return nil
	}
	out := make([]domain.RoomID, 0, len(e.Rooms))
	for room := range e.Rooms {
		out = append(out, room)
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
