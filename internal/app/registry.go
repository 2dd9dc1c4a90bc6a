package app

import (
	"sync"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// Connection binds a live transport session to the identity it declared.
// Identity never changes for the lifetime of the connection record.
type Connection struct {
	ConnID core.ConnID
	UserID domain.UserID
	Role   domain.Role
}

// Registry tracks authenticated connections. It is the only owner of
// Connection records; concurrent connections from one user are tracked
// independently, keyed by ConnID.
type Registry struct {
	mu    sync.RWMutex
	conns map[core.ConnID]Connection
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[core.ConnID]Connection)}
}

// Register adds or overwrites the record for id. No uniqueness is enforced
// on UserID.
func (r *Registry) Register(id core.ConnID, userID domain.UserID, role domain.Role) Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := Connection{ConnID: id, UserID: userID, Role: role}
	r.conns[id] = c
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("user", string(userID)).Str("role", string(role)).Msg("registered")
	return c
}

// Unregister removes and returns the record so the caller can run disconnect
// side effects exactly once. ok is false when id was never registered.
func (r *Registry) Unregister(id core.ConnID) (Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	if !ok {
		return Connection{}, false
	}
	delete(r.conns, id)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("user", string(c.UserID)).Msg("unregistered")
	return c, true
}

func (r *Registry) Get(id core.ConnID) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conns[id]
	return c, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
