package core

import (
	"sync"

	"github.com/lexbridge/relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned connections.
type roomImpl struct {
	conversationID domain.ConversationID
	mu             sync.RWMutex
	members        map[ConnID]ClientConn
}

func NewRoom(id domain.ConversationID) RoomService {
	return &roomImpl{
		conversationID: id,
		members:        make(map[ConnID]ClientConn),
	}
}

func (r *roomImpl) ConversationID() domain.ConversationID { return r.conversationID }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) ConnIDs() []ConnID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ConnID, 0, len(r.members))
	for id := range r.members {
		out = append(out, id)
	}
	return out
}

func (r *roomImpl) HasMember(id ConnID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[id]
	return ok
}

// Join is idempotent; joining twice has no additional effect.
func (r *roomImpl) Join(id ConnID, conn ClientConn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; ok {
		return
	}
	r.members[id] = conn
	log.Info().Str("module", "core.room").Str("conn", string(id)).Str("conversation", string(r.conversationID)).Msg("member joined")
}

// Leave is idempotent; leaving a room you are not in is a no-op.
func (r *roomImpl) Leave(id ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return
	}
	delete(r.members, id)
	log.Info().Str("module", "core.room").Str("conn", string(id)).Str("conversation", string(r.conversationID)).Msg("member left")
}

func (r *roomImpl) BroadcastAll(data Frame) PublishResult {
	return r.broadcast("", false, data)
}

func (r *roomImpl) BroadcastExcept(from ConnID, data Frame) PublishResult {
	return r.broadcast(from, true, data)
}

func (r *roomImpl) broadcast(from ConnID, skipFrom bool, data Frame) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for id, conn := range r.members {
		if skipFrom && id == from {
			continue
		}
		if err := conn.TrySend(data); err != nil {
			res.Dropped++
			log.Warn().Str("module", "core.room").Str("conn", string(id)).Str("conversation", string(r.conversationID)).Err(err).Msg("dropped frame")
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "core.room").Str("conversation", string(r.conversationID)).Int("sent_to", res.SentTo).Int("dropped", res.Dropped).Msg("broadcast result")
	return res
}
