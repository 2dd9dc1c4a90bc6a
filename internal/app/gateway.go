package app

import (
	"encoding/json"
	"sync"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// MemberInfo is the read-only member view sent back on join.
type MemberInfo struct {
	UserID   domain.UserID `json:"userId"`
	UserRole domain.Role   `json:"userRole"`
}

// Gateway routes every inbound transport event against the shared registry
// and room state. All event processing is serialized behind one mutex; the
// per-connection send buffers decouple delivery, so FIFO order per room
// follows from the enqueue order here.
type Gateway struct {
	mu       sync.Mutex
	registry *Registry
	rooms    core.RoomFactory
	sessions map[core.ConnID]core.ClientConn
	typing   *typingTracker
}

func NewGateway(registry *Registry, rooms core.RoomFactory) *Gateway {
	return &Gateway{
		registry: registry,
		rooms:    rooms,
		sessions: make(map[core.ConnID]core.ClientConn),
	}
}

// Connect tracks a freshly opened transport. The connection is not
// registered until it authenticates.
func (g *Gateway) Connect(id core.ConnID, conn core.ClientConn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[id] = conn
	log.Info().Str("module", "app.gateway").Str("conn", string(id)).Msg("transport connected")
}

// Disconnect runs the implicit transport-close event: leave every room,
// unregister, and announce the departure to everyone else. Safe to call for
// connections that never authenticated.
func (g *Gateway) Disconnect(id core.ConnID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rooms.LeaveAll(id)
	delete(g.sessions, id)
	if c, ok := g.registry.Unregister(id); ok {
		g.broadcastPresence("user-disconnected", c)
	}
	log.Info().Str("module", "app.gateway").Str("conn", string(id)).Msg("transport disconnected")
}

// Authenticate registers the declared identity and announces it to all other
// connections. Re-authenticating overwrites the previous record.
func (g *Gateway) Authenticate(id core.ConnID, userID domain.UserID, role domain.Role) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.registry.Register(id, userID, role)
	g.broadcastPresence("user-connected", c)
}

// Join adds the connection to the conversation's room and returns the
// current membership so a reconnecting client can resync its view.
func (g *Gateway) Join(id core.ConnID, conversationID domain.ConversationID) ([]MemberInfo, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	conn, ok := g.sessions[id]
	if !ok {
		return nil, 0
	}
	room := g.rooms.GetOrCreate(conversationID)
	room.Join(id, conn)

	members := make([]MemberInfo, 0, room.MemberCount())
	for _, cid := range room.ConnIDs() {
		if c, ok := g.registry.Get(cid); ok {
			members = append(members, MemberInfo{UserID: c.UserID, UserRole: c.Role})
		}
	}
	return members, room.MemberCount()
}

func (g *Gateway) Leave(id core.ConnID, conversationID domain.ConversationID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms.Get(conversationID)
	if !ok {
		return
	}
	room.Leave(id)
	g.rooms.Prune(conversationID)
}

// Relay fans the message out to every member of its conversation's room,
// sender included. A missing conversation id or an empty room delivers to
// nobody; neither is an error.
func (g *Gateway) Relay(msg domain.Message) core.PublishResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.relayLocked(msg)
}

func (g *Gateway) relayLocked(msg domain.Message) core.PublishResult {
	if msg.ConversationID == "" {
		log.Debug().Str("module", "app.gateway").Msg("message without conversation id dropped")
		return core.PublishResult{}
	}
	room, ok := g.rooms.Get(msg.ConversationID)
	if !ok {
		log.Debug().Str("module", "app.gateway").Str("conversation", string(msg.ConversationID)).Msg("message for empty room dropped")
		return core.PublishResult{}
	}
	frame := encodeFrame(messageEvent{Event: "new-message", Message: msg})
	if frame == nil {
		return core.PublishResult{}
	}
	return room.BroadcastAll(frame)
}

// Typing propagates the indicator to the other members of the room, never
// back to the typer. The sender must have joined the room first.
func (g *Gateway) Typing(id core.ConnID, conversationID domain.ConversationID, userID domain.UserID, isTyping bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms.Get(conversationID)
	if !ok || !room.HasMember(id) {
		return
	}
	frame := encodeFrame(typingEvent{
		Event:          "typing",
		ConversationID: conversationID,
		IsTyping:       isTyping,
		UserID:         userID,
	})
	if frame == nil {
		return
	}
	room.BroadcastExcept(id, frame)
	if g.typing != nil {
		g.typing.Track(id, conversationID, userID, isTyping)
	}
}

// ConnectedUsers reports the registered connection count for /health.
func (g *Gateway) ConnectedUsers() int {
	return g.registry.Count()
}

// broadcastPresence notifies every connection except the originating one.
// Fire-and-forget: a full send buffer only drops the event for that peer.
func (g *Gateway) broadcastPresence(event string, c Connection) {
	frame := encodeFrame(presenceEvent{Event: event, UserID: c.UserID, UserRole: c.Role})
	if frame == nil {
		return
	}
	for id, conn := range g.sessions {
		if id == c.ConnID {
			continue
		}
		if err := conn.TrySend(frame); err != nil {
			log.Warn().Str("module", "app.gateway").Str("conn", string(id)).Err(err).Msg("presence frame dropped")
		}
	}
}

// clearTyping is the typing TTL expiry path; it rebroadcasts a false
// indicator on behalf of a typer that went silent.
func (g *Gateway) clearTyping(id core.ConnID, conversationID domain.ConversationID, userID domain.UserID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms.Get(conversationID)
	if !ok {
		return
	}
	frame := encodeFrame(typingEvent{
		Event:          "typing",
		ConversationID: conversationID,
		IsTyping:       false,
		UserID:         userID,
	})
	if frame == nil {
		return
	}
	room.BroadcastExcept(id, frame)
}

type presenceEvent struct {
	Event    string        `json:"event"`
	UserID   domain.UserID `json:"userId"`
	UserRole domain.Role   `json:"userRole"`
}

type messageEvent struct {
	Event   string         `json:"event"`
	Message domain.Message `json:"message"`
}

type typingEvent struct {
	Event          string                `json:"event"`
	ConversationID domain.ConversationID `json:"conversationId"`
	IsTyping       bool                  `json:"isTyping"`
	UserID         domain.UserID         `json:"userId"`
}

func encodeFrame(v any) core.Frame {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Str("module", "app.gateway").Err(err).Msg("encode frame")
		return nil
	}
	return b
}
