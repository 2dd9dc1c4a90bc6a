package core

import "github.com/lexbridge/relay/internal/domain"

// Frame is an encoded server-to-client event.
type Frame []byte

// ConnID identifies one live transport session.
type ConnID string

// ClientConn abstracts the outbound half of a transport connection.
// Owned by the adapter; the adapter must Close() it.
type ClientConn interface {
	TrySend(Frame) error
	Close()
}

// PublishResult reports delivery stats to the gateway.
type PublishResult struct {
	SentTo  int
	Dropped int
}

// RoomService owns one conversation's membership set. It fans frames out but
// never touches transport resources beyond TrySend.
type RoomService interface {
	ConversationID() domain.ConversationID
	MemberCount() int
	ConnIDs() []ConnID
	HasMember(id ConnID) bool

	Join(id ConnID, conn ClientConn)
	Leave(id ConnID)

	// BroadcastAll delivers to every member, sender included.
	BroadcastAll(data Frame) PublishResult
	// BroadcastExcept delivers to every member but from.
	BroadcastExcept(from ConnID, data Frame) PublishResult
}

// RoomFactory hands out rooms, creating them implicitly on first join.
type RoomFactory interface {
	GetOrCreate(id domain.ConversationID) RoomService
	Get(id domain.ConversationID) (RoomService, bool)
	Prune(id domain.ConversationID) bool
	LeaveAll(id ConnID)
}
