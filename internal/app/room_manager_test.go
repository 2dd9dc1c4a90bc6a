package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameRoom(t *testing.T) {
	rm := NewRoomManager()

	r1 := rm.GetOrCreate("c1")
	r2 := rm.GetOrCreate("c1")

	assert.Same(t, r1, r2)
	assert.Equal(t, r1.ConversationID(), r2.ConversationID())
}

func TestGetMissesUnknownConversation(t *testing.T) {
	rm := NewRoomManager()

	_, ok := rm.Get("nobody")

	assert.False(t, ok)
}

func TestPruneRemovesOnlyEmptyRooms(t *testing.T) {
	rm := NewRoomManager()
	occupied := rm.GetOrCreate("busy")
	occupied.Join("a", &fakeConn{})
	rm.GetOrCreate("idle")

	rm.Prune("busy")
	rm.Prune("idle")

	_, ok := rm.Get("busy")
	assert.True(t, ok)
	_, ok = rm.Get("idle")
	assert.False(t, ok)
}

func TestLeaveAllDropsConnFromEveryRoom(t *testing.T) {
	rm := NewRoomManager()
	conn := &fakeConn{}
	other := &fakeConn{}
	rm.GetOrCreate("c1").Join("a", conn)
	rm.GetOrCreate("c2").Join("a", conn)
	rm.GetOrCreate("c2").Join("b", other)

	rm.LeaveAll("a")

	// c1 emptied out and was reaped, c2 survives with its other member.
	_, ok := rm.Get("c1")
	assert.False(t, ok)
	r, ok := rm.Get("c2")
	require.True(t, ok)
	assert.Equal(t, 1, r.MemberCount())
	assert.False(t, r.HasMember("a"))
	assert.True(t, r.HasMember("b"))
}
