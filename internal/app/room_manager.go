package app

import (
	"sync"

	"github.com/lexbridge/relay/internal/core"
	"github.com/lexbridge/relay/internal/domain"
)

type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[domain.ConversationID]core.RoomService
}

func NewRoomManager() core.RoomFactory {
	return &RoomManagerImpl{rooms: make(map[domain.ConversationID]core.RoomService)}
}

func (f *RoomManagerImpl) GetOrCreate(id domain.ConversationID) core.RoomService {
	f.mu.RLock()
	room, ok := f.rooms[id]
	f.mu.RUnlock()
	if ok {
		return room
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok = f.rooms[id]; ok {
		return room
	}
	room = core.NewRoom(id)
	f.rooms[id] = room
	return room
}

func (f *RoomManagerImpl) Get(id domain.ConversationID) (core.RoomService, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	room, ok := f.rooms[id]
	return room, ok
}

// Prune drops the room when its membership is empty. An absent key is
// equivalent to an empty room, so pruning is purely housekeeping.
func (f *RoomManagerImpl) Prune(id domain.ConversationID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok || room.MemberCount() > 0 {
		return false
	}
	delete(f.rooms, id)
	return true
}

// LeaveAll removes the connection from every room it joined and prunes the
// rooms it emptied. Used on transport close.
func (f *RoomManagerImpl) LeaveAll(id core.ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for cid, room := range f.rooms {
		room.Leave(id)
		if room.MemberCount() == 0 {
			delete(f.rooms, cid)
		}
	}
}
