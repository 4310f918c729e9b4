package runtime

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"sync"
)

type Set map[chat.RoomID]struct{}

// Registry is the live subscriber table of the Broadcaster.
// It is mutated only through Subscribe, Unsubscribe, UnsubscribeAll and DropRoom,
// and read by delivery through snapshots.
type Registry struct {
	mu          sync.RWMutex
	RoomMembers map[chat.RoomID]map[contract.ConnID]contract.EventSink // room -> connections
	Sessions    map[contract.ConnID]Set                                // connection -> rooms
}

func NewRegistry() *Registry {
	return &Registry{
		RoomMembers: make(map[chat.RoomID]map[contract.ConnID]contract.EventSink),
		Sessions:    make(map[contract.ConnID]Set),
	}
}

// GetSinksForRoom returns a copy of the room's live set.
// Returns nil if the room has no subscriber.
func (r *Registry) GetSinksForRoom(roomID chat.RoomID) map[contract.ConnID]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.RoomMembers[roomID]
	if !ok {
		return nil
	}
	snapshot := make(map[contract.ConnID]contract.EventSink, len(members))
	for connID, sink := range members {
		snapshot[connID] = sink
	}
	return snapshot
}

// Subscribe adds the connection to the room's live set.
// If the room does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(connID contract.ConnID, roomID chat.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.RoomMembers[roomID]; !ok {
		r.RoomMembers[roomID] = make(map[contract.ConnID]contract.EventSink)
	}
	r.RoomMembers[roomID][connID] = sink

	if _, ok := r.Sessions[connID]; !ok {
		r.Sessions[connID] = make(Set)
	}
	r.Sessions[connID][roomID] = struct{}{}
}

// Unsubscribe removes the connection from one room.
func (r *Registry) Unsubscribe(connID contract.ConnID, roomID chat.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsubscribe(connID, roomID)
}

// UnsubscribeAll removes the connection from every room it belonged to, used on disconnect.
func (r *Registry) UnsubscribeAll(connID contract.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for roomID := range r.Sessions[connID] {
		r.unsubscribe(connID, roomID)
	}
}

// DropRoom forgets every subscription of a closed room.
func (r *Registry) DropRoom(roomID chat.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for connID := range r.RoomMembers[roomID] {
		r.unsubscribe(connID, roomID)
	}
}

// Count returns the number of (connection, room) subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, members := range r.RoomMembers {
		count += len(members)
	}
	return count
}

// unsubscribe never leaves empty sets behind.
func (r *Registry) unsubscribe(connID contract.ConnID, roomID chat.RoomID) {
	if members, ok := r.RoomMembers[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.RoomMembers, roomID)
		}
	}
	if rooms, ok := r.Sessions[connID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.Sessions, connID)
		}
	}
}
