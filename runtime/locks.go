package runtime

import (
	"chat-room/domain/chat"
	"sync"
)

type roomLock struct {
	mu   sync.Mutex
	refs int
}

// RoomLocks provides one exclusive critical section per room.
// Different rooms never contend, and entries are released once nobody holds or waits for them.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[chat.RoomID]*roomLock
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[chat.RoomID]*roomLock)}
}

// Lock blocks until the room's critical section is acquired and returns its release function.
func (l *RoomLocks) Lock(roomID chat.RoomID) func() {
	l.mu.Lock()
	lock, ok := l.locks[roomID]
	if !ok {
		lock = &roomLock{}
		l.locks[roomID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, roomID)
		}
		l.mu.Unlock()
	}
}

// WithLock runs fn inside the room's critical section.
func (l *RoomLocks) WithLock(roomID chat.RoomID, fn func() error) error {
	unlock := l.Lock(roomID)
	defer unlock()
	return fn()
}

// Len returns the number of rooms currently locked or awaited.
func (l *RoomLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
