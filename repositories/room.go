//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// IRoomRepository is the Room Store.
// Rooms are created by the chat request acceptance flow and only read or deleted here.
type IRoomRepository interface {
	CreateRoom(room chat.Room) error
	GetRoom(id chat.RoomID) (chat.Room, error)
	Exists(id chat.RoomID) (bool, error)
	DeleteRoom(id chat.RoomID) (int, error)
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) RoomRepository {
	return RoomRepository{db: db, log: log}
}

// CreateRoom persists a room with its fixed participant set.
func (r RoomRepository) CreateRoom(room chat.Room) error {
	if !validID(string(room.ID)) {
		return fmt.Errorf("%w: room id %q", errors.ErrInvalidRecord, room.ID)
	}
	data, err := encodeRoom(room)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		key := roomKey(room.ID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrRoomAlreadyExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

func (r RoomRepository) GetRoom(id chat.RoomID) (chat.Room, error) {
	if !validID(string(id)) {
		return chat.Room{}, errors.ErrRoomNotFound
	}
	var room chat.Room
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		room, err = getRoom(txn, id)
		return err
	})
	return room, err
}

func (r RoomRepository) Exists(id chat.RoomID) (bool, error) {
	_, err := r.GetRoom(id)
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, errors.ErrRoomNotFound):
		return false, nil
	default:
		return false, err
	}
}

// DeleteRoom removes the room and every message of its ledger in a single transaction.
// Either everything is gone or nothing is. A second call reports ErrRoomNotFound.
// It returns the number of deleted messages.
func (r RoomRepository) DeleteRoom(id chat.RoomID) (int, error) {
	if !validID(string(id)) {
		return 0, errors.ErrRoomNotFound
	}
	var deleted int
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := getRoom(txn, id); err != nil {
			return err
		}
		keys := messageKeys(txn, id)
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return txn.Delete(roomKey(id))
	})
	if err != nil {
		return 0, err
	}
	r.log.Debug("Room deleted", "room_id", id, "messages", deleted)
	return deleted, nil
}

func getRoom(txn *badger.Txn, id chat.RoomID) (chat.Room, error) {
	item, err := txn.Get(roomKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return chat.Room{}, errors.ErrRoomNotFound
	}
	if err != nil {
		return chat.Room{}, err
	}
	var room chat.Room
	err = item.Value(func(val []byte) error {
		room, err = decodeRoom(val)
		return err
	})
	return room, err
}

// messageKeys collects the ledger keys of a room, keys only.
func messageKeys(txn *badger.Txn, id chat.RoomID) [][]byte {
	prefix := messagePrefixKey(id)
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}
