//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// IMessageRepository is the Message Ledger, an append-only ordered log per room.
type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	QuotaState(room chat.RoomID, sender chat.UserID) (chat.QuotaState, error)
	GetMessages(room chat.RoomID) ([]DiskMessage, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

type DiskMessage struct {
	ID      uuid.UUID
	Room    chat.RoomID
	Author  chat.UserID
	Content string
	Kind    chat.MessageKind
	Seq     int
	At      time.Time
}

// StoreMessage appends a message at position Seq of its room ledger.
// The room record is read in the same transaction, so a message is never written
// for a room that no longer exists. An occupied position is rejected.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	if message.Seq <= 0 {
		return fmt.Errorf("%w: sequence %d", errors.ErrInvalidRecord, message.Seq)
	}
	if !validID(string(message.Room)) {
		return errors.ErrRoomNotFound
	}
	data, err := encodeMessage(message)
	if err != nil {
		return err
	}
	key := messageKey(message.Room, message.Seq)
	return m.db.Update(func(txn *badger.Txn) error {
		if _, err := getRoom(txn, message.Room); err != nil {
			return err
		}
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: sequence %d already used in room %s",
				errors.ErrInvalidRecord, message.Seq, message.Room)
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

// QuotaState derives the room counters from the ledger as of now.
func (m MessageRepository) QuotaState(room chat.RoomID, sender chat.UserID) (chat.QuotaState, error) {
	var state chat.QuotaState
	err := m.db.View(func(txn *badger.Txn) error {
		return scanMessages(txn, room, func(message DiskMessage) {
			state.Total++
			if message.Author == sender {
				state.Sender++
			}
			if message.At.After(state.LastAt) {
				state.LastAt = message.At
			}
		})
	})
	return state, err
}

// GetMessages returns the whole ledger of a room in creation order.
func (m MessageRepository) GetMessages(room chat.RoomID) ([]DiskMessage, error) {
	var messages []DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		return scanMessages(txn, room, func(message DiskMessage) {
			messages = append(messages, message)
		})
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func scanMessages(txn *badger.Txn, room chat.RoomID, fn func(DiskMessage)) error {
	if !validID(string(room)) {
		return nil
	}
	prefix := messagePrefixKey(room)
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		err := item.Value(func(val []byte) error {
			message, err := decodeMessage(val)
			if err != nil {
				return fmt.Errorf("key %s: %w", item.Key(), err)
			}
			fn(message)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
