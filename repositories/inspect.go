package repositories

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// RecordView is a human readable rendering of one stored record.
type RecordView struct {
	Key    string
	Kind   string
	Room   string
	Detail string
	At     time.Time
}

// Scan decodes every record under prefix, in key order.
// Records that fail to decode are reported with kind "invalid" instead of stopping the scan.
func Scan(db *badger.DB, prefix string, fn func(RecordView) error) error {
	return db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(prefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(describe(key, value)); err != nil {
				return err
			}
		}
		return nil
	})
}

func describe(key, value []byte) RecordView {
	view := RecordView{Key: string(key)}
	var err error
	switch {
	case bytes.HasPrefix(key, []byte(roomPrefix)):
		r, decodeErr := decodeRoom(value)
		err = decodeErr
		view.Kind, view.Room, view.At = "room", string(r.ID), r.CreatedAt
		participants := make([]string, len(r.Participants))
		for i, p := range r.Participants {
			participants[i] = string(p)
		}
		view.Detail = strings.Join(participants, ",")
	case bytes.HasPrefix(key, []byte(messagePrefix)):
		m, decodeErr := decodeMessage(value)
		err = decodeErr
		view.Kind, view.Room, view.At = "message", string(m.Room), m.At
		view.Detail = fmt.Sprintf("#%d %s: %s", m.Seq, m.Author, m.Content)
	case bytes.HasPrefix(key, []byte(userPrefix)):
		u, decodeErr := decodeUser(value)
		err = decodeErr
		view.Kind = "user"
		view.Detail = fmt.Sprintf("%s <%s>", u.Username, u.Email)
	default:
		view.Kind = "unknown"
		view.Detail = fmt.Sprintf("%d bytes", len(value))
	}
	if err != nil {
		view.Kind, view.Detail = "invalid", err.Error()
	}
	return view
}
