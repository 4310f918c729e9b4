package chat

import "time"

const (
	DefaultMaxTotalMessages  = 10
	DefaultMaxSenderMessages = 5
)

// Quota bounds the lifetime of a room.
type Quota struct {
	MaxTotal  int
	MaxSender int
}

func DefaultQuota() Quota {
	return Quota{MaxTotal: DefaultMaxTotalMessages, MaxSender: DefaultMaxSenderMessages}
}

// QuotaState is derived from the ledger at a given instant.
type QuotaState struct {
	Total  int
	Sender int
	LastAt time.Time
}

// Breached reports whether the next message must close the room instead of being stored.
// A message that would bring a counter to its limit is never persisted, so a stored room
// always stays strictly below both limits.
func (q Quota) Breached(state QuotaState) bool {
	return state.Total+1 >= q.MaxTotal || state.Sender+1 >= q.MaxSender
}
