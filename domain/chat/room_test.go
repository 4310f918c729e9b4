package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_HasParticipant(t *testing.T) {
	req := require.New(t)
	room := NewRoom("room-1", "alice", "bob", "alice")

	req.Len(room.Participants, 2)
	req.True(room.HasParticipant("alice"))
	req.True(room.HasParticipant("bob"))
	req.False(room.HasParticipant("mallory"))
}

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"  hi  ", "hi", true},
		{"hello world", "hello world", true},
		{"", "", false},
		{" \t\n ", "", false},
	}
	for _, tt := range tests {
		req := require.New(t)
		content, ok := NormalizeContent(tt.input)
		req.Equal(tt.expected, content)
		req.Equal(tt.ok, ok, "input=%q", tt.input)
	}
}

func TestQuota_Breached(t *testing.T) {
	req := require.New(t)
	quota := DefaultQuota()

	req.False(quota.Breached(QuotaState{Total: 0, Sender: 0}))
	req.False(quota.Breached(QuotaState{Total: 8, Sender: 3}))
	// The 10th message of the room
	req.True(quota.Breached(QuotaState{Total: 9, Sender: 0}))
	// The 5th message of the sender
	req.True(quota.Breached(QuotaState{Total: 4, Sender: 4}))
	req.True(Quota{MaxTotal: 1, MaxSender: 1}.Breached(QuotaState{}))
}
