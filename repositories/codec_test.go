package repositories

import (
	"chat-room/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestDecode_Skips_Unknown_Fields(t *testing.T) {
	req := require.New(t)
	b, err := encodeUser(User{ID: "u-1", Username: "alice"})
	req.NoError(err)
	// Fields written by a newer version of the record
	b = protowire.AppendTag(b, 42, protowire.BytesType)
	b = protowire.AppendString(b, "added later")
	b = protowire.AppendTag(b, 43, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	user, err := decodeUser(b)
	req.NoError(err)
	req.Equal("alice", user.Username)
}

func TestDecode_Rejects_Truncated_Record(t *testing.T) {
	req := require.New(t)
	b := protowire.AppendTag(nil, 2, protowire.BytesType)
	b = protowire.AppendVarint(b, 10)
	b = append(b, 'a')

	_, err := decodeUser(b)
	req.ErrorIs(err, errors.ErrInvalidRecord)
}

func TestDecode_Rejects_Invalid_Message_ID(t *testing.T) {
	req := require.New(t)
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, "not-a-uuid")

	_, err := decodeMessage(b)
	req.ErrorIs(err, errors.ErrInvalidRecord)
}
