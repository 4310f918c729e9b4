package repositories

import (
	"chat-room/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	req.NoError(repository.SaveUser(User{ID: "u-1", Username: "alice", Email: "alice@example.com"}))

	user, err := repository.GetUser("u-1")
	req.NoError(err)
	req.Equal("alice", user.Username)
	req.Equal("alice@example.com", user.Email)

	_, err = repository.GetUser("u-2")
	req.ErrorIs(err, errors.ErrUserNotFound)
}
