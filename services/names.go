//go:generate go run go.uber.org/mock/mockgen -source=names.go -destination=../mocks/mock_name_resolver.go -package=mocks
package services

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	"chat-room/repositories"
	stderrors "errors"
	"log/slog"

	"github.com/dgraph-io/ristretto/v2"
)

// Sender is the public identity of a message author.
type Sender struct {
	ID       chat.UserID
	Username string
	Email    string
}

type INameResolver interface {
	Resolve(id chat.UserID) Sender
}

// NameResolver resolves user ids to display names through the user directory.
// Known users are cached, unknown ones fall back to their id and are not cached.
type NameResolver struct {
	log   *slog.Logger
	users repositories.IUserRepository
	cache *ristretto.Cache[string, Sender]
}

func NewNameResolver(log *slog.Logger, users repositories.IUserRepository, size int64) (*NameResolver, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, Sender]{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &NameResolver{log: log, users: users, cache: cache}, nil
}

func (r *NameResolver) Resolve(id chat.UserID) Sender {
	if sender, ok := r.cache.Get(string(id)); ok {
		return sender
	}

	user, err := r.users.GetUser(id)
	if err != nil {
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			r.log.Error("Unable to resolve sender name", "user_id", id, "error", err)
		}
		return Sender{ID: id, Username: string(id)}
	}

	sender := Sender{ID: user.ID, Username: user.Username, Email: user.Email}
	if sender.Username == "" {
		sender.Username = string(id)
	}
	r.cache.Set(string(id), sender, 1)
	r.cache.Wait()
	return sender
}

func (r *NameResolver) Close() {
	r.cache.Close()
}
