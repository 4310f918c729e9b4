//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
)

// IUserRepository resolves the display identity of participants.
// Users are provisioned by the authentication flow.
type IUserRepository interface {
	SaveUser(user User) error
	GetUser(id chat.UserID) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

type User struct {
	ID       chat.UserID
	Username string
	Email    string
}

// SaveUser creates or replaces the user record.
func (u UserRepository) SaveUser(user User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
}

func (u UserRepository) GetUser(id chat.UserID) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			user, err = decodeUser(val)
			return err
		})
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}
