package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Username() string

	// PasswordHash returns the bcrypt hash of the user credential. It never
	// leaves the core: transport representations must not serialize it.
	PasswordHash() string
}

// PersistedUser is a User that has been persisted to the store.
type PersistedUser interface {
	User
	WithLifecycle
}

type BaseUser struct {
	id           UserID
	username     string
	passwordHash string
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Username implements User.
func (u *BaseUser) Username() string {
	return u.username
}

// PasswordHash implements User.
func (u *BaseUser) PasswordHash() string {
	return u.passwordHash
}

var _ User = &BaseUser{}

func NewUser(username string, passwordHash string) *BaseUser {
	return &BaseUser{
		id:           NewUserID(),
		username:     username,
		passwordHash: passwordHash,
	}
}
