package gorm

import (
	"time"

	"github.com/harshrai654/notes-api/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string `gorm:"unique"`
	PasswordHash string

	AuthTokens []*AuthToken `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
	Notes      []*Note      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type AuthToken struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Label string
	Value string `gorm:"unique"`
}

func fromUser(u model.User) *User {
	return &User{
		ID:           string(u.ID()),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
	}
}

func fromAuthToken(t model.AuthToken) *AuthToken {
	return &AuthToken{
		ID:      string(t.ID()),
		OwnerID: string(t.Owner()),
		Label:   t.Label(),
		Value:   t.Value(),
	}
}

type wrappedUser struct {
	u *User
}

// ID implements [model.User].
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Username implements [model.User].
func (w *wrappedUser) Username() string {
	return w.u.Username
}

// PasswordHash implements [model.User].
func (w *wrappedUser) PasswordHash() string {
	return w.u.PasswordHash
}

// CreatedAt implements [model.PersistedUser].
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

// UpdatedAt implements [model.PersistedUser].
func (w *wrappedUser) UpdatedAt() time.Time {
	return w.u.UpdatedAt
}

var _ model.PersistedUser = &wrappedUser{}

type wrappedAuthToken struct {
	t *AuthToken
}

// ID implements [model.AuthToken].
func (w *wrappedAuthToken) ID() model.AuthTokenID {
	return model.AuthTokenID(w.t.ID)
}

// Owner implements [model.AuthToken].
func (w *wrappedAuthToken) Owner() model.UserID {
	return model.UserID(w.t.OwnerID)
}

// Label implements [model.AuthToken].
func (w *wrappedAuthToken) Label() string {
	return w.t.Label
}

// Value implements [model.AuthToken].
func (w *wrappedAuthToken) Value() string {
	return w.t.Value
}

// CreatedAt implements [model.PersistedAuthToken].
func (w *wrappedAuthToken) CreatedAt() time.Time {
	return w.t.CreatedAt
}

// UpdatedAt implements [model.PersistedAuthToken].
func (w *wrappedAuthToken) UpdatedAt() time.Time {
	return w.t.UpdatedAt
}

var _ model.PersistedAuthToken = &wrappedAuthToken{}
