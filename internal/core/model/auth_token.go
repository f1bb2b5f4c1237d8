package model

import (
	"github.com/rs/xid"
)

type AuthTokenID string

func NewAuthTokenID() AuthTokenID {
	return AuthTokenID(xid.New().String())
}

// AuthToken is an opaque credential attached to a user. Presenting its value
// authenticates the bearer as the owning principal.
type AuthToken interface {
	WithID[AuthTokenID]

	Owner() UserID
	Label() string
	Value() string
}

type PersistedAuthToken interface {
	AuthToken
	WithLifecycle
}

type BaseAuthToken struct {
	id    AuthTokenID
	owner UserID
	label string
	value string
}

// ID implements AuthToken.
func (t *BaseAuthToken) ID() AuthTokenID {
	return t.id
}

// Owner implements AuthToken.
func (t *BaseAuthToken) Owner() UserID {
	return t.owner
}

// Label implements AuthToken.
func (t *BaseAuthToken) Label() string {
	return t.label
}

// Value implements AuthToken.
func (t *BaseAuthToken) Value() string {
	return t.value
}

var _ AuthToken = &BaseAuthToken{}

func NewAuthToken(owner UserID, label string, value string) *BaseAuthToken {
	return &BaseAuthToken{
		id:    NewAuthTokenID(),
		owner: owner,
		label: label,
		value: value,
	}
}
