package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

type userRecord struct {
	id           model.UserID
	username     string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// ID implements [model.User].
func (r *userRecord) ID() model.UserID {
	return r.id
}

// Username implements [model.User].
func (r *userRecord) Username() string {
	return r.username
}

// PasswordHash implements [model.User].
func (r *userRecord) PasswordHash() string {
	return r.passwordHash
}

// CreatedAt implements [model.PersistedUser].
func (r *userRecord) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt implements [model.PersistedUser].
func (r *userRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

var _ model.PersistedUser = &userRecord{}

type tokenRecord struct {
	id        model.AuthTokenID
	owner     model.UserID
	label     string
	value     string
	createdAt time.Time
	updatedAt time.Time
}

// ID implements [model.AuthToken].
func (r *tokenRecord) ID() model.AuthTokenID {
	return r.id
}

// Owner implements [model.AuthToken].
func (r *tokenRecord) Owner() model.UserID {
	return r.owner
}

// Label implements [model.AuthToken].
func (r *tokenRecord) Label() string {
	return r.label
}

// Value implements [model.AuthToken].
func (r *tokenRecord) Value() string {
	return r.value
}

// CreatedAt implements [model.PersistedAuthToken].
func (r *tokenRecord) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt implements [model.PersistedAuthToken].
func (r *tokenRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

var _ model.PersistedAuthToken = &tokenRecord{}

type UserStore struct {
	mutex  sync.RWMutex
	users  map[model.UserID]*userRecord
	tokens map[model.AuthTokenID]*tokenRecord
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[model.UserID]*userRecord),
		tokens: make(map[model.AuthTokenID]*tokenRecord),
	}
}

var _ port.UserStore = &UserStore{}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user model.User) (model.PersistedUser, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, record := range s.users {
		if record.username == user.Username() {
			return nil, errors.Errorf("username '%s' already exists", user.Username())
		}
	}

	now := time.Now()

	record := &userRecord{
		id:           user.ID(),
		username:     user.Username(),
		passwordHash: user.PasswordHash(),
		createdAt:    now,
		updatedAt:    now,
	}

	s.users[record.id] = record

	return record, nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.PersistedUser, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return record, nil
}

// FindUserByUsername implements port.UserStore.
func (s *UserStore) FindUserByUsername(ctx context.Context, username string) (model.PersistedUser, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, record := range s.users {
		if record.username == username {
			return record, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// UserExists implements port.UserStore.
func (s *UserStore) UserExists(ctx context.Context, userID model.UserID) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.users[userID]

	return exists, nil
}

// FindAuthToken implements port.UserStore.
func (s *UserStore) FindAuthToken(ctx context.Context, token string) (model.PersistedAuthToken, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, record := range s.tokens {
		if record.value == token {
			return record, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// GetUserAuthTokens implements port.UserStore.
func (s *UserStore) GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.PersistedAuthToken, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tokens := make([]model.PersistedAuthToken, 0)
	for _, record := range s.tokens {
		if record.owner == userID {
			tokens = append(tokens, record)
		}
	}

	return tokens, nil
}

// CreateAuthToken implements port.UserStore.
func (s *UserStore) CreateAuthToken(ctx context.Context, token model.AuthToken) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()

	s.tokens[token.ID()] = &tokenRecord{
		id:        token.ID(),
		owner:     token.Owner(),
		label:     token.Label(),
		value:     token.Value(),
		createdAt: now,
		updatedAt: now,
	}

	return nil
}

// DeleteAuthToken implements port.UserStore.
func (s *UserStore) DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.tokens, tokenID)

	return nil
}
