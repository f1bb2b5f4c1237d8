// Package cache provides a read-through cache over the user store. Users are
// immutable after registration and tokens change rarely, so a short TTL takes
// the user lookup off the hot authentication path. Notes are deliberately
// never cached: every note read must see the store's current state.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

type UserStore struct {
	backend port.UserStore

	usersByID       *expirable.LRU[model.UserID, model.PersistedUser]
	usersByUsername *expirable.LRU[string, model.PersistedUser]
	tokensByValue   *expirable.LRU[string, model.PersistedAuthToken]
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:         backend,
		usersByID:       expirable.NewLRU[model.UserID, model.PersistedUser](size, nil, ttl),
		usersByUsername: expirable.NewLRU[string, model.PersistedUser](size, nil, ttl),
		tokensByValue:   expirable.NewLRU[string, model.PersistedAuthToken](size, nil, ttl),
	}
}

var _ port.UserStore = &UserStore{}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user model.User) (model.PersistedUser, error) {
	created, err := s.backend.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.usersByID.Add(created.ID(), created)
	s.usersByUsername.Add(created.Username(), created)

	return created, nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.PersistedUser, error) {
	if user, exists := s.usersByID.Get(userID); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.usersByID.Add(user.ID(), user)

	return user, nil
}

// FindUserByUsername implements port.UserStore.
func (s *UserStore) FindUserByUsername(ctx context.Context, username string) (model.PersistedUser, error) {
	if user, exists := s.usersByUsername.Get(username); exists {
		return user, nil
	}

	user, err := s.backend.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.usersByUsername.Add(user.Username(), user)

	return user, nil
}

// UserExists implements port.UserStore.
func (s *UserStore) UserExists(ctx context.Context, userID model.UserID) (bool, error) {
	if _, exists := s.usersByID.Get(userID); exists {
		return true, nil
	}

	return s.backend.UserExists(ctx, userID)
}

// FindAuthToken implements port.UserStore.
func (s *UserStore) FindAuthToken(ctx context.Context, token string) (model.PersistedAuthToken, error) {
	if authToken, exists := s.tokensByValue.Get(token); exists {
		return authToken, nil
	}

	authToken, err := s.backend.FindAuthToken(ctx, token)
	if err != nil {
		return nil, err
	}

	s.tokensByValue.Add(authToken.Value(), authToken)

	return authToken, nil
}

// GetUserAuthTokens implements port.UserStore.
func (s *UserStore) GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.PersistedAuthToken, error) {
	return s.backend.GetUserAuthTokens(ctx, userID)
}

// CreateAuthToken implements port.UserStore.
func (s *UserStore) CreateAuthToken(ctx context.Context, token model.AuthToken) error {
	defer s.tokensByValue.Remove(token.Value())

	return s.backend.CreateAuthToken(ctx, token)
}

// DeleteAuthToken implements port.UserStore.
func (s *UserStore) DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error {
	// The value is unknown here: drop the whole token cache rather than
	// serving a deleted token until its TTL expires.
	s.tokensByValue.Purge()

	return s.backend.DeleteAuthToken(ctx, tokenID)
}
