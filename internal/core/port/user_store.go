package port

import (
	"context"

	"github.com/harshrai654/notes-api/internal/core/model"
)

type UserStore interface {
	// CreateUser persists a new user. Usernames are unique: creating a user
	// with an already-taken username fails.
	CreateUser(ctx context.Context, user model.User) (model.PersistedUser, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound
	GetUserByID(ctx context.Context, userID model.UserID) (model.PersistedUser, error)

	// FindUserByUsername finds a user by its unique username, or returns
	// ErrNotFound
	FindUserByUsername(ctx context.Context, username string) (model.PersistedUser, error)

	// UserExists reports whether a user with the given ID exists
	UserExists(ctx context.Context, userID model.UserID) (bool, error)

	// FindAuthToken searches for an AuthToken by its value, or returns ErrNotFound
	FindAuthToken(ctx context.Context, token string) (model.PersistedAuthToken, error)

	// GetUserAuthTokens returns all the AuthToken associated to a User
	GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.PersistedAuthToken, error)

	// CreateAuthToken creates a new AuthToken for a User
	CreateAuthToken(ctx context.Context, token model.AuthToken) error

	// DeleteAuthToken deletes an AuthToken by its ID
	DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error
}
