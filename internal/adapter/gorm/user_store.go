package gorm

import (
	"context"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, user model.User) (model.PersistedUser, error) {
	var created User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		gormUser := fromUser(user)

		if err := db.Create(gormUser).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.First(&created, "id = ?", gormUser.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&created}, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.PersistedUser, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// FindUserByUsername implements port.UserStore.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (model.PersistedUser, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// UserExists implements port.UserStore.
func (s *Store) UserExists(ctx context.Context, userID model.UserID) (bool, error) {
	var exists bool

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&User{}).Where("id = ?", string(userID)).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		exists = count > 0

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return exists, nil
}

// FindAuthToken implements port.UserStore.
func (s *Store) FindAuthToken(ctx context.Context, token string) (model.PersistedAuthToken, error) {
	var authToken AuthToken

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&authToken, "value = ?", token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedAuthToken{&authToken}, nil
}

// GetUserAuthTokens implements port.UserStore.
func (s *Store) GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.PersistedAuthToken, error) {
	var tokens []*AuthToken

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("owner_id = ?", string(userID)).Order("created_at ASC").Find(&tokens).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedAuthToken, 0, len(tokens))
	for _, t := range tokens {
		wrapped = append(wrapped, &wrappedAuthToken{t})
	}

	return wrapped, nil
}

// CreateAuthToken implements port.UserStore.
func (s *Store) CreateAuthToken(ctx context.Context, token model.AuthToken) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(fromAuthToken(token)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteAuthToken implements port.UserStore.
func (s *Store) DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&AuthToken{}, "id = ?", string(tokenID)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
