package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/adapter/memory"
	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, func(t *testing.T) (port.UserStore, error) {
		return NewUserStore(memory.NewUserStore(), 32, time.Minute), nil
	})
}

func TestUserStoreDeletedTokenIsNotServedFromCache(t *testing.T) {
	ctx := context.Background()

	store := NewUserStore(memory.NewUserStore(), 32, time.Minute)

	user, err := store.CreateUser(ctx, model.NewUser("alice", "hash"))
	if err != nil {
		t.Fatalf("could not create user: %+v", errors.WithStack(err))
	}

	token := model.NewAuthToken(user.ID(), "test", "secret-value")

	if err := store.CreateAuthToken(ctx, token); err != nil {
		t.Fatalf("could not create token: %+v", errors.WithStack(err))
	}

	// Warm the cache
	if _, err := store.FindAuthToken(ctx, "secret-value"); err != nil {
		t.Fatalf("could not find token: %+v", errors.WithStack(err))
	}

	if err := store.DeleteAuthToken(ctx, token.ID()); err != nil {
		t.Fatalf("could not delete token: %+v", errors.WithStack(err))
	}

	if _, err := store.FindAuthToken(ctx, "secret-value"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("store.FindAuthToken(): expected port.ErrNotFound, got %v", err)
	}
}
