package testsuite

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

func TestUserStore(t *testing.T, factory func(t *testing.T) (port.UserStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.UserStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndFind",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				created, err := store.CreateUser(ctx, model.NewUser("alice", "hash"))
				if err != nil {
					return errors.WithStack(err)
				}

				byID, err := store.GetUserByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "alice", byID.Username(); e != g {
					t.Errorf("byID.Username(): expected %s, got %s", e, g)
				}

				byUsername, err := store.FindUserByUsername(ctx, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := created.ID(), byUsername.ID(); e != g {
					t.Errorf("byUsername.ID(): expected %s, got %s", e, g)
				}

				exists, err := store.UserExists(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if !exists {
					t.Errorf("store.UserExists(): expected true")
				}

				exists, err = store.UserExists(ctx, model.NewUserID())
				if err != nil {
					return errors.WithStack(err)
				}

				if exists {
					t.Errorf("store.UserExists(): expected false")
				}

				return nil
			},
		},
		{
			Name: "UnknownUser",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.GetUserByID(): expected port.ErrNotFound, got %v", err)
				}

				if _, err := store.FindUserByUsername(ctx, "nobody"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.FindUserByUsername(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "UsernameIsUnique",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				if _, err := store.CreateUser(ctx, model.NewUser("bob", "hash")); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateUser(ctx, model.NewUser("bob", "other-hash")); err == nil {
					t.Errorf("store.CreateUser(): expected error on duplicate username")
				}

				return nil
			},
		},
		{
			Name: "AuthTokenLifecycle",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				user, err := store.CreateUser(ctx, model.NewUser("carol", "hash"))
				if err != nil {
					return errors.WithStack(err)
				}

				token := model.NewAuthToken(user.ID(), "test", "secret-value")

				if err := store.CreateAuthToken(ctx, token); err != nil {
					return errors.WithStack(err)
				}

				found, err := store.FindAuthToken(ctx, "secret-value")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := user.ID(), found.Owner(); e != g {
					t.Errorf("found.Owner(): expected %s, got %s", e, g)
				}

				if e, g := "test", found.Label(); e != g {
					t.Errorf("found.Label(): expected %s, got %s", e, g)
				}

				tokens, err := store.GetUserAuthTokens(ctx, user.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(tokens); e != g {
					t.Fatalf("len(tokens): expected %d, got %d", e, g)
				}

				if err := store.DeleteAuthToken(ctx, found.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.FindAuthToken(ctx, "secret-value"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.FindAuthToken(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}
