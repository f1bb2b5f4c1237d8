package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/adapter/memory"
	"github.com/harshrai654/notes-api/internal/core/port"
)

func TestAccountManagerSignUp(t *testing.T) {
	ctx := context.Background()
	manager := NewAccountManager(memory.NewUserStore())

	user, token, err := manager.SignUp(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("could not sign up: %+v", errors.WithStack(err))
	}

	if e, g := "alice", user.Username(); e != g {
		t.Errorf("user.Username(): expected %s, got %s", e, g)
	}

	// Passwords are never stored in clear
	if e, g := "s3cret", user.PasswordHash(); e == g {
		t.Errorf("user.PasswordHash(): expected hash, got clear password")
	}

	if token.Value() == "" {
		t.Errorf("token.Value(): expected non-empty token")
	}

	if _, _, err := manager.SignUp(ctx, "alice", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("manager.SignUp(): expected ErrUsernameTaken, got %v", err)
	}

	if _, _, err := manager.SignUp(ctx, "", "s3cret"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.SignUp(): expected ErrInvalidInput, got %v", err)
	}

	if _, _, err := manager.SignUp(ctx, "bob", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.SignUp(): expected ErrInvalidInput, got %v", err)
	}
}

func TestAccountManagerLogIn(t *testing.T) {
	ctx := context.Background()
	manager := NewAccountManager(memory.NewUserStore())

	registered, _, err := manager.SignUp(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("could not sign up: %+v", errors.WithStack(err))
	}

	user, token, err := manager.LogIn(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("could not log in: %+v", errors.WithStack(err))
	}

	if e, g := registered.ID(), user.ID(); e != g {
		t.Errorf("user.ID(): expected %s, got %s", e, g)
	}

	if token.Value() == "" {
		t.Errorf("token.Value(): expected non-empty token")
	}

	// Wrong password and unknown username are indistinguishable
	if _, _, err := manager.LogIn(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("manager.LogIn(): expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := manager.LogIn(ctx, "nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("manager.LogIn(): expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountManagerAuthenticate(t *testing.T) {
	ctx := context.Background()
	manager := NewAccountManager(memory.NewUserStore())

	registered, token, err := manager.SignUp(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("could not sign up: %+v", errors.WithStack(err))
	}

	user, err := manager.Authenticate(ctx, token.Value())
	if err != nil {
		t.Fatalf("could not authenticate: %+v", errors.WithStack(err))
	}

	if e, g := registered.ID(), user.ID(); e != g {
		t.Errorf("user.ID(): expected %s, got %s", e, g)
	}

	if _, err := manager.Authenticate(ctx, "bogus-token"); err == nil {
		t.Errorf("manager.Authenticate(): expected error for unknown token")
	}
}

func TestAccountManagerLogOut(t *testing.T) {
	ctx := context.Background()
	manager := NewAccountManager(memory.NewUserStore())

	_, token, err := manager.SignUp(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("could not sign up: %+v", errors.WithStack(err))
	}

	if err := manager.LogOut(ctx, token.Value()); err != nil {
		t.Fatalf("could not log out: %+v", errors.WithStack(err))
	}

	if _, err := manager.Authenticate(ctx, token.Value()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Authenticate(): expected port.ErrNotFound after log out, got %v", err)
	}

	if err := manager.LogOut(ctx, token.Value()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.LogOut(): expected port.ErrNotFound for a revoked token, got %v", err)
	}
}
