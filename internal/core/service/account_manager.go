package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/crypto"
	"github.com/harshrai654/notes-api/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// AccountManager handles registration and login. Authentication yields an
// opaque auth token persisted in the user store: the rest of the system only
// ever sees the principal id the token resolves to.
type AccountManager struct {
	userStore port.UserStore
}

func NewAccountManager(userStore port.UserStore) *AccountManager {
	return &AccountManager{
		userStore: userStore,
	}
}

// SignUp registers a new user and returns it along with a fresh auth token.
func (m *AccountManager) SignUp(ctx context.Context, username string, password string) (model.PersistedUser, model.AuthToken, error) {
	if username == "" || password == "" {
		return nil, nil, errors.Wrap(ErrInvalidInput, "username and password are required")
	}

	if _, err := m.userStore.FindUserByUsername(ctx, username); err == nil {
		return nil, nil, errors.WithStack(ErrUsernameTaken)
	} else if !errors.Is(err, port.ErrNotFound) {
		return nil, nil, errors.WithStack(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	user, err := m.userStore.CreateUser(ctx, model.NewUser(username, string(hash)))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	token, err := m.issueToken(ctx, user.ID(), "sign-up")
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	metrics.TotalSignUps.Add(1)

	slog.InfoContext(ctx, "user registered", slog.String("userID", string(user.ID())))

	return user, token, nil
}

// LogIn authenticates a username/password pair and returns the user with a
// fresh auth token. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (m *AccountManager) LogIn(ctx context.Context, username string, password string) (model.PersistedUser, model.AuthToken, error) {
	if username == "" || password == "" {
		return nil, nil, errors.Wrap(ErrInvalidInput, "username and password are required")
	}

	user, err := m.userStore.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil, errors.WithStack(ErrInvalidCredentials)
		}

		return nil, nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, nil, errors.WithStack(ErrInvalidCredentials)
	}

	token, err := m.issueToken(ctx, user.ID(), "log-in")
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	metrics.TotalLogIns.Add(1)

	return user, token, nil
}

// Tokens returns the auth tokens issued to a user, oldest first.
func (m *AccountManager) Tokens(ctx context.Context, userID model.UserID) ([]model.PersistedAuthToken, error) {
	tokens, err := m.userStore.GetUserAuthTokens(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt().Before(tokens[j].CreatedAt())
	})

	return tokens, nil
}

// LogOut revokes the auth token with the given value. Revoked tokens stop
// authenticating immediately. Unknown tokens return port.ErrNotFound.
func (m *AccountManager) LogOut(ctx context.Context, token string) error {
	authToken, err := m.userStore.FindAuthToken(ctx, token)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := m.userStore.DeleteAuthToken(ctx, authToken.ID()); err != nil {
		return errors.WithStack(err)
	}

	metrics.TotalLogOuts.Add(1)

	slog.InfoContext(ctx, "user logged out", slog.String("userID", string(authToken.Owner())))

	return nil
}

// Authenticate resolves an opaque token value to its owning principal, or
// returns port.ErrNotFound.
func (m *AccountManager) Authenticate(ctx context.Context, token string) (model.PersistedUser, error) {
	authToken, err := m.userStore.FindAuthToken(ctx, token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, err := m.userStore.GetUserByID(ctx, authToken.Owner())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (m *AccountManager) issueToken(ctx context.Context, owner model.UserID, label string) (model.AuthToken, error) {
	value, err := crypto.GenerateSecureToken()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	token := model.NewAuthToken(owner, label, value)

	if err := m.userStore.CreateAuthToken(ctx, token); err != nil {
		return nil, errors.WithStack(err)
	}

	return token, nil
}
