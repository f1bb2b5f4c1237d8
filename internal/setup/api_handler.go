package setup

import (
	"context"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/http/handler/api"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn/session"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn/token"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	noteManager, err := getNoteManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create note manager from config")
	}

	accountManager, err := getAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create account manager from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session store from config")
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store from config")
	}

	sessionAuth := session.NewAuthenticator(sessionStore, userStore)
	tokenAuth := token.NewAuthenticator(accountManager)

	// Bearer tokens are checked first, the session cookie is the fallback.
	handler := api.NewHandler(noteManager, accountManager, sessionAuth, tokenAuth, sessionAuth)

	return handler, nil
}
