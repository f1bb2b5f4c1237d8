package setup

import (
	"context"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/core/service"
	"github.com/pkg/errors"
)

var getAccountManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AccountManager, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store from config")
	}

	return service.NewAccountManager(userStore), nil
})
