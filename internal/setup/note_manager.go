package setup

import (
	"context"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/core/service"
	"github.com/pkg/errors"
)

var getNoteManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.NoteManager, error) {
	store, err := getNoteStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create note store from config")
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store from config")
	}

	index, err := getIndexFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create index from config")
	}

	return service.NewNoteManager(store, userStore, index), nil
})
