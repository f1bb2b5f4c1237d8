package setup

import (
	"context"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/pkg/errors"
)

var getNoteStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.NoteStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})
