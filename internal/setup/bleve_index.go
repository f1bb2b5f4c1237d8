package setup

import (
	"context"
	"os"

	"github.com/blevesearch/bleve/v2"
	bleveAdapter "github.com/harshrai654/notes-api/internal/adapter/bleve"
	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/pkg/errors"
)

var getIndexFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Index, error) {
	var (
		index bleve.Index
		err   error
	)

	stat, err := os.Stat(conf.Storage.Bleve.DSN)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	if stat == nil {
		index, err = bleve.New(conf.Storage.Bleve.DSN, bleveAdapter.IndexMapping())
		if err != nil {
			return nil, errors.WithStack(err)
		}
	} else {
		index, err = bleve.Open(conf.Storage.Bleve.DSN)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return bleveAdapter.NewIndex(index), nil
})
