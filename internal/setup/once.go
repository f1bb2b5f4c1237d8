package setup

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a config-driven constructor so that every
// component sharing a dependency gets the same instance.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})

		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return value, nil
	}
}

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
