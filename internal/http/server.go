package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

func NewServer(funcs ...OptionFunc) *Server {
	return &Server{
		opts: NewOptions(funcs...),
	}
}

// Run serves the mounted handlers until the context is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		mount := strings.TrimSuffix(s.opts.BaseURL, "/") + prefix
		slog.DebugContext(ctx, "mounting handler", slog.String("prefix", mount))
		mux.Handle(mount, http.StripPrefix(strings.TrimSuffix(mount, "/"), handler))
	}

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: sloghttp.New(slog.Default())(mux),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
			return
		}

		errs <- nil
	}()

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.InfoContext(ctx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(<-errs)
}
