package setup

import (
	"context"
	netHTTP "net/http"

	"github.com/harshrai654/notes-api/internal/config"
	"github.com/harshrai654/notes-api/internal/http"
	"github.com/harshrai654/notes-api/internal/http/handler/metrics"
	"github.com/harshrai654/notes-api/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	middlewares := make([]func(netHTTP.Handler) netHTTP.Handler, 0, 2)

	if conf.HTTP.RateLimit.Enabled {
		middlewares = append(middlewares, ratelimit.Middleware(ratelimit.Options{
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
			Interval:     conf.HTTP.RateLimit.Interval,
			MaxBurst:     conf.HTTP.RateLimit.MaxBurst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			CacheTTL:     conf.HTTP.RateLimit.CacheTTL,
		}))
	}

	if len(conf.HTTP.CORS.AllowedOrigins) > 0 {
		middlewares = append(middlewares, cors.New(cors.Options{
			AllowedOrigins:   conf.HTTP.CORS.AllowedOrigins,
			AllowedMethods:   []string{netHTTP.MethodGet, netHTTP.MethodPost, netHTTP.MethodPatch, netHTTP.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler)
	}

	wrap := func(handler netHTTP.Handler) netHTTP.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}

		return handler
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/api/v1/", wrap(api)),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	server := http.NewServer(options...)

	return server, nil
}
