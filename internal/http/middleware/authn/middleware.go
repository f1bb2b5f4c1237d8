package authn

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	httpCtx "github.com/harshrai654/notes-api/internal/http/context"
	"github.com/harshrai654/notes-api/internal/log"
)

// Authenticator resolves a request to a principal. Returning a nil user
// without error means the authenticator does not apply to this request and
// the next one is tried.
type Authenticator interface {
	Authenticate(r *http.Request) (model.User, error)
}

func Middleware(onUnauthorized http.HandlerFunc, authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(r)
				if err != nil {
					slog.ErrorContext(r.Context(), "could not authenticate user", slog.Any("error", errors.WithStack(err)))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				if user == nil {
					continue
				}

				ctx := httpCtx.SetUser(r.Context(), user)
				ctx = log.WithAttrs(ctx, slog.String("user", string(user.ID())))

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			onUnauthorized(w, r)
		}

		return fn
	}
}

// Unauthorized is the default rejection handler.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
