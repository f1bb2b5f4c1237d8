package token

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/service"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn"
)

// Authenticator resolves "Authorization: Bearer <token>" headers to the
// principal owning the token.
type Authenticator struct {
	accountManager *service.AccountManager
}

func NewAuthenticator(accountManager *service.AccountManager) *Authenticator {
	return &Authenticator{
		accountManager: accountManager,
	}
}

// Authenticate implements [authn.Authenticator].
func (a *Authenticator) Authenticate(r *http.Request) (model.User, error) {
	authorization := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authorization, "Bearer ")

	if token == "" || token == authorization {
		return nil, nil
	}

	user, err := a.accountManager.Authenticate(r.Context(), token)
	if err != nil {
		// Unknown tokens fall through to the next authenticator.
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Authenticator{}
