// Package session authenticates browser clients through a signed cookie
// carrying the principal id, the cookie-based counterpart of bearer tokens.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn"
)

const (
	sessionName = "notes-session"
	keyUserID   = "userID"
)

type Authenticator struct {
	store     sessions.Store
	userStore port.UserStore
}

func NewAuthenticator(store sessions.Store, userStore port.UserStore) *Authenticator {
	return &Authenticator{
		store:     store,
		userStore: userStore,
	}
}

// Authenticate implements [authn.Authenticator].
func (a *Authenticator) Authenticate(r *http.Request) (model.User, error) {
	session, err := a.store.Get(r, sessionName)
	if err != nil {
		// A corrupted or stale cookie is not an error, just not a session.
		return nil, nil
	}

	rawUserID, ok := session.Values[keyUserID].(string)
	if !ok || rawUserID == "" {
		return nil, nil
	}

	user, err := a.userStore.GetUserByID(r.Context(), model.UserID(rawUserID))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Authenticator{}

// Save attaches the principal to a new session cookie on the response.
func (a *Authenticator) Save(w http.ResponseWriter, r *http.Request, userID model.UserID) error {
	session, _ := a.store.New(r, sessionName)
	session.Values[keyUserID] = string(userID)

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Clear expires the session cookie.
func (a *Authenticator) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := a.store.Get(r, sessionName)
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
