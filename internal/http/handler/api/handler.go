package api

import (
	"net/http"

	"github.com/harshrai654/notes-api/internal/core/service"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn/session"
)

type Handler struct {
	noteManager    *service.NoteManager
	accountManager *service.AccountManager
	session        *session.Authenticator
	mux            *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(noteManager *service.NoteManager, accountManager *service.AccountManager, sessionAuth *session.Authenticator, authenticators ...authn.Authenticator) *Handler {
	h := &Handler{
		noteManager:    noteManager,
		accountManager: accountManager,
		session:        sessionAuth,
		mux:            &http.ServeMux{},
	}

	authenticated := authn.Middleware(authn.Unauthorized, authenticators...)

	h.mux.Handle("POST /auth/signup", http.HandlerFunc(h.handleSignUp))
	h.mux.Handle("POST /auth/login", http.HandlerFunc(h.handleLogIn))
	h.mux.Handle("POST /auth/logout", authenticated(http.HandlerFunc(h.handleLogOut)))
	h.mux.Handle("GET /auth/tokens", authenticated(http.HandlerFunc(h.handleListTokens)))

	h.mux.Handle("GET /notes", authenticated(http.HandlerFunc(h.handleListNotes)))
	h.mux.Handle("POST /notes", authenticated(http.HandlerFunc(h.handleCreateNote)))
	h.mux.Handle("GET /notes/{noteID}", authenticated(http.HandlerFunc(h.handleGetNote)))
	h.mux.Handle("PATCH /notes/{noteID}", authenticated(http.HandlerFunc(h.handleUpdateNote)))
	h.mux.Handle("DELETE /notes/{noteID}", authenticated(http.HandlerFunc(h.handleDeleteNote)))
	h.mux.Handle("POST /notes/{noteID}/share", authenticated(http.HandlerFunc(h.handleShareNote)))

	h.mux.Handle("GET /search", authenticated(http.HandlerFunc(h.handleSearch)))

	return h
}

var _ http.Handler = &Handler{}
