package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	httpCtx "github.com/harshrai654/notes-api/internal/http/context"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

type Token struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenListResponse struct {
	Tokens []Token `json:"tokens"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload CredentialsRequest
	if err := decodeRequest(r, &payload); err != nil {
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Username and password are required."})
		return
	}

	user, token, err := h.accountManager.SignUp(ctx, payload.Username, payload.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := h.session.Save(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not save session", slog.Any("error", errors.WithStack(err)))
	}

	encodeResponse(w, r, http.StatusCreated, AuthResponse{
		Message: "User created successfully.",
		UserID:  string(user.ID()),
		Token:   token.Value(),
	})
}

// Token values are write-only: the listing exposes metadata but never the
// credential itself.
func (h *Handler) handleListTokens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	tokens, err := h.accountManager.Tokens(ctx, user.ID())
	if err != nil {
		handleError(w, r, err)
		return
	}

	res := TokenListResponse{
		Tokens: make([]Token, 0, len(tokens)),
	}

	for _, token := range tokens {
		res.Tokens = append(res.Tokens, Token{
			ID:        string(token.ID()),
			Label:     token.Label(),
			CreatedAt: token.CreatedAt(),
		})
	}

	encodeResponse(w, r, http.StatusOK, res)
}

func (h *Handler) handleLogOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := bearerToken(r); token != "" {
		if err := h.accountManager.LogOut(ctx, token); err != nil {
			handleError(w, r, err)
			return
		}
	}

	if err := h.session.Clear(w, r); err != nil {
		slog.ErrorContext(ctx, "could not clear session", slog.Any("error", errors.WithStack(err)))
	}

	encodeResponse(w, r, http.StatusOK, AuthResponse{
		Message: "Logged out successfully.",
	})
}

func bearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authorization, "Bearer ")

	if token == authorization {
		return ""
	}

	return token
}

func (h *Handler) handleLogIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload CredentialsRequest
	if err := decodeRequest(r, &payload); err != nil {
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Username and password are required."})
		return
	}

	user, token, err := h.accountManager.LogIn(ctx, payload.Username, payload.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := h.session.Save(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not save session", slog.Any("error", errors.WithStack(err)))
	}

	encodeResponse(w, r, http.StatusOK, AuthResponse{
		Message: "Logged in successfully.",
		UserID:  string(user.ID()),
		Token:   token.Value(),
	})
}
