package api

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// handleError maps the core error taxonomy onto stable HTTP statuses. Store
// failures stay opaque to the caller and are only logged.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		encodeResponse(w, r, http.StatusUnauthorized, ErrorResponse{Message: "Invalid username or password."})
	case errors.Is(err, service.ErrNotAuthorized):
		encodeResponse(w, r, http.StatusForbidden, ErrorResponse{Message: "You are not authorized to view this note."})
	case errors.Is(err, port.ErrNotFound):
		encodeResponse(w, r, http.StatusNotFound, ErrorResponse{Message: "Not found."})
	case errors.Is(err, service.ErrUsernameTaken):
		encodeResponse(w, r, http.StatusConflict, ErrorResponse{Message: "Username already exists."})
	default:
		slog.ErrorContext(ctx, "unexpected error", slog.Any("error", errors.WithStack(err)))
		encodeResponse(w, r, http.StatusInternalServerError, ErrorResponse{Message: "Some error occurred."})
	}
}
