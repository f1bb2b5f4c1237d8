package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
)

type Note struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	User       string   `json:"user"`
	SharedWith []string `json:"sharedWith"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func toNote(n model.PersistedNote) Note {
	sharedWith := make([]string, 0, len(n.SharedWith()))
	for _, userID := range n.SharedWith() {
		sharedWith = append(sharedWith, string(userID))
	}

	return Note{
		ID:         string(n.ID()),
		Title:      n.Title(),
		Content:    n.Content(),
		User:       string(n.Owner()),
		SharedWith: sharedWith,
		CreatedAt:  n.CreatedAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:  n.UpdatedAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func encodeResponse(w http.ResponseWriter, r *http.Request, status int, res any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

func decodeRequest(r *http.Request, payload any) error {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(payload); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
