package api

import (
	"net/http"
	"strconv"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/service"
	httpCtx "github.com/harshrai654/notes-api/internal/http/context"
)

type NoteResponse struct {
	Message string `json:"message,omitempty"`
	Note    Note   `json:"note"`
}

type NoteListResponse struct {
	Notes []Note `json:"notes"`
	Total int64  `json:"total"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ShareNoteRequest struct {
	UserID string `json:"userId"`
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	opts := port.QueryNotesOptions{}

	if rawPage := r.URL.Query().Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 0 {
			encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Invalid page parameter."})
			return
		}

		opts.Page = &page
	}

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Invalid limit parameter."})
			return
		}

		opts.Limit = &limit
	}

	notes, total, err := h.noteManager.List(ctx, user.ID(), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	res := NoteListResponse{
		Notes: make([]Note, 0, len(notes)),
		Total: total,
	}

	for _, n := range notes {
		res.Notes = append(res.Notes, toNote(n))
	}

	encodeResponse(w, r, http.StatusOK, res)
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload CreateNoteRequest
	if err := decodeRequest(r, &payload); err != nil {
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Title and content are required."})
		return
	}

	note, err := h.noteManager.Create(ctx, user.ID(), payload.Title, payload.Content)
	if err != nil {
		handleError(w, r, err)
		return
	}

	encodeResponse(w, r, http.StatusCreated, NoteResponse{
		Message: "Note created successfully.",
		Note:    toNote(note),
	})
}

func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	note, err := h.noteManager.Read(ctx, user.ID(), noteID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	encodeResponse(w, r, http.StatusOK, NoteResponse{
		Note: toNote(note),
	})
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	var payload UpdateNoteRequest
	if err := decodeRequest(r, &payload); err != nil {
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Nothing to update."})
		return
	}

	note, updated, err := h.noteManager.Update(ctx, user.ID(), noteID, service.NotePatch{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	message := "Note updated successfully."
	if !updated {
		message = "No data to update."
	}

	encodeResponse(w, r, http.StatusOK, NoteResponse{
		Message: message,
		Note:    toNote(note),
	})
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	if err := h.noteManager.Delete(ctx, user.ID(), noteID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleShareNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	var payload ShareNoteRequest
	if err := decodeRequest(r, &payload); err != nil {
		encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "A user to share with is required."})
		return
	}

	note, err := h.noteManager.Share(ctx, user.ID(), noteID, model.UserID(payload.UserID))
	if err != nil {
		handleError(w, r, err)
		return
	}

	encodeResponse(w, r, http.StatusOK, NoteResponse{
		Message: "Note shared successfully with user " + payload.UserID + ".",
		Note:    toNote(note),
	})
}
