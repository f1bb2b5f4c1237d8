package api

import (
	"net/http"
	"strconv"

	"github.com/harshrai654/notes-api/internal/core/service"
	httpCtx "github.com/harshrai654/notes-api/internal/http/context"
)

type SearchHit struct {
	Note  Note    `json:"note"`
	Score float64 `json:"score"`
}

type SearchResponse struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query().Get("q")

	funcs := make([]service.NoteManagerSearchOptionFunc, 0, 1)

	if rawSize := r.URL.Query().Get("size"); rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size < 1 {
			encodeResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: "Invalid size parameter."})
			return
		}

		funcs = append(funcs, service.WithNoteManagerSearchMaxResults(size))
	}

	results, err := h.noteManager.Search(ctx, user.ID(), query, funcs...)
	if err != nil {
		handleError(w, r, err)
		return
	}

	res := SearchResponse{
		Query: query,
		Hits:  make([]SearchHit, 0, len(results)),
	}

	for _, result := range results {
		res.Hits = append(res.Hits, SearchHit{
			Note:  toNote(result.Note),
			Score: result.Score,
		})
	}

	encodeResponse(w, r, http.StatusOK, res)
}
