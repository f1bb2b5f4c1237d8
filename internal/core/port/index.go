package port

import (
	"context"

	"github.com/harshrai654/notes-api/internal/core/model"
)

// Index is the text-relevance index over note titles and contents. Matching
// is case-insensitive, stop-word aware and stemmed.
type Index interface {
	// Index adds or replaces the note in the index.
	Index(ctx context.Context, note model.PersistedNote) error

	// Remove deletes the note from the index. Removing an unindexed note is
	// a no-op.
	Remove(ctx context.Context, id model.NoteID) error

	// SearchByOwner returns the notes owned by ownerID matching the query,
	// ordered by descending relevance score, ties broken by creation order.
	SearchByOwner(ctx context.Context, ownerID model.UserID, query string, opts IndexSearchOptions) ([]*IndexSearchResult, error)
}

type IndexSearchOptions struct {
	// MaxResults caps the number of hits. Zero means the index default.
	MaxResults int
}

type IndexSearchResult struct {
	NoteID model.NoteID
	Score  float64
}
