package port

import (
	"context"

	"github.com/harshrai654/notes-api/internal/core/model"
)

type NoteStore interface {
	// InsertNote persists a new note and returns it with its store-assigned
	// lifecycle attributes.
	InsertNote(ctx context.Context, note model.Note) (model.PersistedNote, error)

	// GetNoteByID finds a note by its ID, or returns ErrNotFound
	GetNoteByID(ctx context.Context, id model.NoteID) (model.PersistedNote, error)

	// QueryNotesByOwner returns all notes owned by the given user, in
	// creation order.
	QueryNotesByOwner(ctx context.Context, ownerID model.UserID, opts QueryNotesOptions) ([]model.PersistedNote, int64, error)

	// UpdateNoteFields writes only the fields present in updates and returns
	// the updated note, or ErrNotFound if the note does not exist.
	UpdateNoteFields(ctx context.Context, id model.NoteID, updates NoteUpdates) (model.PersistedNote, error)

	// DeleteNote removes a note, or returns ErrNotFound if it does not exist.
	DeleteNote(ctx context.Context, id model.NoteID) error

	// AddNoteShare adds the given user to the note's shared-with set and
	// returns the updated note. Adding an already-present user is a no-op.
	// Returns ErrNotFound if the note does not exist.
	AddNoteShare(ctx context.Context, id model.NoteID, userID model.UserID) (model.PersistedNote, error)
}

type QueryNotesOptions struct {
	Page  *int
	Limit *int
}

// NoteUpdates is the write set of a partial note update. A nil field is left
// untouched by the store.
type NoteUpdates struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update would write nothing.
func (u NoteUpdates) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
