package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/harshrai654/notes-api/internal/core/authz"
	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/metrics"
	"github.com/pkg/errors"
)

// NoteManager orchestrates the note lifecycle: every operation loads the
// note, asks the authorization engine for a decision, then mutates through
// the store. Load, decision and mutation are not wrapped in a transaction:
// only the owner can trigger conflicting writes, and the store is the single
// point of truth for the final state.
type NoteManager struct {
	store     port.NoteStore
	userStore port.UserStore
	index     port.Index
}

func NewNoteManager(store port.NoteStore, userStore port.UserStore, index port.Index) *NoteManager {
	return &NoteManager{
		store:     store,
		userStore: userStore,
		index:     index,
	}
}

// Create persists a new note owned by ownerID with an empty shared-with set.
func (m *NoteManager) Create(ctx context.Context, ownerID model.UserID, title string, content string) (model.PersistedNote, error) {
	if title == "" || content == "" {
		return nil, errors.Wrap(ErrInvalidInput, "note title or content is required")
	}

	note, err := m.store.InsertNote(ctx, model.NewNote(ownerID, title, content))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := m.index.Index(ctx, note); err != nil {
		return nil, errors.Wrap(err, "could not index note")
	}

	metrics.TotalCreatedNotes.Add(1)

	return note, nil
}

// Read returns the full note, shared-with set included, if the requester may
// view it.
func (m *NoteManager) Read(ctx context.Context, requesterID model.UserID, noteID model.NoteID) (model.PersistedNote, error) {
	note, err := m.authorize(ctx, requesterID, noteID, authz.CapabilityRead)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return note, nil
}

// List returns all the notes owned by the requester, in creation order.
func (m *NoteManager) List(ctx context.Context, requesterID model.UserID, opts port.QueryNotesOptions) ([]model.PersistedNote, int64, error) {
	notes, total, err := m.store.QueryNotesByOwner(ctx, requesterID, opts)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return notes, total, nil
}

// Update applies a partial update to an owned note. Fields equal to the
// stored value are dropped from the write set; an empty write set elides the
// store write entirely and reports updated == false.
func (m *NoteManager) Update(ctx context.Context, requesterID model.UserID, noteID model.NoteID, patch NotePatch) (model.PersistedNote, bool, error) {
	if patch.isEmpty() {
		return nil, false, errors.Wrap(ErrInvalidInput, "note title or content is required")
	}

	note, err := m.authorize(ctx, requesterID, noteID, authz.CapabilityWrite)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	updates := diffNote(note, patch)
	if updates.IsEmpty() {
		slog.DebugContext(ctx, "eliding no-op note update", slog.String("noteID", string(noteID)))
		metrics.TotalElidedUpdates.Add(1)
		return note, false, nil
	}

	updated, err := m.store.UpdateNoteFields(ctx, noteID, updates)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	if err := m.index.Index(ctx, updated); err != nil {
		return nil, false, errors.Wrap(err, "could not reindex note")
	}

	metrics.TotalUpdatedNotes.Add(1)

	return updated, true, nil
}

// Delete removes an owned note. Deleting a nonexistent note returns
// port.ErrNotFound, for symmetry with Read and Update.
func (m *NoteManager) Delete(ctx context.Context, requesterID model.UserID, noteID model.NoteID) error {
	if _, err := m.authorize(ctx, requesterID, noteID, authz.CapabilityDelete); err != nil {
		return errors.WithStack(err)
	}

	if err := m.store.DeleteNote(ctx, noteID); err != nil {
		// Lost the benign race with a concurrent delete by the same owner.
		if !errors.Is(err, port.ErrNotFound) {
			return errors.WithStack(err)
		}
	}

	if err := m.index.Remove(ctx, noteID); err != nil {
		return errors.Wrap(err, "could not remove note from index")
	}

	metrics.TotalDeletedNotes.Add(1)

	return nil
}

// Share grants targetID read-only visibility into an owned note. The
// shared-with set has set semantics: re-sharing is a no-op, and the owner is
// never added to it.
func (m *NoteManager) Share(ctx context.Context, requesterID model.UserID, noteID model.NoteID, targetID model.UserID) (model.PersistedNote, error) {
	if targetID == "" {
		return nil, errors.Wrap(ErrInvalidInput, "destination user ID is required")
	}

	note, err := m.authorize(ctx, requesterID, noteID, authz.CapabilityShare)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	exists, err := m.userStore.UserExists(ctx, targetID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !exists {
		return nil, errors.Wrapf(port.ErrNotFound, "user '%s' does not exist", targetID)
	}

	// The owner already holds every capability.
	if targetID == note.Owner() {
		return note, nil
	}

	shared, err := m.store.AddNoteShare(ctx, noteID, targetID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalSharedNotes.Add(1)

	return shared, nil
}

type SearchResult struct {
	Note  model.PersistedNote
	Score float64
}

type NoteManagerSearchOptions struct {
	MaxResults int
}

type NoteManagerSearchOptionFunc func(opts *NoteManagerSearchOptions)

func NewNoteManagerSearchOptions(funcs ...NoteManagerSearchOptionFunc) *NoteManagerSearchOptions {
	opts := &NoteManagerSearchOptions{
		MaxResults: 10,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithNoteManagerSearchMaxResults(max int) NoteManagerSearchOptionFunc {
	return func(opts *NoteManagerSearchOptions) {
		opts.MaxResults = max
	}
}

// Search returns the requester's own notes matching the query, by descending
// relevance. Notes merely shared with the requester are not searched.
func (m *NoteManager) Search(ctx context.Context, requesterID model.UserID, query string, funcs ...NoteManagerSearchOptionFunc) ([]*SearchResult, error) {
	if query == "" {
		return nil, errors.Wrap(ErrInvalidInput, "search query is required")
	}

	metrics.TotalSearchRequests.Add(1)

	opts := NewNoteManagerSearchOptions(funcs...)

	hits, err := m.index.SearchByOwner(ctx, requesterID, query, port.IndexSearchOptions{
		MaxResults: opts.MaxResults,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]*SearchResult, 0, len(hits))

	for _, hit := range hits {
		note, err := m.store.GetNoteByID(ctx, hit.NoteID)
		if err != nil {
			// The index may briefly trail the store after a delete.
			if errors.Is(err, port.ErrNotFound) {
				slog.DebugContext(ctx, "skipping stale index hit", slog.String("noteID", string(hit.NoteID)))
				continue
			}

			return nil, errors.WithStack(err)
		}

		results = append(results, &SearchResult{
			Note:  note,
			Score: hit.Score,
		})
	}

	// The index already orders hits, but stale-hit elision and score ties
	// leave the final ordering to the service: score desc, then creation
	// order.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Note.CreatedAt().Before(results[j].Note.CreatedAt())
	})

	return results, nil
}

// authorize loads the note and evaluates the capability for the requester,
// translating the decision into the service error taxonomy.
func (m *NoteManager) authorize(ctx context.Context, requesterID model.UserID, noteID model.NoteID, capability authz.Capability) (model.PersistedNote, error) {
	if noteID == "" {
		return nil, errors.Wrap(ErrInvalidInput, "note ID is required")
	}

	note, err := m.store.GetNoteByID(ctx, noteID)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		return nil, errors.WithStack(err)
	}

	var loaded model.Note
	if note != nil {
		loaded = note
	}

	switch decision := authz.Decide(loaded, requesterID, capability); decision {
	case authz.Allow:
		return note, nil
	case authz.Deny:
		return nil, errors.Wrapf(ErrNotAuthorized, "user '%s' may not %s note '%s'", requesterID, capability, noteID)
	default:
		return nil, errors.Wrapf(port.ErrNotFound, "note '%s' does not exist", noteID)
	}
}
