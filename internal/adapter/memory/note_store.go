// Package memory provides in-process implementations of the storage and
// index ports. They back the shared port test suites and small deployments
// that can afford to lose state on restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

type noteRecord struct {
	id         model.NoteID
	owner      model.UserID
	title      string
	content    string
	sharedWith []model.UserID

	seq       int
	createdAt time.Time
	updatedAt time.Time
}

// ID implements [model.Note].
func (r *noteRecord) ID() model.NoteID {
	return r.id
}

// Owner implements [model.Note].
func (r *noteRecord) Owner() model.UserID {
	return r.owner
}

// Title implements [model.Note].
func (r *noteRecord) Title() string {
	return r.title
}

// Content implements [model.Note].
func (r *noteRecord) Content() string {
	return r.content
}

// SharedWith implements [model.Note].
func (r *noteRecord) SharedWith() []model.UserID {
	return slices.Clone(r.sharedWith)
}

// CreatedAt implements [model.PersistedNote].
func (r *noteRecord) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt implements [model.PersistedNote].
func (r *noteRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

var _ model.PersistedNote = &noteRecord{}

func (r *noteRecord) clone() *noteRecord {
	clone := *r
	clone.sharedWith = slices.Clone(r.sharedWith)
	return &clone
}

type NoteStore struct {
	mutex sync.RWMutex
	notes map[model.NoteID]*noteRecord
	seq   int
}

func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[model.NoteID]*noteRecord),
	}
}

var _ port.NoteStore = &NoteStore{}

// InsertNote implements port.NoteStore.
func (s *NoteStore) InsertNote(ctx context.Context, note model.Note) (model.PersistedNote, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.notes[note.ID()]; exists {
		return nil, errors.Errorf("note '%s' already exists", note.ID())
	}

	now := time.Now()
	s.seq++

	record := &noteRecord{
		id:         note.ID(),
		owner:      note.Owner(),
		title:      note.Title(),
		content:    note.Content(),
		sharedWith: slices.Clone(note.SharedWith()),
		seq:        s.seq,
		createdAt:  now,
		updatedAt:  now,
	}

	s.notes[record.id] = record

	return record.clone(), nil
}

// GetNoteByID implements port.NoteStore.
func (s *NoteStore) GetNoteByID(ctx context.Context, id model.NoteID) (model.PersistedNote, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.notes[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return record.clone(), nil
}

// QueryNotesByOwner implements port.NoteStore.
func (s *NoteStore) QueryNotesByOwner(ctx context.Context, ownerID model.UserID, opts port.QueryNotesOptions) ([]model.PersistedNote, int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	owned := make([]*noteRecord, 0)
	for _, record := range s.notes {
		if record.owner == ownerID {
			owned = append(owned, record)
		}
	}

	slices.SortFunc(owned, func(a, b *noteRecord) int {
		return a.seq - b.seq
	})

	total := int64(len(owned))

	// Negative values behave like unset options, as they do with gorm.
	if opts.Page != nil && opts.Limit != nil {
		offset := *opts.Page * *opts.Limit
		if offset < 0 {
			offset = 0
		}
		if offset > len(owned) {
			offset = len(owned)
		}
		owned = owned[offset:]
	}

	if opts.Limit != nil && *opts.Limit >= 0 && len(owned) > *opts.Limit {
		owned = owned[:*opts.Limit]
	}

	notes := make([]model.PersistedNote, 0, len(owned))
	for _, record := range owned {
		notes = append(notes, record.clone())
	}

	return notes, total, nil
}

// UpdateNoteFields implements port.NoteStore.
func (s *NoteStore) UpdateNoteFields(ctx context.Context, id model.NoteID, updates port.NoteUpdates) (model.PersistedNote, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.notes[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if updates.Title != nil {
		record.title = *updates.Title
	}
	if updates.Content != nil {
		record.content = *updates.Content
	}

	if !updates.IsEmpty() {
		record.updatedAt = time.Now()
	}

	return record.clone(), nil
}

// DeleteNote implements port.NoteStore.
func (s *NoteStore) DeleteNote(ctx context.Context, id model.NoteID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.notes[id]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.notes, id)

	return nil
}

// AddNoteShare implements port.NoteStore.
func (s *NoteStore) AddNoteShare(ctx context.Context, id model.NoteID, userID model.UserID) (model.PersistedNote, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.notes[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if !slices.Contains(record.sharedWith, userID) {
		record.sharedWith = append(record.sharedWith, userID)
		record.updatedAt = time.Now()
	}

	return record.clone(), nil
}
