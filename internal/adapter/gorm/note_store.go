package gorm

import (
	"context"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

// InsertNote implements port.NoteStore.
func (s *Store) InsertNote(ctx context.Context, note model.Note) (model.PersistedNote, error) {
	var inserted Note

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		gormNote := fromNote(note)

		if err := db.Create(gormNote).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.Preload("Shares").First(&inserted, "id = ?", gormNote.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{&inserted}, nil
}

// GetNoteByID implements port.NoteStore.
func (s *Store) GetNoteByID(ctx context.Context, id model.NoteID) (model.PersistedNote, error) {
	var note Note

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Shares", func(db *gorm.DB) *gorm.DB {
			return db.Order("note_shares.id ASC")
		}).First(&note, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{&note}, nil
}

// QueryNotesByOwner implements port.NoteStore.
func (s *Store) QueryNotesByOwner(ctx context.Context, ownerID model.UserID, opts port.QueryNotesOptions) ([]model.PersistedNote, int64, error) {
	var (
		notes []*Note
		total int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Note{}).Where("owner_id = ?", string(ownerID))

		if err := query.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		query = query.Preload("Shares").Order("created_at ASC, id ASC")

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if opts.Page != nil && opts.Limit != nil {
			query = query.Offset(*opts.Page * *opts.Limit)
		}

		if err := query.Find(&notes).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedNote, 0, len(notes))
	for _, n := range notes {
		wrapped = append(wrapped, &wrappedNote{n})
	}

	return wrapped, total, nil
}

// UpdateNoteFields implements port.NoteStore.
func (s *Store) UpdateNoteFields(ctx context.Context, id model.NoteID, updates port.NoteUpdates) (model.PersistedNote, error) {
	var note Note

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&note, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		values := map[string]any{}
		if updates.Title != nil {
			values["title"] = *updates.Title
		}
		if updates.Content != nil {
			values["content"] = *updates.Content
		}

		if len(values) == 0 {
			return nil
		}

		if err := db.Model(&note).Updates(values).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.Preload("Shares").First(&note, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{&note}, nil
}

// DeleteNote implements port.NoteStore.
func (s *Store) DeleteNote(ctx context.Context, id model.NoteID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var note Note
		if err := db.First(&note, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if err := db.Select(clause.Associations).Delete(&note).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// AddNoteShare implements port.NoteStore.
func (s *Store) AddNoteShare(ctx context.Context, id model.NoteID, userID model.UserID) (model.PersistedNote, error) {
	var note Note

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&note, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		share := &NoteShare{
			NoteID: string(id),
			UserID: string(userID),
		}

		// Set semantics: re-sharing with the same user leaves a single row.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "note_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(share).Error
		if err != nil {
			return errors.WithStack(err)
		}

		if err := db.Preload("Shares", func(db *gorm.DB) *gorm.DB {
			return db.Order("note_shares.id ASC")
		}).First(&note, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{&note}, nil
}
