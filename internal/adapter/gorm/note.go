package gorm

import (
	"time"

	"github.com/harshrai654/notes-api/internal/core/model"
)

// Note is the GORM model for notes.
type Note struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Title   string
	Content string

	OwnerID string `gorm:"index"`
	Owner   *User

	Shares []*NoteShare `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE;"`
}

// NoteShare is one entry of a note's shared-with set. The unique
// (note_id, user_id) index gives the set its semantics at the store level.
type NoteShare struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time

	Note   *Note
	NoteID string `gorm:"index:note_share_index,unique"`

	User   *User
	UserID string `gorm:"index:note_share_index,unique"`
}

func fromNote(n model.Note) *Note {
	shares := make([]*NoteShare, 0, len(n.SharedWith()))
	for _, userID := range n.SharedWith() {
		shares = append(shares, &NoteShare{
			NoteID: string(n.ID()),
			UserID: string(userID),
		})
	}

	return &Note{
		ID:      string(n.ID()),
		Title:   n.Title(),
		Content: n.Content(),
		OwnerID: string(n.Owner()),
		Shares:  shares,
	}
}

type wrappedNote struct {
	n *Note
}

// ID implements [model.Note].
func (w *wrappedNote) ID() model.NoteID {
	return model.NoteID(w.n.ID)
}

// Owner implements [model.Note].
func (w *wrappedNote) Owner() model.UserID {
	return model.UserID(w.n.OwnerID)
}

// Title implements [model.Note].
func (w *wrappedNote) Title() string {
	return w.n.Title
}

// Content implements [model.Note].
func (w *wrappedNote) Content() string {
	return w.n.Content
}

// SharedWith implements [model.Note].
func (w *wrappedNote) SharedWith() []model.UserID {
	sharedWith := make([]model.UserID, 0, len(w.n.Shares))
	for _, share := range w.n.Shares {
		sharedWith = append(sharedWith, model.UserID(share.UserID))
	}

	return sharedWith
}

// CreatedAt implements [model.PersistedNote].
func (w *wrappedNote) CreatedAt() time.Time {
	return w.n.CreatedAt
}

// UpdatedAt implements [model.PersistedNote].
func (w *wrappedNote) UpdatedAt() time.Time {
	return w.n.UpdatedAt
}

var _ model.PersistedNote = &wrappedNote{}
