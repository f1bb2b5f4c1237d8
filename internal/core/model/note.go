package model

import (
	"slices"

	"github.com/rs/xid"
)

type NoteID string

func NewNoteID() NoteID {
	return NoteID(xid.New().String())
}

type Note interface {
	WithID[NoteID]
	WithOwner

	Title() string
	Content() string

	// SharedWith returns the set of users the note is shared with. The owner
	// is never part of it.
	SharedWith() []UserID
}

// PersistedNote is a Note that has been persisted to the store.
type PersistedNote interface {
	Note
	WithLifecycle
}

// IsSharedWith reports whether the note is shared with the given user.
func IsSharedWith(note Note, userID UserID) bool {
	return slices.Contains(note.SharedWith(), userID)
}

type BaseNote struct {
	id         NoteID
	owner      UserID
	title      string
	content    string
	sharedWith []UserID
}

// ID implements Note.
func (n *BaseNote) ID() NoteID {
	return n.id
}

// Owner implements Note.
func (n *BaseNote) Owner() UserID {
	return n.owner
}

// Title implements Note.
func (n *BaseNote) Title() string {
	return n.title
}

// Content implements Note.
func (n *BaseNote) Content() string {
	return n.content
}

// SharedWith implements Note.
func (n *BaseNote) SharedWith() []UserID {
	return n.sharedWith
}

var _ Note = &BaseNote{}

func NewNote(owner UserID, title string, content string) *BaseNote {
	return &BaseNote{
		id:         NewNoteID(),
		owner:      owner,
		title:      title,
		content:    content,
		sharedWith: make([]UserID, 0),
	}
}
