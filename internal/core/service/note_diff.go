package service

import (
	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

// NotePatch is a partial note update request. An empty field is treated as
// absent.
type NotePatch struct {
	Title   string
	Content string
}

func (p NotePatch) isEmpty() bool {
	for _, f := range noteFields {
		if f.patched(p) != "" {
			return false
		}
	}
	return true
}

// noteFields is the explicit field set the update diff runs over. A new
// mutable note field only takes part in no-op detection once registered here.
type noteField struct {
	name    string
	stored  func(note model.Note) string
	patched func(patch NotePatch) string
	assign  func(updates *port.NoteUpdates, value string)
}

var noteFields = []noteField{
	{
		name:    "title",
		stored:  func(note model.Note) string { return note.Title() },
		patched: func(patch NotePatch) string { return patch.Title },
		assign:  func(updates *port.NoteUpdates, value string) { updates.Title = &value },
	},
	{
		name:    "content",
		stored:  func(note model.Note) string { return note.Content() },
		patched: func(patch NotePatch) string { return patch.Content },
		assign:  func(updates *port.NoteUpdates, value string) { updates.Content = &value },
	},
}

// diffNote computes the write set of a patch against the stored note: fields
// absent from the patch or equal to the stored value are dropped.
func diffNote(note model.Note, patch NotePatch) port.NoteUpdates {
	var updates port.NoteUpdates

	for _, f := range noteFields {
		value := f.patched(patch)
		if value == "" || value == f.stored(note) {
			continue
		}

		f.assign(&updates, value)
	}

	return updates
}
