package memory

import (
	"testing"

	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestNoteStore(t *testing.T) {
	testsuite.TestNoteStore(t, func(t *testing.T) (port.NoteStore, error) {
		return NewNoteStore(), nil
	})
}
