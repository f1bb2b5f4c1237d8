package gorm

import (
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestNoteStore(t *testing.T) {
	testsuite.TestNoteStore(t, func(t *testing.T) (port.NoteStore, error) {
		return createTestStore(t)
	})
}

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, func(t *testing.T) (port.UserStore, error) {
		return createTestStore(t)
	})
}

func createTestStore(t *testing.T) (*Store, error) {
	dsn := filepath.Join(t.TempDir(), "data.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return NewStore(db), nil
}
