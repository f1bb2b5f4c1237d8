package bleve

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestIndex(t *testing.T) {
	testsuite.TestIndex(t, func(t *testing.T) (port.Index, error) {
		return createTestIndex(t)
	})
}

func TestIndexStemming(t *testing.T) {
	index, err := createTestIndex(t)
	if err != nil {
		t.Fatalf("could not create index: %+v", errors.WithStack(err))
	}

	ctx := context.Background()

	note := &stubNote{
		id:        model.NewNoteID(),
		owner:     model.NewUserID(),
		title:     "Running schedule",
		content:   "Long runs on sunday mornings.",
		createdAt: time.Now(),
	}

	if err := index.Index(ctx, note); err != nil {
		t.Fatalf("could not index note: %+v", errors.WithStack(err))
	}

	// The english analyzer stems both the indexed tokens and the query.
	for _, query := range []string{"run", "runs", "running"} {
		results, err := index.SearchByOwner(ctx, note.owner, query, port.IndexSearchOptions{})
		if err != nil {
			t.Fatalf("could not search: %+v", errors.WithStack(err))
		}

		if e, g := 1, len(results); e != g {
			t.Errorf("len(results) for query '%s': expected %d, got %d", query, e, g)
		}
	}
}

func TestIndexMatchesTitleAndContentOnly(t *testing.T) {
	index, err := createTestIndex(t)
	if err != nil {
		t.Fatalf("could not create index: %+v", errors.WithStack(err))
	}

	ctx := context.Background()

	note := &stubNote{
		id:        model.NewNoteID(),
		owner:     model.NewUserID(),
		title:     "Alpha beans",
		content:   "Tomato sauce on toast.",
		createdAt: time.Now(),
	}

	if err := index.Index(ctx, note); err != nil {
		t.Fatalf("could not index note: %+v", errors.WithStack(err))
	}

	// Internal fields must never match: "note" would otherwise hit the
	// routing field of every document.
	for _, query := range []string{"note", "notes", string(note.owner)} {
		results, err := index.SearchByOwner(ctx, note.owner, query, port.IndexSearchOptions{})
		if err != nil {
			t.Fatalf("could not search: %+v", errors.WithStack(err))
		}

		if e, g := 0, len(results); e != g {
			t.Errorf("len(results) for query '%s': expected %d, got %d", query, e, g)
		}
	}

	results, err := index.SearchByOwner(ctx, note.owner, "tomato", port.IndexSearchOptions{})
	if err != nil {
		t.Fatalf("could not search: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(results); e != g {
		t.Errorf("len(results): expected %d, got %d", e, g)
	}
}

func createTestIndex(t *testing.T) (*Index, error) {
	dataDir := t.TempDir() + "/index.bleve"

	if err := os.RemoveAll(dataDir); err != nil {
		return nil, errors.WithStack(err)
	}

	bleveIndex, err := bleve.New(dataDir, IndexMapping())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	t.Cleanup(func() {
		if err := bleveIndex.Close(); err != nil {
			t.Logf("could not close index: %+v", errors.WithStack(err))
		}
	})

	return NewIndex(bleveIndex), nil
}

type stubNote struct {
	id        model.NoteID
	owner     model.UserID
	title     string
	content   string
	createdAt time.Time
}

func (n *stubNote) ID() model.NoteID {
	return n.id
}

func (n *stubNote) Owner() model.UserID {
	return n.owner
}

func (n *stubNote) Title() string {
	return n.title
}

func (n *stubNote) Content() string {
	return n.content
}

func (n *stubNote) SharedWith() []model.UserID {
	return nil
}

func (n *stubNote) CreatedAt() time.Time {
	return n.createdAt
}

func (n *stubNote) UpdatedAt() time.Time {
	return n.createdAt
}

var _ model.PersistedNote = &stubNote{}
