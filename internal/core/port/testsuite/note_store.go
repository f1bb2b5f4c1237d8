package testsuite

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

func TestNoteStore(t *testing.T, factory func(t *testing.T) (port.NoteStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.NoteStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "InsertAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()

				inserted, err := store.InsertNote(ctx, model.NewNote(owner, "Groceries", "milk, eggs"))
				if err != nil {
					return errors.WithStack(err)
				}

				note, err := store.GetNoteByID(ctx, inserted.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("note: %s", spew.Sdump(note))

				if e, g := inserted.ID(), note.ID(); e != g {
					t.Errorf("note.ID(): expected %s, got %s", e, g)
				}

				if e, g := "Groceries", note.Title(); e != g {
					t.Errorf("note.Title(): expected %s, got %s", e, g)
				}

				if e, g := "milk, eggs", note.Content(); e != g {
					t.Errorf("note.Content(): expected %s, got %s", e, g)
				}

				if e, g := owner, note.Owner(); e != g {
					t.Errorf("note.Owner(): expected %s, got %s", e, g)
				}

				if e, g := 0, len(note.SharedWith()); e != g {
					t.Errorf("len(note.SharedWith()): expected %d, got %d", e, g)
				}

				if note.CreatedAt().IsZero() {
					t.Errorf("note.CreatedAt(): expected non-zero time")
				}

				return nil
			},
		},
		{
			Name: "GetUnknownNote",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				if _, err := store.GetNoteByID(ctx, model.NewNoteID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.GetNoteByID(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "QueryByOwner",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()
				other := model.NewUserID()

				titles := []string{"first", "second", "third"}
				for _, title := range titles {
					if _, err := store.InsertNote(ctx, model.NewNote(owner, title, "content")); err != nil {
						return errors.WithStack(err)
					}
				}

				if _, err := store.InsertNote(ctx, model.NewNote(other, "not mine", "content")); err != nil {
					return errors.WithStack(err)
				}

				notes, total, err := store.QueryNotesByOwner(ctx, owner, port.QueryNotesOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 3, len(notes); e != g {
					t.Fatalf("len(notes): expected %d, got %d", e, g)
				}

				// Creation order
				for i, title := range titles {
					if e, g := title, notes[i].Title(); e != g {
						t.Errorf("notes[%d].Title(): expected %s, got %s", i, e, g)
					}
				}

				limit := 2
				page := 1

				paged, total, err := store.QueryNotesByOwner(ctx, owner, port.QueryNotesOptions{
					Page:  &page,
					Limit: &limit,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 1, len(paged); e != g {
					t.Fatalf("len(paged): expected %d, got %d", e, g)
				}

				if e, g := "third", paged[0].Title(); e != g {
					t.Errorf("paged[0].Title(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "NegativePaginationIsIgnored",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()

				titles := []string{"first", "second", "third"}
				for _, title := range titles {
					if _, err := store.InsertNote(ctx, model.NewNote(owner, title, "content")); err != nil {
						return errors.WithStack(err)
					}
				}

				page := -1
				limit := 2

				notes, total, err := store.QueryNotesByOwner(ctx, owner, port.QueryNotesOptions{
					Page:  &page,
					Limit: &limit,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 2, len(notes); e != g {
					t.Fatalf("len(notes): expected %d, got %d", e, g)
				}

				if e, g := "first", notes[0].Title(); e != g {
					t.Errorf("notes[0].Title(): expected %s, got %s", e, g)
				}

				page = 1
				limit = -5

				notes, _, err = store.QueryNotesByOwner(ctx, owner, port.QueryNotesOptions{
					Page:  &page,
					Limit: &limit,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(notes); e != g {
					t.Fatalf("len(notes): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateFields",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()

				inserted, err := store.InsertNote(ctx, model.NewNote(owner, "draft", "original"))
				if err != nil {
					return errors.WithStack(err)
				}

				title := "final"

				updated, err := store.UpdateNoteFields(ctx, inserted.ID(), port.NoteUpdates{
					Title: &title,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "final", updated.Title(); e != g {
					t.Errorf("updated.Title(): expected %s, got %s", e, g)
				}

				// Absent fields are left untouched
				if e, g := "original", updated.Content(); e != g {
					t.Errorf("updated.Content(): expected %s, got %s", e, g)
				}

				if _, err := store.UpdateNoteFields(ctx, model.NewNoteID(), port.NoteUpdates{Title: &title}); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.UpdateNoteFields(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()

				inserted, err := store.InsertNote(ctx, model.NewNote(owner, "ephemeral", "content"))
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteNote(ctx, inserted.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetNoteByID(ctx, inserted.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.GetNoteByID(): expected port.ErrNotFound, got %v", err)
				}

				if err := store.DeleteNote(ctx, inserted.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.DeleteNote(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "AddShareIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, store port.NoteStore) error {
				owner := model.NewUserID()
				friend := model.NewUserID()

				inserted, err := store.InsertNote(ctx, model.NewNote(owner, "shared", "content"))
				if err != nil {
					return errors.WithStack(err)
				}

				shared, err := store.AddNoteShare(ctx, inserted.ID(), friend)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(shared.SharedWith()); e != g {
					t.Fatalf("len(shared.SharedWith()): expected %d, got %d", e, g)
				}

				if e, g := friend, shared.SharedWith()[0]; e != g {
					t.Errorf("shared.SharedWith()[0]: expected %s, got %s", e, g)
				}

				again, err := store.AddNoteShare(ctx, inserted.ID(), friend)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(again.SharedWith()); e != g {
					t.Errorf("len(again.SharedWith()): expected %d, got %d", e, g)
				}

				if _, err := store.AddNoteShare(ctx, model.NewNoteID(), friend); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("store.AddNoteShare(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}
