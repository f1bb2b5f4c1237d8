package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/adapter/memory"
	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

func createTestNoteManager(t *testing.T) (*NoteManager, port.UserStore) {
	userStore := memory.NewUserStore()
	return NewNoteManager(memory.NewNoteStore(), userStore, memory.NewIndex()), userStore
}

func createTestUser(t *testing.T, userStore port.UserStore, username string) model.PersistedUser {
	user, err := userStore.CreateUser(context.Background(), model.NewUser(username, "hash"))
	if err != nil {
		t.Fatalf("could not create user: %+v", errors.WithStack(err))
	}

	return user
}

func TestNoteManagerCreate(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)
	owner := createTestUser(t, userStore, "alice")

	note, err := manager.Create(ctx, owner.ID(), "Groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	if e, g := owner.ID(), note.Owner(); e != g {
		t.Errorf("note.Owner(): expected %s, got %s", e, g)
	}

	if e, g := 0, len(note.SharedWith()); e != g {
		t.Errorf("len(note.SharedWith()): expected %d, got %d", e, g)
	}

	if _, err := manager.Create(ctx, owner.ID(), "", "content"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.Create(): expected ErrInvalidInput, got %v", err)
	}

	if _, err := manager.Create(ctx, owner.ID(), "title", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.Create(): expected ErrInvalidInput, got %v", err)
	}
}

func TestNoteManagerReadAuthorization(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)

	owner := createTestUser(t, userStore, "alice")
	recipient := createTestUser(t, userStore, "bob")
	stranger := createTestUser(t, userStore, "mallory")

	note, err := manager.Create(ctx, owner.ID(), "Secret plans", "world domination")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	// Only the owner can view before any share
	if _, err := manager.Read(ctx, recipient.ID(), note.ID()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("manager.Read(): expected ErrNotAuthorized, got %v", err)
	}

	if _, err := manager.Share(ctx, owner.ID(), note.ID(), recipient.ID()); err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	read, err := manager.Read(ctx, recipient.ID(), note.ID())
	if err != nil {
		t.Fatalf("could not read shared note: %+v", errors.WithStack(err))
	}

	// The recipient sees the full note, shared-with set included
	if e, g := "world domination", read.Content(); e != g {
		t.Errorf("read.Content(): expected %s, got %s", e, g)
	}

	if e, g := 1, len(read.SharedWith()); e != g {
		t.Errorf("len(read.SharedWith()): expected %d, got %d", e, g)
	}

	if _, err := manager.Read(ctx, stranger.ID(), note.ID()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("manager.Read(): expected ErrNotAuthorized, got %v", err)
	}

	if _, err := manager.Read(ctx, owner.ID(), model.NewNoteID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Read(): expected port.ErrNotFound, got %v", err)
	}
}

func TestNoteManagerUpdate(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)

	owner := createTestUser(t, userStore, "alice")
	recipient := createTestUser(t, userStore, "bob")

	note, err := manager.Create(ctx, owner.ID(), "draft", "original")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	if _, err := manager.Share(ctx, owner.ID(), note.ID(), recipient.ID()); err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	// Sharing never grants write
	if _, _, err := manager.Update(ctx, recipient.ID(), note.ID(), NotePatch{Title: "hijacked"}); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("manager.Update(): expected ErrNotAuthorized, got %v", err)
	}

	updated, wrote, err := manager.Update(ctx, owner.ID(), note.ID(), NotePatch{Title: "final"})
	if err != nil {
		t.Fatalf("could not update note: %+v", errors.WithStack(err))
	}

	if !wrote {
		t.Errorf("wrote: expected true")
	}

	if e, g := "final", updated.Title(); e != g {
		t.Errorf("updated.Title(): expected %s, got %s", e, g)
	}

	if e, g := "original", updated.Content(); e != g {
		t.Errorf("updated.Content(): expected %s, got %s", e, g)
	}

	// A patch equal to the stored state elides the write
	same, wrote, err := manager.Update(ctx, owner.ID(), note.ID(), NotePatch{Title: "final", Content: "original"})
	if err != nil {
		t.Fatalf("could not update note: %+v", errors.WithStack(err))
	}

	if wrote {
		t.Errorf("wrote: expected false")
	}

	if e, g := "final", same.Title(); e != g {
		t.Errorf("same.Title(): expected %s, got %s", e, g)
	}

	// An empty patch is invalid, not a no-op
	if _, _, err := manager.Update(ctx, owner.ID(), note.ID(), NotePatch{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.Update(): expected ErrInvalidInput, got %v", err)
	}

	if _, _, err := manager.Update(ctx, owner.ID(), model.NewNoteID(), NotePatch{Title: "x"}); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Update(): expected port.ErrNotFound, got %v", err)
	}
}

func TestNoteManagerDelete(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)

	owner := createTestUser(t, userStore, "alice")
	recipient := createTestUser(t, userStore, "bob")

	note, err := manager.Create(ctx, owner.ID(), "ephemeral", "delete me")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	if _, err := manager.Share(ctx, owner.ID(), note.ID(), recipient.ID()); err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	if err := manager.Delete(ctx, recipient.ID(), note.ID()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("manager.Delete(): expected ErrNotAuthorized, got %v", err)
	}

	if err := manager.Delete(ctx, owner.ID(), note.ID()); err != nil {
		t.Fatalf("could not delete note: %+v", errors.WithStack(err))
	}

	if _, err := manager.Read(ctx, owner.ID(), note.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Read(): expected port.ErrNotFound, got %v", err)
	}

	// The deleted note no longer surfaces in search
	results, err := manager.Search(ctx, owner.ID(), "ephemeral")
	if err != nil {
		t.Fatalf("could not search: %+v", errors.WithStack(err))
	}

	if e, g := 0, len(results); e != g {
		t.Errorf("len(results): expected %d, got %d", e, g)
	}

	if err := manager.Delete(ctx, owner.ID(), note.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Delete(): expected port.ErrNotFound, got %v", err)
	}
}

func TestNoteManagerShare(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)

	owner := createTestUser(t, userStore, "alice")
	recipient := createTestUser(t, userStore, "bob")

	note, err := manager.Create(ctx, owner.ID(), "shared", "content")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	shared, err := manager.Share(ctx, owner.ID(), note.ID(), recipient.ID())
	if err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(shared.SharedWith()); e != g {
		t.Fatalf("len(shared.SharedWith()): expected %d, got %d", e, g)
	}

	// Re-sharing with the same user is a no-op
	again, err := manager.Share(ctx, owner.ID(), note.ID(), recipient.ID())
	if err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(again.SharedWith()); e != g {
		t.Errorf("len(again.SharedWith()): expected %d, got %d", e, g)
	}

	// Sharing with the owner never adds them to the set
	self, err := manager.Share(ctx, owner.ID(), note.ID(), owner.ID())
	if err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(self.SharedWith()); e != g {
		t.Errorf("len(self.SharedWith()): expected %d, got %d", e, g)
	}

	// Sharing with an unknown user is NotFound
	if _, err := manager.Share(ctx, owner.ID(), note.ID(), model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("manager.Share(): expected port.ErrNotFound, got %v", err)
	}

	if _, err := manager.Share(ctx, owner.ID(), note.ID(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.Share(): expected ErrInvalidInput, got %v", err)
	}

	// The recipient cannot re-share the note
	if _, err := manager.Share(ctx, recipient.ID(), note.ID(), model.NewUserID()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("manager.Share(): expected ErrNotAuthorized, got %v", err)
	}
}

func TestNoteManagerSearch(t *testing.T) {
	ctx := context.Background()
	manager, userStore := createTestNoteManager(t)

	owner := createTestUser(t, userStore, "alice")
	recipient := createTestUser(t, userStore, "bob")

	pasta, err := manager.Create(ctx, owner.ID(), "Pasta recipes", "pasta with tomato sauce, pasta carbonara")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	groceries, err := manager.Create(ctx, owner.ID(), "Groceries", "buy pasta and milk")
	if err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	if _, err := manager.Create(ctx, owner.ID(), "Meeting notes", "quarterly planning"); err != nil {
		t.Fatalf("could not create note: %+v", errors.WithStack(err))
	}

	if _, err := manager.Share(ctx, owner.ID(), pasta.ID(), recipient.ID()); err != nil {
		t.Fatalf("could not share note: %+v", errors.WithStack(err))
	}

	results, err := manager.Search(ctx, owner.ID(), "pasta")
	if err != nil {
		t.Fatalf("could not search: %+v", errors.WithStack(err))
	}

	if e, g := 2, len(results); e != g {
		t.Fatalf("len(results): expected %d, got %d", e, g)
	}

	// Most relevant first
	if e, g := pasta.ID(), results[0].Note.ID(); e != g {
		t.Errorf("results[0].Note.ID(): expected %s, got %s", e, g)
	}

	if e, g := groceries.ID(), results[1].Note.ID(); e != g {
		t.Errorf("results[1].Note.ID(): expected %s, got %s", e, g)
	}

	if results[0].Score < results[1].Score {
		t.Errorf("results[0].Score: expected >= %f, got %f", results[1].Score, results[0].Score)
	}

	// Search is owned-only: shared notes never surface in the recipient's
	// results
	results, err = manager.Search(ctx, recipient.ID(), "pasta")
	if err != nil {
		t.Fatalf("could not search: %+v", errors.WithStack(err))
	}

	if e, g := 0, len(results); e != g {
		t.Errorf("len(results): expected %d, got %d", e, g)
	}

	capped, err := manager.Search(ctx, owner.ID(), "pasta", WithNoteManagerSearchMaxResults(1))
	if err != nil {
		t.Fatalf("could not search: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(capped); e != g {
		t.Errorf("len(capped): expected %d, got %d", e, g)
	}

	if _, err := manager.Search(ctx, owner.ID(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manager.Search(): expected ErrInvalidInput, got %v", err)
	}
}
