package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/core/model"
	"github.com/harshrai654/notes-api/internal/core/port"
)

// testNote is a minimal persisted note used to feed the index under test.
type testNote struct {
	id        model.NoteID
	owner     model.UserID
	title     string
	content   string
	createdAt time.Time
}

func (n *testNote) ID() model.NoteID {
	return n.id
}

func (n *testNote) Owner() model.UserID {
	return n.owner
}

func (n *testNote) Title() string {
	return n.title
}

func (n *testNote) Content() string {
	return n.content
}

func (n *testNote) SharedWith() []model.UserID {
	return nil
}

func (n *testNote) CreatedAt() time.Time {
	return n.createdAt
}

func (n *testNote) UpdatedAt() time.Time {
	return n.createdAt
}

var _ model.PersistedNote = &testNote{}

func newTestNote(owner model.UserID, title string, content string, createdAt time.Time) *testNote {
	return &testNote{
		id:        model.NewNoteID(),
		owner:     owner,
		title:     title,
		content:   content,
		createdAt: createdAt,
	}
}

func TestIndex(t *testing.T, factory func(t *testing.T) (port.Index, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, index port.Index) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "RankByRelevance",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				owner := model.NewUserID()
				now := time.Now()

				recipes := newTestNote(owner, "Pasta recipes", "Pasta with tomato sauce. More pasta ideas: pasta carbonara.", now)
				groceries := newTestNote(owner, "Groceries", "Buy pasta, milk and eggs.", now.Add(time.Second))
				meeting := newTestNote(owner, "Meeting notes", "Quarterly planning, nothing to cook here.", now.Add(2*time.Second))

				for _, n := range []model.PersistedNote{recipes, groceries, meeting} {
					if err := index.Index(ctx, n); err != nil {
						return errors.WithStack(err)
					}
				}

				results, err := index.SearchByOwner(ctx, owner, "pasta", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("results: %s", spew.Sdump(results))

				if e, g := 2, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				if e, g := recipes.ID(), results[0].NoteID; e != g {
					t.Errorf("results[0].NoteID: expected %s, got %s", e, g)
				}

				if results[0].Score < results[1].Score {
					t.Errorf("results[0].Score: expected >= %f, got %f", results[1].Score, results[0].Score)
				}

				return nil
			},
		},
		{
			Name: "CaseInsensitiveMatch",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				owner := model.NewUserID()

				note := newTestNote(owner, "Run schedule", "Long run on sunday mornings.", time.Now())

				if err := index.Index(ctx, note); err != nil {
					return errors.WithStack(err)
				}

				results, err := index.SearchByOwner(ctx, owner, "RUN", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				if e, g := note.ID(), results[0].NoteID; e != g {
					t.Errorf("results[0].NoteID: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "ScopedToOwner",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				alice := model.NewUserID()
				bob := model.NewUserID()

				mine := newTestNote(alice, "Budget", "Budget spreadsheet for the year.", time.Now())
				theirs := newTestNote(bob, "Budget", "Budget spreadsheet for the year.", time.Now())

				for _, n := range []model.PersistedNote{mine, theirs} {
					if err := index.Index(ctx, n); err != nil {
						return errors.WithStack(err)
					}
				}

				results, err := index.SearchByOwner(ctx, alice, "budget", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				if e, g := mine.ID(), results[0].NoteID; e != g {
					t.Errorf("results[0].NoteID: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "ReindexReplacesDocument",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				owner := model.NewUserID()

				note := newTestNote(owner, "Wishlist", "A new guitar.", time.Now())

				if err := index.Index(ctx, note); err != nil {
					return errors.WithStack(err)
				}

				note.content = "A new piano."

				if err := index.Index(ctx, note); err != nil {
					return errors.WithStack(err)
				}

				results, err := index.SearchByOwner(ctx, owner, "guitar", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(results); e != g {
					t.Errorf("len(results): expected %d, got %d", e, g)
				}

				results, err = index.SearchByOwner(ctx, owner, "piano", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Errorf("len(results): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "Remove",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				owner := model.NewUserID()

				note := newTestNote(owner, "Temporary", "Soon to be gone.", time.Now())

				if err := index.Index(ctx, note); err != nil {
					return errors.WithStack(err)
				}

				if err := index.Remove(ctx, note.ID()); err != nil {
					return errors.WithStack(err)
				}

				results, err := index.SearchByOwner(ctx, owner, "temporary", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(results); e != g {
					t.Errorf("len(results): expected %d, got %d", e, g)
				}

				// Removing an unindexed note is a no-op
				if err := index.Remove(ctx, model.NewNoteID()); err != nil {
					t.Errorf("index.Remove(): expected no error, got %v", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			index, err := factory(t)
			if err != nil {
				t.Fatalf("could not create index: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, index); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}
