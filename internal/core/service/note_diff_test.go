package service

import (
	"testing"

	"github.com/harshrai654/notes-api/internal/core/model"
)

func TestDiffNote(t *testing.T) {
	owner := model.NewUserID()
	note := model.NewNote(owner, "title", "content")

	type testCase struct {
		Name          string
		Patch         NotePatch
		ExpectTitle   *string
		ExpectContent *string
	}

	newTitle := "new title"
	newContent := "new content"

	testCases := []testCase{
		{
			Name:  "EmptyPatch",
			Patch: NotePatch{},
		},
		{
			Name:        "TitleOnly",
			Patch:       NotePatch{Title: "new title"},
			ExpectTitle: &newTitle,
		},
		{
			Name:          "ContentOnly",
			Patch:         NotePatch{Content: "new content"},
			ExpectContent: &newContent,
		},
		{
			Name:          "BothFields",
			Patch:         NotePatch{Title: "new title", Content: "new content"},
			ExpectTitle:   &newTitle,
			ExpectContent: &newContent,
		},
		{
			Name:  "IdenticalValuesAreDropped",
			Patch: NotePatch{Title: "title", Content: "content"},
		},
		{
			Name:          "MixedIdenticalAndChanged",
			Patch:         NotePatch{Title: "title", Content: "new content"},
			ExpectContent: &newContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			updates := diffNote(note, tc.Patch)

			if tc.ExpectTitle == nil {
				if updates.Title != nil {
					t.Errorf("updates.Title: expected nil, got %q", *updates.Title)
				}
			} else if updates.Title == nil {
				t.Errorf("updates.Title: expected %q, got nil", *tc.ExpectTitle)
			} else if e, g := *tc.ExpectTitle, *updates.Title; e != g {
				t.Errorf("updates.Title: expected %q, got %q", e, g)
			}

			if tc.ExpectContent == nil {
				if updates.Content != nil {
					t.Errorf("updates.Content: expected nil, got %q", *updates.Content)
				}
			} else if updates.Content == nil {
				t.Errorf("updates.Content: expected %q, got nil", *tc.ExpectContent)
			} else if e, g := *tc.ExpectContent, *updates.Content; e != g {
				t.Errorf("updates.Content: expected %q, got %q", e, g)
			}

			if e, g := tc.ExpectTitle == nil && tc.ExpectContent == nil, updates.IsEmpty(); e != g {
				t.Errorf("updates.IsEmpty(): expected %v, got %v", e, g)
			}
		})
	}
}

func TestNotePatchIsEmpty(t *testing.T) {
	if !(NotePatch{}).isEmpty() {
		t.Errorf("NotePatch{}.isEmpty(): expected true")
	}

	if (NotePatch{Title: "x"}).isEmpty() {
		t.Errorf("NotePatch{Title}.isEmpty(): expected false")
	}

	if (NotePatch{Content: "x"}).isEmpty() {
		t.Errorf("NotePatch{Content}.isEmpty(): expected false")
	}
}
