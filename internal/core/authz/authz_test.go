package authz

import (
	"testing"

	"github.com/harshrai654/notes-api/internal/core/model"
)

type note struct {
	id         model.NoteID
	owner      model.UserID
	sharedWith []model.UserID
}

func (n *note) ID() model.NoteID {
	return n.id
}

func (n *note) Owner() model.UserID {
	return n.owner
}

func (n *note) Title() string {
	return "title"
}

func (n *note) Content() string {
	return "content"
}

func (n *note) SharedWith() []model.UserID {
	return n.sharedWith
}

var _ model.Note = &note{}

func TestDecide(t *testing.T) {
	owner := model.NewUserID()
	recipient := model.NewUserID()
	stranger := model.NewUserID()

	sharedNote := &note{
		id:         model.NewNoteID(),
		owner:      owner,
		sharedWith: []model.UserID{recipient},
	}

	capabilities := []Capability{CapabilityRead, CapabilityWrite, CapabilityDelete, CapabilityShare}

	type testCase struct {
		Name       string
		Note       model.Note
		User       model.UserID
		Capability Capability
		Expected   Decision
	}

	testCases := []testCase{
		{Name: "RecipientReads", Note: sharedNote, User: recipient, Capability: CapabilityRead, Expected: Allow},
		{Name: "RecipientWrites", Note: sharedNote, User: recipient, Capability: CapabilityWrite, Expected: Deny},
		{Name: "RecipientDeletes", Note: sharedNote, User: recipient, Capability: CapabilityDelete, Expected: Deny},
		{Name: "RecipientShares", Note: sharedNote, User: recipient, Capability: CapabilityShare, Expected: Deny},
		{Name: "StrangerReads", Note: sharedNote, User: stranger, Capability: CapabilityRead, Expected: Deny},
		{Name: "StrangerWrites", Note: sharedNote, User: stranger, Capability: CapabilityWrite, Expected: Deny},
	}

	// The owner holds every capability.
	for _, capability := range capabilities {
		testCases = append(testCases, testCase{
			Name:       "Owner_" + string(capability),
			Note:       sharedNote,
			User:       owner,
			Capability: capability,
			Expected:   Allow,
		})
	}

	// A missing note is NotFound for everyone, before any capability check.
	for _, capability := range capabilities {
		testCases = append(testCases, testCase{
			Name:       "MissingNote_" + string(capability),
			Note:       nil,
			User:       owner,
			Capability: capability,
			Expected:   NotFound,
		})
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, Decide(tc.Note, tc.User, tc.Capability); e != g {
				t.Errorf("Decide(): expected %s, got %s", e, g)
			}
		})
	}
}

func TestCanView(t *testing.T) {
	owner := model.NewUserID()
	recipient := model.NewUserID()

	n := &note{
		id:         model.NewNoteID(),
		owner:      owner,
		sharedWith: []model.UserID{recipient},
	}

	if !CanView(n, owner) {
		t.Errorf("CanView(): expected true for owner")
	}

	if !CanView(n, recipient) {
		t.Errorf("CanView(): expected true for recipient")
	}

	if CanView(n, model.NewUserID()) {
		t.Errorf("CanView(): expected false for stranger")
	}
}
