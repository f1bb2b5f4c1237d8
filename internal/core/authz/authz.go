// Package authz is the capability decision engine. It is pure logic over a
// loaded note and a principal id: it never touches a store.
package authz

import (
	"github.com/harshrai654/notes-api/internal/core/model"
)

type Capability string

const (
	CapabilityRead   Capability = "read"
	CapabilityWrite  Capability = "write"
	CapabilityDelete Capability = "delete"
	CapabilityShare  Capability = "share"
)

type Decision int

const (
	NotFound Decision = iota
	Deny
	Allow
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "not found"
	}
}

// CanView reports whether the user may read the note: ownership or
// membership in the shared-with set.
func CanView(note model.Note, userID model.UserID) bool {
	return note.Owner() == userID || model.IsSharedWith(note, userID)
}

// CanMutate reports whether the user may write, delete or share the note.
// Ownership is the only mutating capability: sharing never upgrades to write.
func CanMutate(note model.Note, userID model.UserID) bool {
	return note.Owner() == userID
}

// Decide evaluates a capability for the given principal. A nil note means
// the note does not exist and yields NotFound for every capability, so
// existence is always settled before any capability predicate runs.
func Decide(note model.Note, userID model.UserID, capability Capability) Decision {
	if note == nil {
		return NotFound
	}

	var allowed bool
	switch capability {
	case CapabilityRead:
		allowed = CanView(note, userID)
	case CapabilityWrite, CapabilityDelete, CapabilityShare:
		allowed = CanMutate(note, userID)
	}

	if !allowed {
		return Deny
	}

	return Allow
}
