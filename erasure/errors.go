package erasure

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is raised when a typed read does not match the stored TypeID.
	ErrTypeMismatch = errors.New("anyref: type mismatch")

	// ErrEmptySlot is raised when the placeholder is read as a value.
	ErrEmptySlot = errors.New("anyref: read of empty slot")

	// ErrConsumed is raised when a transferred value is taken a second time.
	ErrConsumed = errors.New("anyref: transferred value already consumed")

	// ErrNilBinding is raised when a nil pointer is bound into a slot.
	ErrNilBinding = errors.New("anyref: nil binding")
)

// mismatch panics with the error describing a failed typed read of s.
// Kept out of line so the typed accessors stay inlineable.
//
//go:noinline
func mismatch(s *Slot, want TypeID) {
	if s.IsEmpty() {
		panic(fmt.Errorf("%w: requested %s", ErrEmptySlot, want))
	}
	panic(fmt.Errorf("%w: stored %s, requested %s", ErrTypeMismatch, s.TypeID(), want))
}
