package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ClassificationConflictError is returned when two raw slots for the same
// start hour imply different slot shapes. Fatal: the whole day's build is
// aborted rather than shipping a partially coerced schedule.
type ClassificationConflictError struct {
	StartHour string
	Existing  string
	Incoming  string
}

func (e *ClassificationConflictError) Error() string {
	return fmt.Sprintf("slot classification conflict at %s: already %s, got %s", e.StartHour, e.Existing, e.Incoming)
}

// InvalidDurationError reports an item whose end is not after its start and
// which declares no usable duration. Recoverable: the item is excluded and
// reported in diagnostics.
type InvalidDurationError struct {
	ItemID   string
	Title    string
	Computed int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %d for item %s (%q)", e.Computed, e.ItemID, e.Title)
}

// UnknownRoomError reports an item referencing a room id absent from the
// day's room list. Recoverable: the item is dropped from per-room grouping
// and reported in diagnostics.
type UnknownRoomError struct {
	ItemID string
	RoomID string
}

func (e *UnknownRoomError) Error() string {
	return fmt.Sprintf("item %s references unknown room %s", e.ItemID, e.RoomID)
}

// SlotLookupError is returned when geometry cannot find the classified slot
// for an item's start hour. Fatal: the classifier and geometry stage
// disagree on slot keys, which is an internal invariant violation.
type SlotLookupError struct {
	ItemID    string
	StartHour string
}

func (e *SlotLookupError) Error() string {
	return fmt.Sprintf("no classified slot at %s for item %s", e.StartHour, e.ItemID)
}
