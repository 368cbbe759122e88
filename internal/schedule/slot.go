// Package schedule is the layout engine for the conference companion: it
// classifies the raw per-day feed into slots, derives effective durations,
// computes pixel geometry per room track, and exposes the read-only query
// views. The whole pipeline is pure and deterministic: the same feed always
// produces byte-identical output.
package schedule

import (
	"time"

	"conferencecompanion/internal/domain"
)

// Slot column widths in pixels. These are fixed layout constants; golden
// output depends on them exactly.
const (
	breakSlotWidth      = 150.0
	roomChangeSlotWidth = 10.0
	sessionsSlotWidth   = 250.0
)

// Slot is one classified time bucket of a day. It is a sealed sum type:
// every consumer must handle all three variants exhaustively.
type Slot interface {
	StartHour() string
	Width() float64
	slot()
}

// BreakSlot is a coffee or lunch break. It renders as a full-width global
// marker, never as an entry on a room track.
type BreakSlot struct {
	Start string
	Title string
}

func (s *BreakSlot) StartHour() string { return s.Start }
func (s *BreakSlot) Width() float64    { return breakSlotWidth }
func (s *BreakSlot) slot()             {}

// RoomChangeSlot is the short gap for moving between rooms.
type RoomChangeSlot struct {
	Start string
}

func (s *RoomChangeSlot) StartHour() string { return s.Start }
func (s *RoomChangeSlot) Width() float64    { return roomChangeSlotWidth }
func (s *RoomChangeSlot) slot()             {}

// SessionsSlot holds one or more parallel sessions across rooms.
// NominalDuration is the slot's nominal length in minutes; each session's
// width scales by its own effective duration against it.
type SessionsSlot struct {
	Start           string
	NominalDuration int
	Sessions        []domain.ItemWithDuration
}

func (s *SessionsSlot) StartHour() string { return s.Start }
func (s *SessionsSlot) Width() float64    { return sessionsSlotWidth }
func (s *SessionsSlot) slot()             {}

// kindOf names a slot variant for error messages.
func kindOf(s Slot) string {
	switch s.(type) {
	case *BreakSlot:
		return "break"
	case *RoomChangeSlot:
		return "room-change"
	case *SessionsSlot:
		return "sessions"
	}
	return "unknown"
}

// hourKey renders a timestamp as the "HH:MM:SS" key used to match items to
// their classified slot. The item's own zone offset is kept so keys line up
// with the feed's conference-local start hours.
func hourKey(t time.Time) string {
	return t.Format("15:04:05")
}
