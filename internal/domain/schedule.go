package domain

import (
	"context"
	"time"
)

// Room represents a physical or virtual room at the conference.
// swagger:model Room
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Speaker is a speaker attached to a session item.
// swagger:model Speaker
type Speaker struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// SessionItem is one scheduled talk or event, possibly spanning multiple rooms.
type SessionItem struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DeclaredDuration int       `json:"declared_duration,omitempty"`
	RoomIDs          []string  `json:"room_ids"`
	Speakers         []Speaker `json:"speakers"`
}

// ItemWithDuration is a SessionItem carrying its derived effective duration
// in minutes. It is produced by normalization; the original item is never
// mutated. EffectiveDuration is always > 0.
type ItemWithDuration struct {
	SessionItem
	EffectiveDuration int `json:"effective_duration"`
}

// ScheduleSession is the positioned, renderable view of a session item
// within a room track. Left and Width are pixels from the day's timeline
// origin. A multi-room item shares one ScheduleSession value across tracks.
type ScheduleSession struct {
	SessionID string           `json:"session_id"`
	Left      float64          `json:"left"`
	Width     float64          `json:"width"`
	Session   ItemWithDuration `json:"session"`
}

// RoomTrack is one room's horizontal timeline of positioned sessions.
type RoomTrack struct {
	Room     Room              `json:"room"`
	Sessions []ScheduleSession `json:"sessions"`
}

// Diagnostic reports an item that was dropped or excluded during a build.
// Diagnostics are developer-facing; a build with diagnostics still succeeds.
type Diagnostic struct {
	Code   string `json:"code"`
	ItemID string `json:"item_id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Diagnostic codes.
const (
	DiagInvalidDuration = "invalid_duration"
	DiagUnknownRoom     = "unknown_room"
)

// DaySchedule is the complete, immutable layout for one conference day.
// It is rebuilt wholesale on every import; it is never patched in place.
type DaySchedule struct {
	Date        string             `json:"date"`
	Rooms       []RoomTrack        `json:"rooms"`
	CanvasWidth float64            `json:"canvas_width"`
	Items       []ItemWithDuration `json:"items"`
	Diagnostics []Diagnostic       `json:"diagnostics"`
}

// ConferenceSchedule is the full multi-day build for one conference.
type ConferenceSchedule struct {
	ConferenceCode string         `json:"conference_code"`
	Days           []*DaySchedule `json:"days"`
}

// TimeGroup is one start-time bucket of the chronological list view.
// swagger:model TimeGroup
type TimeGroup struct {
	Time     time.Time          `json:"time"`
	Sessions []ItemWithDuration `json:"sessions"`
}

// ImportSummary reports the outcome of a feed import.
// swagger:model ImportSummary
type ImportSummary struct {
	ConferenceCode string       `json:"conference_code"`
	SnapshotID     string       `json:"snapshot_id"`
	Days           int          `json:"days"`
	Sessions       int          `json:"sessions"`
	Diagnostics    []Diagnostic `json:"diagnostics"`
	ImportedAt     time.Time    `json:"imported_at"`
}

// ScheduleService defines the schedule operations exposed to delivery.
type ScheduleService interface {
	ImportFeed(ctx context.Context, conferenceCode string) (*ImportSummary, error)
	ListDays(ctx context.Context, conferenceCode string) ([]string, error)
	GetDaySchedule(ctx context.Context, conferenceCode, date string) (*DaySchedule, error)
	ChronologicalList(ctx context.Context, conferenceCode, date string) ([]TimeGroup, error)
	Search(ctx context.Context, conferenceCode, query string) ([]ItemWithDuration, error)
	NextSession(ctx context.Context, conferenceCode, slug string) (*ItemWithDuration, error)
	ListSnapshots(ctx context.Context, conferenceCode string, params PaginationParams) ([]*FeedSnapshot, int, error)
}
