package domain

import (
	"context"
	"time"
)

// RawConferenceFeed is the raw schedule feed for a whole conference as
// served by the companion backend. Timestamps decode from ISO 8601 once at
// the boundary and are never re-parsed downstream.
type RawConferenceFeed struct {
	ConferenceCode string       `json:"conference_code"`
	Days           []RawDayFeed `json:"days"`
}

// RawDayFeed is one day of the raw feed: the day's rooms and its time slots
// in time-ascending order.
type RawDayFeed struct {
	DayDate string    `json:"day_date"`
	Rooms   []Room    `json:"rooms"`
	Slots   []RawSlot `json:"slots"`
}

// RawSlot is one time bucket of the raw feed. StartHour is "HH:MM:SS" in
// conference-local time; Duration is the slot's nominal length in minutes.
type RawSlot struct {
	StartHour string    `json:"start_hour"`
	Duration  int       `json:"duration"`
	Items     []RawItem `json:"items"`
}

// RawItem is a session item as it arrives on the wire. Duration is nil when
// the feed declares none; the effective duration is derived from Start/End.
type RawItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration *int      `json:"duration"`
	RoomIDs  []string  `json:"room_ids"`
	Speakers []Speaker `json:"speakers"`
}

// FeedFetcher fetches the raw schedule feed for a conference (or a test double).
type FeedFetcher interface {
	Fetch(ctx context.Context, conferenceCode string) (*RawConferenceFeed, error)
}
