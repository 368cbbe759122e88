package domain

import (
	"context"
	"time"
)

// FeedSnapshot is one immutable copy of a fetched raw feed. Builds are
// re-derivable from the latest snapshot without refetching.
// swagger:model FeedSnapshot
type FeedSnapshot struct {
	ID             string    `json:"id"`
	ConferenceCode string    `json:"conference_code"`
	Payload        []byte    `json:"-"`
	FetchedAt      time.Time `json:"fetched_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewFeedSnapshot returns a new FeedSnapshot with the given fields.
func NewFeedSnapshot(id, conferenceCode string, payload []byte, fetchedAt time.Time) *FeedSnapshot {
	return &FeedSnapshot{
		ID:             id,
		ConferenceCode: conferenceCode,
		Payload:        payload,
		FetchedAt:      fetchedAt,
	}
}

// SnapshotRepository defines the interface for feed snapshot storage.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *FeedSnapshot) error
	GetLatest(ctx context.Context, conferenceCode string) (*FeedSnapshot, error)
	List(ctx context.Context, conferenceCode string, params PaginationParams) ([]*FeedSnapshot, int, error)
	DeleteByConference(ctx context.Context, conferenceCode string) error
}

// PaginationParams carries validated pagination values for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the SQL offset for the params.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
