package schedule

import (
	"math"

	"conferencecompanion/internal/domain"
)

// NormalizeItem derives the effective duration for a raw feed item and
// returns a new value; the input is never mutated. A declared nonzero
// duration wins unchanged; otherwise the duration is the end-start epoch
// difference in whole minutes, rounded half-up. A result that is not
// positive is an *domain.InvalidDurationError.
func NormalizeItem(raw domain.RawItem) (domain.ItemWithDuration, error) {
	item := domain.SessionItem{
		ID:       raw.ID,
		Title:    raw.Title,
		Slug:     raw.Slug,
		Start:    raw.Start,
		End:      raw.End,
		RoomIDs:  raw.RoomIDs,
		Speakers: raw.Speakers,
	}
	if raw.Duration != nil {
		item.DeclaredDuration = *raw.Duration
	}

	minutes := item.DeclaredDuration
	if minutes == 0 {
		minutes = int(math.Round(raw.End.Sub(raw.Start).Minutes()))
	}
	if minutes <= 0 {
		return domain.ItemWithDuration{}, &domain.InvalidDurationError{
			ItemID:   raw.ID,
			Title:    raw.Title,
			Computed: minutes,
		}
	}
	return domain.ItemWithDuration{SessionItem: item, EffectiveDuration: minutes}, nil
}
