package schedule

import (
	"fmt"

	"conferencecompanion/internal/domain"
)

// BuildDay runs the full pipeline for one day of the raw feed:
// classification, normalization, and geometry. Fatal errors
// (classification conflicts, slot lookup failures) abort the build;
// recoverable problems land in the result's diagnostics.
func BuildDay(feed domain.RawDayFeed) (*domain.DaySchedule, error) {
	slots, items, diags, err := Classify(feed.Slots)
	if err != nil {
		return nil, err
	}
	return Layout(slots, items, feed.Rooms, feed.DayDate, diags)
}

// BuildConference builds every day of the feed in order. A fatal error on
// any day aborts the whole build; a partially built schedule is never
// returned.
func BuildConference(feed *domain.RawConferenceFeed) (*domain.ConferenceSchedule, error) {
	built := &domain.ConferenceSchedule{
		ConferenceCode: feed.ConferenceCode,
		Days:           make([]*domain.DaySchedule, 0, len(feed.Days)),
	}
	for _, day := range feed.Days {
		daySchedule, err := BuildDay(day)
		if err != nil {
			return nil, fmt.Errorf("build day %s: %w", day.DayDate, err)
		}
		built.Days = append(built.Days, daySchedule)
	}
	return built, nil
}
