package schedule

import (
	"sort"
	"strings"

	"conferencecompanion/internal/domain"
)

// ChronologicalList groups a day's flat items by exact start time, sorted
// ascending. Within a group, items sharing the same title and the same set
// of speaker ids are deduplicated; this guards against a multi-room session
// appearing once per room.
func ChronologicalList(day *domain.DaySchedule) []domain.TimeGroup {
	groupIndex := make(map[int64]int)
	var groups []domain.TimeGroup

	for _, item := range day.Items {
		key := item.Start.UnixMilli()
		idx, ok := groupIndex[key]
		if !ok {
			groupIndex[key] = len(groups)
			groups = append(groups, domain.TimeGroup{
				Time:     item.Start,
				Sessions: []domain.ItemWithDuration{item},
			})
			continue
		}
		duplicate := false
		for _, existing := range groups[idx].Sessions {
			if existing.Title == item.Title && sameSpeakerSet(existing.Speakers, item.Speakers) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			groups[idx].Sessions = append(groups[idx].Sessions, item)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Time.Before(groups[j].Time)
	})
	return groups
}

// Search returns all items across the given days whose title or any
// speaker's full name contains the query, case-insensitive. Results keep
// day/feed order and are deduplicated by item id. An empty or
// whitespace-only query returns no results, never everything.
func Search(days []*domain.DaySchedule, query string) []domain.ItemWithDuration {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []domain.ItemWithDuration{}
	if q == "" {
		return results
	}

	seen := make(map[string]struct{})
	for _, day := range days {
		for _, item := range day.Items {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			if !matchesQuery(item, q) {
				continue
			}
			seen[item.ID] = struct{}{}
			results = append(results, item)
		}
	}
	return results
}

func matchesQuery(item domain.ItemWithDuration, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	for _, sp := range item.Speakers {
		if strings.Contains(strings.ToLower(sp.FullName), q) {
			return true
		}
	}
	return false
}

// NextInRoom returns the chronologically next session on the current item's
// first room's track whose start is at or after the current item's end.
// Room-change markers are skipped. Ties resolve to the first match in feed
// order. The second return is false when there is no next session.
func NextInRoom(day *domain.DaySchedule, current domain.ItemWithDuration) (domain.ItemWithDuration, bool) {
	if len(current.RoomIDs) == 0 {
		return domain.ItemWithDuration{}, false
	}
	roomID := current.RoomIDs[0]

	for _, track := range day.Rooms {
		if track.Room.ID != roomID {
			continue
		}
		for _, positioned := range track.Sessions {
			candidate := positioned.Session
			if candidate.ID == current.ID {
				continue
			}
			if strings.Contains(strings.ToLower(candidate.Title), "room change") {
				continue
			}
			if !candidate.Start.Before(current.End) {
				return candidate, true
			}
		}
		return domain.ItemWithDuration{}, false
	}
	return domain.ItemWithDuration{}, false
}

// sameSpeakerSet reports whether two speaker lists reference the same set of
// speaker ids, ignoring order.
func sameSpeakerSet(a, b []domain.Speaker) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, sp := range a {
		ids[sp.ID] = struct{}{}
	}
	for _, sp := range b {
		if _, ok := ids[sp.ID]; !ok {
			return false
		}
	}
	return true
}
