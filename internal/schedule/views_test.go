package schedule

import (
	"testing"

	"conferencecompanion/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtDay(t *testing.T) *domain.DaySchedule {
	t.Helper()
	day, err := BuildDay(testDayFeed(t))
	require.NoError(t, err)
	return day
}

func TestChronologicalList_GroupsAndSorts(t *testing.T) {
	day := builtDay(t)
	groups := ChronologicalList(day)

	require.NotEmpty(t, groups)
	for i := 1; i < len(groups); i++ {
		assert.True(t, groups[i-1].Time.Before(groups[i].Time))
	}

	// 09:00 keynote, 10:00 break, 10:30 parallel pair, 11:30 room change, 11:40 closing.
	require.Len(t, groups, 5)
	assert.Len(t, groups[2].Sessions, 2)
}

func TestChronologicalList_DeduplicatesSameTalk(t *testing.T) {
	speaker := domain.Speaker{ID: "sp1", FullName: "Ada Lovelace"}
	a, err := NormalizeItem(domain.RawItem{
		ID: "a", Title: "Keynote", Start: mustTime(t, "2025-05-28T09:00:00Z"), End: mustTime(t, "2025-05-28T10:00:00Z"),
		RoomIDs: []string{"r1"}, Speakers: []domain.Speaker{speaker},
	})
	require.NoError(t, err)
	b, err := NormalizeItem(domain.RawItem{
		ID: "b", Title: "Keynote", Start: mustTime(t, "2025-05-28T09:00:00Z"), End: mustTime(t, "2025-05-28T10:00:00Z"),
		RoomIDs: []string{"r2"}, Speakers: []domain.Speaker{speaker},
	})
	require.NoError(t, err)
	c, err := NormalizeItem(domain.RawItem{
		ID: "c", Title: "Keynote", Start: mustTime(t, "2025-05-28T09:00:00Z"), End: mustTime(t, "2025-05-28T10:00:00Z"),
		RoomIDs: []string{"r3"}, Speakers: []domain.Speaker{{ID: "sp2", FullName: "Grace Hopper"}},
	})
	require.NoError(t, err)

	day := &domain.DaySchedule{Items: []domain.ItemWithDuration{a, b, c}}
	groups := ChronologicalList(day)

	require.Len(t, groups, 1)
	// a and b share title and speaker set; c has a different speaker set.
	require.Len(t, groups[0].Sessions, 2)
	assert.Equal(t, "a", groups[0].Sessions[0].ID)
	assert.Equal(t, "c", groups[0].Sessions[1].ID)
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	days := []*domain.DaySchedule{builtDay(t)}

	assert.Empty(t, Search(days, ""))
	assert.Empty(t, Search(days, "   "))
}

func TestSearch_MatchesTitleAndSpeaker(t *testing.T) {
	days := []*domain.DaySchedule{builtDay(t)}

	byTitle := Search(days, "generics")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "t1", byTitle[0].ID)

	bySpeaker := Search(days, "lovelace")
	require.Len(t, bySpeaker, 1)
	assert.Equal(t, "k1", bySpeaker[0].ID)

	assert.Empty(t, Search(days, "quantum"))
}

func TestSearch_DeduplicatesAcrossDays(t *testing.T) {
	day := builtDay(t)
	// The same day twice simulates an item reachable through two build
	// passes; ids must appear once.
	results := Search([]*domain.DaySchedule{day, day}, "keynote")
	require.Len(t, results, 1)
	assert.Equal(t, "k1", results[0].ID)
}

func TestNextInRoom(t *testing.T) {
	day := builtDay(t)

	itemByID := func(id string) domain.ItemWithDuration {
		for _, item := range day.Items {
			if item.ID == id {
				return item
			}
		}
		t.Fatalf("item %s not in day", id)
		return domain.ItemWithDuration{}
	}

	t.Run("finds next in same room", func(t *testing.T) {
		next, ok := NextInRoom(day, itemByID("k1"))
		require.True(t, ok)
		// Keynote's first room is r1; the next r1 session is t1.
		assert.Equal(t, "t1", next.ID)
	})

	t.Run("skips sessions starting before current end", func(t *testing.T) {
		next, ok := NextInRoom(day, itemByID("t1"))
		require.True(t, ok)
		assert.Equal(t, "t3", next.ID)
	})

	t.Run("no next session", func(t *testing.T) {
		_, ok := NextInRoom(day, itemByID("t3"))
		assert.False(t, ok)
	})

	t.Run("no rooms on current item", func(t *testing.T) {
		_, ok := NextInRoom(day, itemByID("b1"))
		assert.False(t, ok)
	})
}

func TestNextInRoom_SkipsRoomChangeEntries(t *testing.T) {
	current, err := NormalizeItem(domain.RawItem{
		ID: "cur", Title: "Talk", Start: mustTime(t, "2025-05-28T10:00:00Z"), End: mustTime(t, "2025-05-28T10:30:00Z"),
		RoomIDs: []string{"r1"},
	})
	require.NoError(t, err)
	change, err := NormalizeItem(domain.RawItem{
		ID: "chg", Title: "Room Change", Start: mustTime(t, "2025-05-28T10:30:00Z"), End: mustTime(t, "2025-05-28T10:40:00Z"),
		RoomIDs: []string{"r1"},
	})
	require.NoError(t, err)
	after, err := NormalizeItem(domain.RawItem{
		ID: "aft", Title: "After", Start: mustTime(t, "2025-05-28T10:40:00Z"), End: mustTime(t, "2025-05-28T11:10:00Z"),
		RoomIDs: []string{"r1"},
	})
	require.NoError(t, err)

	day := &domain.DaySchedule{
		Rooms: []domain.RoomTrack{
			{
				Room: domain.Room{ID: "r1", Name: "Main Hall"},
				Sessions: []domain.ScheduleSession{
					{SessionID: "cur", Session: current},
					{SessionID: "chg", Session: change},
					{SessionID: "aft", Session: after},
				},
			},
		},
	}

	next, ok := NextInRoom(day, current)
	require.True(t, ok)
	assert.Equal(t, "aft", next.ID)
}

func TestNextInRoom_StartEqualToEndCounts(t *testing.T) {
	current, err := NormalizeItem(domain.RawItem{
		ID: "cur", Title: "Talk", Start: mustTime(t, "2025-05-28T10:00:00Z"), End: mustTime(t, "2025-05-28T10:30:00Z"),
		RoomIDs: []string{"r1"},
	})
	require.NoError(t, err)
	adjacent, err := NormalizeItem(domain.RawItem{
		ID: "adj", Title: "Back to Back", Start: mustTime(t, "2025-05-28T10:30:00Z"), End: mustTime(t, "2025-05-28T11:00:00Z"),
		RoomIDs: []string{"r1"},
	})
	require.NoError(t, err)

	day := &domain.DaySchedule{
		Rooms: []domain.RoomTrack{
			{
				Room: domain.Room{ID: "r1", Name: "Main Hall"},
				Sessions: []domain.ScheduleSession{
					{SessionID: "cur", Session: current},
					{SessionID: "adj", Session: adjacent},
				},
			},
		},
	}

	next, ok := NextInRoom(day, current)
	require.True(t, ok)
	assert.Equal(t, "adj", next.ID)
}
