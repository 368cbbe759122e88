package schedule

import (
	"conferencecompanion/internal/domain"
)

// Layout converts the classified slot sequence into per-room pixel geometry
// and assembles the immutable DaySchedule.
//
// Each slot occupies a fixed-width column (break 150px, room change 10px,
// sessions 250px); an item's left offset is the cumulative width of every
// slot before its own. Within a sessions slot every item scales its width by
// its own effective duration against the slot's nominal duration, so
// sessions running longer or shorter than the slot visually differ. Items in
// break or room-change slots are global markers and are never placed on a
// room track.
//
// An item whose start hour has no classified slot is a fatal
// *domain.SlotLookupError. Unknown room references are dropped from per-room
// grouping and reported in diagnostics; the item stays in the flat list.
func Layout(slots []Slot, items []domain.ItemWithDuration, rooms []domain.Room, date string, diags []domain.Diagnostic) (*domain.DaySchedule, error) {
	offsets := make(map[string]float64, len(slots))
	slotsByHour := make(map[string]Slot, len(slots))
	left := 0.0
	for _, s := range slots {
		offsets[s.StartHour()] = left
		slotsByHour[s.StartHour()] = s
		left += s.Width()
	}

	tracks := make([]domain.RoomTrack, len(rooms))
	trackByRoomID := make(map[string]int, len(rooms))
	for i, r := range rooms {
		tracks[i] = domain.RoomTrack{Room: r, Sessions: []domain.ScheduleSession{}}
		trackByRoomID[r.ID] = i
	}

	canvas := 0.0
	for _, item := range items {
		key := hourKey(item.Start)
		slot, ok := slotsByHour[key]
		if !ok {
			return nil, &domain.SlotLookupError{ItemID: item.ID, StartHour: key}
		}
		sessions, ok := slot.(*SessionsSlot)
		if !ok {
			continue
		}

		nominal := sessions.NominalDuration
		if nominal <= 0 {
			// Degenerate feed slot; give the item the full column width.
			nominal = item.EffectiveDuration
		}
		positioned := domain.ScheduleSession{
			SessionID: item.ID,
			Left:      offsets[key],
			Width:     float64(item.EffectiveDuration) * (sessions.Width() / float64(nominal)),
			Session:   item,
		}
		if right := positioned.Left + positioned.Width; right > canvas {
			canvas = right
		}

		if len(item.RoomIDs) == 0 {
			diags = append(diags, domain.Diagnostic{
				Code:   domain.DiagUnknownRoom,
				ItemID: item.ID,
				Title:  item.Title,
				Detail: "item references no rooms",
			})
			continue
		}
		for _, roomID := range item.RoomIDs {
			idx, known := trackByRoomID[roomID]
			if !known {
				unknown := &domain.UnknownRoomError{ItemID: item.ID, RoomID: roomID}
				diags = append(diags, domain.Diagnostic{
					Code:   domain.DiagUnknownRoom,
					ItemID: item.ID,
					Title:  item.Title,
					Detail: unknown.Error(),
				})
				continue
			}
			tracks[idx].Sessions = append(tracks[idx].Sessions, positioned)
		}
	}

	if items == nil {
		items = []domain.ItemWithDuration{}
	}
	if diags == nil {
		diags = []domain.Diagnostic{}
	}
	return &domain.DaySchedule{
		Date:        date,
		Rooms:       tracks,
		CanvasWidth: canvas,
		Items:       items,
		Diagnostics: diags,
	}, nil
}
