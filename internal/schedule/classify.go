package schedule

import (
	"errors"
	"strings"

	"conferencecompanion/internal/domain"
)

// Classify consumes one day's raw slots in feed order and produces the
// classified slot sequence, the flat normalized item list (feed order), and
// the diagnostics for items dropped during normalization.
//
// Break and room-change detection is a case-insensitive substring heuristic
// on single-item slots ("coffee", "lunch", "room change"). The heuristic is
// intentionally loose and kept for compatibility: a talk titled "Coffee and
// Compilers" classifies as a break.
//
// Slot ordering follows the first appearance of each start hour. Repeated
// raw slots for the same hour accumulate into the existing sessions slot;
// any other shape collision is a fatal *domain.ClassificationConflictError.
func Classify(rawSlots []domain.RawSlot) ([]Slot, []domain.ItemWithDuration, []domain.Diagnostic, error) {
	var (
		order []string
		flat  []domain.ItemWithDuration
		diags []domain.Diagnostic
	)
	byHour := make(map[string]Slot, len(rawSlots))

	for _, raw := range rawSlots {
		items := make([]domain.ItemWithDuration, 0, len(raw.Items))
		for _, ri := range raw.Items {
			item, err := NormalizeItem(ri)
			if err != nil {
				var invalid *domain.InvalidDurationError
				if errors.As(err, &invalid) {
					diags = append(diags, domain.Diagnostic{
						Code:   domain.DiagInvalidDuration,
						ItemID: invalid.ItemID,
						Title:  invalid.Title,
						Detail: invalid.Error(),
					})
					continue
				}
				return nil, nil, nil, err
			}
			items = append(items, item)
		}
		flat = append(flat, items...)

		if len(items) == 1 {
			title := strings.ToLower(items[0].Title)
			if strings.Contains(title, "coffee") || strings.Contains(title, "lunch") {
				if existing, ok := byHour[raw.StartHour]; ok {
					return nil, nil, nil, &domain.ClassificationConflictError{
						StartHour: raw.StartHour,
						Existing:  kindOf(existing),
						Incoming:  "break",
					}
				}
				byHour[raw.StartHour] = &BreakSlot{Start: raw.StartHour, Title: items[0].Title}
				order = append(order, raw.StartHour)
				continue
			}
			if strings.Contains(title, "room change") {
				if existing, ok := byHour[raw.StartHour]; ok {
					return nil, nil, nil, &domain.ClassificationConflictError{
						StartHour: raw.StartHour,
						Existing:  kindOf(existing),
						Incoming:  "room-change",
					}
				}
				byHour[raw.StartHour] = &RoomChangeSlot{Start: raw.StartHour}
				order = append(order, raw.StartHour)
				continue
			}
		}

		if existing, ok := byHour[raw.StartHour]; ok {
			sessions, isSessions := existing.(*SessionsSlot)
			if !isSessions {
				return nil, nil, nil, &domain.ClassificationConflictError{
					StartHour: raw.StartHour,
					Existing:  kindOf(existing),
					Incoming:  "sessions",
				}
			}
			sessions.Sessions = append(sessions.Sessions, items...)
			continue
		}
		byHour[raw.StartHour] = &SessionsSlot{
			Start:           raw.StartHour,
			NominalDuration: raw.Duration,
			Sessions:        items,
		}
		order = append(order, raw.StartHour)
	}

	slots := make([]Slot, 0, len(order))
	for _, hour := range order {
		slots = append(slots, byHour[hour])
	}
	return slots, flat, diags, nil
}
