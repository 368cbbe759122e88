package schedule

import (
	"testing"
	"time"

	"conferencecompanion/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func intPtr(v int) *int { return &v }

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		name         string
		item         domain.RawItem
		wantDuration int
		wantErr      bool
	}{
		{
			name: "declared duration wins unchanged",
			item: domain.RawItem{
				ID:       "s1",
				Title:    "Talk",
				Start:    mustTime(t, "2025-05-28T09:00:00Z"),
				End:      mustTime(t, "2025-05-28T09:30:00Z"),
				Duration: intPtr(45),
			},
			wantDuration: 45,
		},
		{
			name: "derived from start and end",
			item: domain.RawItem{
				ID:    "s2",
				Title: "Talk",
				Start: mustTime(t, "2025-05-28T09:00:00Z"),
				End:   mustTime(t, "2025-05-28T09:45:00Z"),
			},
			wantDuration: 45,
		},
		{
			name: "half minute rounds up",
			item: domain.RawItem{
				ID:    "s3",
				Title: "Lightning",
				Start: mustTime(t, "2025-05-28T09:00:00Z"),
				End:   mustTime(t, "2025-05-28T09:04:30Z"),
			},
			wantDuration: 5,
		},
		{
			name: "zero declared duration falls back to derived",
			item: domain.RawItem{
				ID:       "s4",
				Title:    "Talk",
				Start:    mustTime(t, "2025-05-28T09:00:00Z"),
				End:      mustTime(t, "2025-05-28T09:30:00Z"),
				Duration: intPtr(0),
			},
			wantDuration: 30,
		},
		{
			name: "end equals start is invalid",
			item: domain.RawItem{
				ID:    "s5",
				Title: "Broken",
				Start: mustTime(t, "2025-05-28T09:00:00Z"),
				End:   mustTime(t, "2025-05-28T09:00:00Z"),
			},
			wantErr: true,
		},
		{
			name: "end before start is invalid",
			item: domain.RawItem{
				ID:    "s6",
				Title: "Broken",
				Start: mustTime(t, "2025-05-28T10:00:00Z"),
				End:   mustTime(t, "2025-05-28T09:00:00Z"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeItem(tt.item)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *domain.InvalidDurationError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.item.ID, invalid.ItemID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, got.EffectiveDuration)
			assert.Equal(t, tt.item.ID, got.ID)
		})
	}
}

func TestNormalizeItem_DoesNotMutateInput(t *testing.T) {
	raw := domain.RawItem{
		ID:    "s1",
		Title: "Talk",
		Start: mustTime(t, "2025-05-28T09:00:00Z"),
		End:   mustTime(t, "2025-05-28T09:45:00Z"),
	}
	before := raw

	_, err := NormalizeItem(raw)
	require.NoError(t, err)
	assert.Equal(t, before, raw)
}
