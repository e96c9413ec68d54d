package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	require.Equal(t, "00:00", MinutesToClock(0))
	require.Equal(t, "09:05", MinutesToClock(9*60+5))
	require.Equal(t, "23:59", MinutesToClock(23*60+59))
}

func TestClockToMinutes(t *testing.T) {
	m, err := ClockToMinutes("14:30")
	require.NoError(t, err)
	require.Equal(t, 14*60+30, m)

	m, err = ClockToMinutes(" 00:00 ")
	require.NoError(t, err)
	require.Equal(t, 0, m)

	for _, bad := range []string{"", "14", "24:00", "14:60", "2pm", "14:"} {
		_, err := ClockToMinutes(bad)
		require.Error(t, err, bad)
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := TimeSlot{Venue: "Hall", Date: "2026-06-01", Start: 14 * 60, End: 16 * 60}

	require.True(t, base.Overlaps(TimeSlot{Venue: "Hall", Date: "2026-06-01", Start: 15 * 60, End: 17 * 60}))
	require.False(t, base.Overlaps(TimeSlot{Venue: "Hall", Date: "2026-06-01", Start: 16 * 60, End: 17 * 60}))
	require.False(t, base.Overlaps(TimeSlot{Venue: "Hall", Date: "2026-06-02", Start: 15 * 60, End: 17 * 60}))
	require.False(t, base.Overlaps(TimeSlot{Venue: "G02", Date: "2026-06-01", Start: 15 * 60, End: 17 * 60}))
}
