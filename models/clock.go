package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesToClock renders minutes-from-midnight as a 24-hour "HH:MM" string.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ClockToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
func ClockToMinutes(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// View converts a booking to its API representation.
func (b Booking) View() BookingView {
	return BookingView{
		ID:             b.ID,
		Venue:          b.Venue,
		Date:           b.Date,
		Start:          MinutesToClock(b.Start),
		End:            MinutesToClock(b.End),
		Purpose:        b.Purpose,
		PersonInCharge: b.PersonInCharge,
		OwnerID:        b.OwnerID,
		CreatedAt:      b.CreatedAt,
	}
}
