package models

// ParsedIntent holds whatever booking details could be extracted from a
// single utterance. Absent fields stay zero (nil for times, since minute 0 is
// a valid midnight start). Callers must handle partial intents.
type ParsedIntent struct {
	Venue   string `json:"venue,omitempty"`
	Date    string `json:"date,omitempty"` // "2006-01-02"
	Start   *int   `json:"start,omitempty"`
	End     *int   `json:"end,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// HasTime reports whether a start time was extracted.
func (p *ParsedIntent) HasTime() bool {
	return p != nil && p.Start != nil
}

// Merge copies non-empty fields from other into p, keeping existing values.
func (p *ParsedIntent) Merge(other *ParsedIntent) {
	if other == nil {
		return
	}
	if p.Venue == "" {
		p.Venue = other.Venue
	}
	if p.Date == "" {
		p.Date = other.Date
	}
	if p.Start == nil {
		p.Start = other.Start
		p.End = other.End
	}
	if p.Purpose == "" {
		p.Purpose = other.Purpose
	}
}

// BookingIntent is a fully specified reservation request, ready for the
// booking engine. Only Purpose is optional.
type BookingIntent struct {
	Venue          string `json:"venue"`
	Date           string `json:"date"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Purpose        string `json:"purpose,omitempty"`
	PersonInCharge string `json:"personInCharge"`
}

// Slot returns the intent's time window for conflict checks.
func (i BookingIntent) Slot() TimeSlot {
	return TimeSlot{Venue: i.Venue, Date: i.Date, Start: i.Start, End: i.End}
}
