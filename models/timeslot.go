package models

// TimeSlot is a venue reservation window on a single calendar day.
type TimeSlot struct {
	Venue string `bson:"venue" json:"venue"`
	Date  string `bson:"date" json:"date"`   // "2006-01-02"
	Start int    `bson:"start" json:"start"` // minutes from midnight (e.g., 840 for 2:00 PM)
	End   int    `bson:"end" json:"end"`     // minutes from midnight; always > Start
}

// Overlaps reports whether two slots on the same venue and date share any
// minutes. Ranges are half-open, so a slot ending at 600 does not overlap one
// starting at 600.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if s.Venue != other.Venue || s.Date != other.Date {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}
