package models

import "time"

// Booking represents a confirmed venue reservation record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	Venue          string    `bson:"venue" json:"venue"`                   // Venue from the fixed catalog
	Date           string    `bson:"date" json:"date"`                     // Booking date in "YYYY-MM-DD" format
	Start          int       `bson:"start" json:"start"`                   // Booking start time (minutes from midnight)
	End            int       `bson:"end" json:"end"`                       // Booking end time (minutes from midnight)
	Purpose        string    `bson:"purpose" json:"purpose"`               // Free text; defaults to "unspecified"
	PersonInCharge string    `bson:"personInCharge" json:"personInCharge"` // Display name of the responsible person
	OwnerID        string    `bson:"ownerId" json:"ownerId"`               // User who made the booking
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`           // Timestamp when booking was created
}

// Slot returns the booking's time window for conflict checks.
func (b Booking) Slot() TimeSlot {
	return TimeSlot{Venue: b.Venue, Date: b.Date, Start: b.Start, End: b.End}
}
