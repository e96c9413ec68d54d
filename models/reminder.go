package models

// ReminderPayload is the asynq task payload for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Venue     string `json:"venue"`
	Date      string `json:"date"`
	Start     string `json:"start"` // "HH:MM"
	OwnerID   string `json:"ownerId"`
}
