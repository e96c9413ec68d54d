package models

import "time"

// Booking outcome statuses reported per date in a batch submission.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
)

// BookingView is the API representation of a booking, with clock times
// rendered as "HH:MM" strings.
type BookingView struct {
	ID             string    `json:"id"`
	Venue          string    `json:"venue"`
	Date           string    `json:"date"`
	Start          string    `json:"start"`
	End            string    `json:"end"`
	Purpose        string    `json:"purpose"`
	PersonInCharge string    `json:"personInCharge"`
	OwnerID        string    `json:"ownerId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookingOutcome is the per-date result of a batch submission. Outcomes are
// returned in the same order as the submitted dates.
type BookingOutcome struct {
	Date    string       `json:"date"`
	Status  string       `json:"status"`
	Detail  string       `json:"detail,omitempty"`
	Booking *BookingView `json:"booking,omitempty"`
}

// ConflictCheckResult is the response of the conflict-check endpoint.
type ConflictCheckResult struct {
	HasConflict         bool          `json:"hasConflict"`
	ConflictingBookings []BookingView `json:"conflictingBookings"`
}
