// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"venuely/database"
	"venuely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by CreateIfFree when an overlapping booking for
// the same venue and date already exists at commit time.
var ErrSlotTaken = errors.New("timeslot already booked")

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// CreateIfFree inserts the booking only if no overlapping booking exists
	// for the same venue and date. The overlap re-check and the insert run in
	// one transaction, so a submission that loses a race against a concurrent
	// overlapping insert gets ErrSlotTaken instead of double-booking the slot.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll returns every booking, ascending by date then start time.
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByVenueAndDate(ctx context.Context, venue, date string) ([]models.Booking, error)
	// FindOverlapping returns bookings on (venue, date) whose minute ranges
	// overlap [start, end). excludeID skips one booking id (used by updates).
	FindOverlapping(ctx context.Context, venue, date string, start, end int, excludeID string) ([]models.Booking, error)
	// Replace swaps a booking's content wholesale; conflicts must have been
	// re-checked against all other bookings beforehand.
	Replace(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("venuely")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
