package booking

import (
	"context"
	"time"

	bookingRepo "venuely/database/repository/booking"
	"venuely/models"

	"go.uber.org/zap"
)

// ReminderScheduler enqueues a pre-start reminder for a confirmed booking.
type ReminderScheduler interface {
	Schedule(ctx context.Context, booking models.Booking) error
}

// BookingService defines the venue reservation engine.
type BookingService interface {
	// CheckConflict reports whether the slot overlaps an existing booking,
	// together with the bookings it collides with.
	CheckConflict(ctx context.Context, slot models.TimeSlot) (*models.ConflictCheckResult, error)
	// Submit evaluates a batch of intents independently and returns one
	// outcome per intent, preserving input order. Partial success is expected:
	// one date's failure never blocks another date's booking.
	Submit(ctx context.Context, intents []models.BookingIntent, ownerID string) ([]models.BookingOutcome, error)
	// Create books a single fully specified intent.
	Create(ctx context.Context, intent models.BookingIntent, ownerID string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	// Update replaces a booking wholesale; for conflict purposes it behaves
	// like delete-then-recreate.
	Update(ctx context.Context, id string, intent models.BookingIntent, actorID string) (*models.Booking, error)
	Delete(ctx context.Context, id, actorID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Reminders ReminderScheduler // optional; nil disables reminders
	Logger    *zap.Logger
	// Now is the clock used for past-date validation; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
