package booking

import (
	"context"
	"errors"

	"venuely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CheckConflict runs the pure overlap check against the bookings persisted
// for the slot's venue and date.
func (s *DefaultBookingService) CheckConflict(ctx context.Context, slot models.TimeSlot) (*models.ConflictCheckResult, error) {
	existing, err := s.Repo.GetByVenueAndDate(ctx, slot.Venue, slot.Date)
	if err != nil {
		return nil, NewInvalidError("failed to query existing bookings: %v", err)
	}

	result := &models.ConflictCheckResult{ConflictingBookings: []models.BookingView{}}
	for _, b := range existing {
		if slot.Overlaps(b.Slot()) {
			result.HasConflict = true
			result.ConflictingBookings = append(result.ConflictingBookings, b.View())
		}
	}
	return result, nil
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, NewInvalidError("failed to list bookings: %v", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("booking %s not found", id)
		}
		return nil, NewInvalidError("failed to fetch booking: %v", err)
	}
	return booking, nil
}

// Update replaces a booking's content. For conflict purposes this is
// delete-then-recreate: the overlap check runs against every booking except
// the one being replaced.
func (s *DefaultBookingService) Update(ctx context.Context, id string, intent models.BookingIntent, actorID string) (*models.Booking, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != actorID {
		return nil, NewUnauthorizedError("only the booking owner can update it")
	}
	if err := s.validateIntent(intent); err != nil {
		return nil, err
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, intent.Venue, intent.Date, intent.Start, intent.End, id)
	if err != nil {
		return nil, NewInvalidError("failed to query existing bookings: %v", err)
	}
	if len(overlapping) > 0 {
		return nil, NewConflictError("the requested timeslot is already booked")
	}

	updated := *current
	updated.Venue = intent.Venue
	updated.Date = intent.Date
	updated.Start = intent.Start
	updated.End = intent.End
	updated.PersonInCharge = intent.PersonInCharge
	if intent.Purpose != "" {
		updated.Purpose = intent.Purpose
	}

	if err := s.Repo.Replace(ctx, &updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("booking %s not found", id)
		}
		return nil, NewInvalidError("failed to update booking: %v", err)
	}
	return &updated, nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, id, actorID string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != actorID {
		return NewUnauthorizedError("only the booking owner can delete it")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("booking %s not found", id)
		}
		return NewInvalidError("failed to delete booking: %v", err)
	}
	return nil
}
