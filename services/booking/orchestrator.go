package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "venuely/database/repository/booking"
	"venuely/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit evaluates every intent independently. Intents are checked
// concurrently since they share no mutable state, but outcomes land at the
// index of their intent so the response order always matches the input.
func (s *DefaultBookingService) Submit(ctx context.Context, intents []models.BookingIntent, ownerID string) ([]models.BookingOutcome, error) {
	dupDates := duplicateDates(intents)
	outcomes := make([]models.BookingOutcome, len(intents))

	var wg sync.WaitGroup
	for i, intent := range intents {
		wg.Add(1)
		go func(i int, intent models.BookingIntent) {
			defer wg.Done()
			outcomes[i] = s.evaluate(ctx, intent, ownerID, dupDates)
		}(i, intent)
	}
	wg.Wait()

	return outcomes, nil
}

func (s *DefaultBookingService) evaluate(ctx context.Context, intent models.BookingIntent, ownerID string, dupDates map[string]bool) models.BookingOutcome {
	if dupDates[intent.Date] {
		return models.BookingOutcome{
			Date:   intent.Date,
			Status: models.OutcomeInvalid,
			Detail: "duplicate date in batch",
		}
	}

	created, err := s.Create(ctx, intent, ownerID)
	if err != nil {
		status := models.OutcomeInvalid
		if IsConflict(err) {
			status = models.OutcomeConflict
		}
		return models.BookingOutcome{
			Date:   intent.Date,
			Status: status,
			Detail: ErrorMessage(err),
		}
	}

	view := created.View()
	return models.BookingOutcome{
		Date:    intent.Date,
		Status:  models.OutcomeSuccess,
		Booking: &view,
	}
}

// Create books a single intent: validate, check for conflicts against the
// existing bookings, then insert through the transactional repository path so
// that a race lost to a concurrent overlapping insert still surfaces as a
// conflict rather than a double booking.
func (s *DefaultBookingService) Create(ctx context.Context, intent models.BookingIntent, ownerID string) (*models.Booking, error) {
	if err := s.validateIntent(intent); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByVenueAndDate(ctx, intent.Venue, intent.Date)
	if err != nil {
		return nil, NewInvalidError("failed to query existing bookings: %v", err)
	}
	if HasConflict(intent.Slot(), bookingSlots(existing)) {
		return nil, NewConflictError("the requested timeslot is already booked")
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		Venue:          intent.Venue,
		Date:           intent.Date,
		Start:          intent.Start,
		End:            intent.End,
		Purpose:        intent.Purpose,
		PersonInCharge: intent.PersonInCharge,
		OwnerID:        ownerID,
		CreatedAt:      s.now(),
	}
	if booking.Purpose == "" {
		booking.Purpose = "unspecified"
	}

	if err := s.Repo.CreateIfFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewConflictError("the requested timeslot is already booked")
		}
		return nil, NewInvalidError("failed to create booking: %v", err)
	}

	s.scheduleReminder(ctx, *booking)
	return booking, nil
}

func (s *DefaultBookingService) validateIntent(intent models.BookingIntent) error {
	if intent.Venue == "" {
		return NewInvalidError("venue is required")
	}
	if intent.PersonInCharge == "" {
		return NewInvalidError("person in charge is required")
	}
	if _, err := time.Parse("2006-01-02", intent.Date); err != nil {
		return NewInvalidError("invalid booking date %q", intent.Date)
	}
	if intent.End <= intent.Start {
		return NewInvalidError("end time must be after start time")
	}
	// ISO dates compare correctly as strings.
	if intent.Date < s.now().Format("2006-01-02") {
		return NewInvalidError("only future dates can be booked")
	}
	return nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, booking models.Booking) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Schedule(ctx, booking); err != nil {
		s.logger().Warn("failed to schedule booking reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// duplicateDates returns the dates that appear more than once in the batch.
func duplicateDates(intents []models.BookingIntent) map[string]bool {
	seen := make(map[string]int, len(intents))
	for _, intent := range intents {
		seen[intent.Date]++
	}
	dupes := make(map[string]bool)
	for date, n := range seen {
		if n > 1 {
			dupes[date] = true
		}
	}
	return dupes
}

func bookingSlots(bookings []models.Booking) []models.TimeSlot {
	slots := make([]models.TimeSlot, len(bookings))
	for i, b := range bookings {
		slots[i] = b.Slot()
	}
	return slots
}
