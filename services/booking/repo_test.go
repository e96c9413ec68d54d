package booking

import (
	"context"
	"sort"
	"sync"

	bookingRepo "venuely/database/repository/booking"
	"venuely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// memBookingRepo is an in-memory BookingRepository. CreateIfFree holds the
// lock across the overlap re-check and the insert, mirroring the transactional
// guarantee of the Mongo implementation.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) CreateIfFree(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Slot().Overlaps(booking.Slot()) {
			return bookingRepo.ErrSlotTaken
		}
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}

func (r *memBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}

func (r *memBookingRepo) GetByVenueAndDate(_ context.Context, venue, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Venue == venue && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindOverlapping(_ context.Context, venue, date string, start, end int, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := models.TimeSlot{Venue: venue, Date: date, Start: start, End: end}
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Slot()) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) Replace(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) EnsureIndexes(context.Context) error { return nil }

func (r *memBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
