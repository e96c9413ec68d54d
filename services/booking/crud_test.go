package booking

import (
	"context"
	"testing"

	"venuely/models"

	"github.com/stretchr/testify/require"
)

func TestCheckConflictReportsCollisions(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, intent("Library", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	res, err := svc.CheckConflict(ctx, models.TimeSlot{Venue: "Library", Date: "2026-06-01", Start: 15 * 60, End: 17 * 60})
	require.NoError(t, err)
	require.True(t, res.HasConflict)
	require.Len(t, res.ConflictingBookings, 1)
	require.Equal(t, "14:00", res.ConflictingBookings[0].Start)
	require.Equal(t, "16:00", res.ConflictingBookings[0].End)

	res, err = svc.CheckConflict(ctx, models.TimeSlot{Venue: "Library", Date: "2026-06-01", Start: 16 * 60, End: 18 * 60})
	require.NoError(t, err)
	require.False(t, res.HasConflict)
	require.Empty(t, res.ConflictingBookings)
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(newMemBookingRepo())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestUpdateMovesBooking(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("G02", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, intent("G02", "2026-06-01", 9*60, 11*60), "user-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, 9*60, updated.Start)
	require.Equal(t, "user-1", updated.OwnerID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateIgnoresOwnSlotInConflictCheck(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("G02", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	// Shrinking within the original window must not conflict with itself.
	updated, err := svc.Update(ctx, created.ID, intent("G02", "2026-06-01", 14*60+30, 15*60+30), "user-1")
	require.NoError(t, err)
	require.Equal(t, 14*60+30, updated.Start)
}

func TestUpdateRejectsConflictWithOtherBooking(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("G02", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, intent("G02", "2026-06-01", 16*60, 18*60), "user-2")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, intent("G02", "2026-06-01", 15*60, 17*60), "user-1")
	require.Error(t, err)
	require.True(t, IsConflict(err))
}

func TestUpdateRequiresOwnership(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("G02", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, intent("G02", "2026-06-01", 9*60, 11*60), "user-2")
	require.Error(t, err)
	require.True(t, IsUnauthorized(err))
}

func TestUpdateKeepsPurposeWhenOmitted(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("G02", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	in := intent("G02", "2026-06-01", 9*60, 11*60)
	in.Purpose = ""
	updated, err := svc.Update(ctx, created.ID, in, "user-1")
	require.NoError(t, err)
	require.Equal(t, "meeting", updated.Purpose)
}

func TestDelete(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, intent("Hall", "2026-06-01", 14*60, 16*60), "user-1")
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, "user-2")
	require.True(t, IsUnauthorized(err))

	require.NoError(t, svc.Delete(ctx, created.ID, "user-1"))
	require.Equal(t, 0, repo.count())

	err = svc.Delete(ctx, created.ID, "user-1")
	require.True(t, IsNotFound(err))

	// Freed slot is bookable again.
	_, err = svc.Create(ctx, intent("Hall", "2026-06-01", 14*60, 16*60), "user-2")
	require.NoError(t, err)
}

func TestListOrdersByDateThenStart(t *testing.T) {
	svc := newTestService(newMemBookingRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, intent("Hall", "2026-06-02", 9*60, 10*60), "user-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, intent("Hall", "2026-06-01", 15*60, 16*60), "user-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, intent("Hall", "2026-06-01", 9*60, 10*60), "user-1")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "2026-06-01", all[0].Date)
	require.Equal(t, 9*60, all[0].Start)
	require.Equal(t, "2026-06-01", all[1].Date)
	require.Equal(t, 15*60, all[1].Start)
	require.Equal(t, "2026-06-02", all[2].Date)
}
