package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venuely/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues a reminder task ahead of each booking's
// start time. Bookings whose fire time is already in the past are skipped.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func NewAsynqReminderScheduler(client *asynq.Client, lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client, Lead: lead}
}

func (s *AsynqReminderScheduler) Schedule(ctx context.Context, b models.Booking) error {
	startOfDay, err := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", b.Date, err)
	}
	fireAt := startOfDay.Add(time.Duration(b.Start)*time.Minute - s.Lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		Venue:     b.Venue,
		Date:      b.Date,
		Start:     models.MinutesToClock(b.Start),
		OwnerID:   b.OwnerID,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
