package assistant

import (
	"context"
	"fmt"

	"venuely/models"
	"venuely/services/booking"

	"go.uber.org/zap"
)

// HandleMessage loads the conversation's session, steps the dialogue, and
// commits the booking when the intent is complete. Every booking attempt is
// terminal for the session: whatever the commit outcome, the session resets
// to idle.
func (s *DefaultAssistantService) HandleMessage(ctx context.Context, conversationID, userID, userName, text string) (*models.ChatReply, error) {
	sess, err := s.Store.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load chat session: %w", err)
	}

	replies, intent := s.Machine.Step(sess, text, s.now(), userName)
	if intent == nil {
		if err := s.Store.Set(ctx, conversationID, sess); err != nil {
			return nil, fmt.Errorf("save chat session: %w", err)
		}
		return &models.ChatReply{Messages: replies}, nil
	}

	reply := &models.ChatReply{Messages: replies}
	created, err := s.Booking.Create(ctx, *intent, userID)
	switch {
	case err == nil:
		view := created.View()
		reply.Booking = &view
		reply.Messages = append(reply.Messages, fmt.Sprintf(
			"Booking confirmed!\nVenue: %s\nDate: %s\nTime: %s - %s\nPurpose: %s",
			created.Venue, created.Date, view.Start, view.End, created.Purpose))
	case booking.IsConflict(err):
		reply.Messages = append(reply.Messages, fmt.Sprintf(
			"Sorry, %s is already booked on %s from %s to %s. Please choose another time.",
			intent.Venue, intent.Date,
			models.MinutesToClock(intent.Start), models.MinutesToClock(intent.End)))
	case booking.IsInvalid(err):
		reply.Messages = append(reply.Messages, fmt.Sprintf(
			"Sorry, that booking isn't possible: %s.", booking.ErrorMessage(err)))
	default:
		s.logger().Warn("chat booking commit failed",
			zap.String("conversationId", conversationID), zap.Error(err))
		reply.Messages = append(reply.Messages,
			"Something went wrong and the booking failed. Please try again later.")
	}

	// Terminal outcome: the session always collapses back to idle.
	if err := s.Store.Clear(ctx, conversationID); err != nil {
		s.logger().Warn("failed to clear chat session",
			zap.String("conversationId", conversationID), zap.Error(err))
	}
	return reply, nil
}

// Reset collapses the conversation back to an idle session.
func (s *DefaultAssistantService) Reset(ctx context.Context, conversationID string) error {
	return s.Store.Clear(ctx, conversationID)
}
