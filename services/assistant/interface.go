package assistant

import (
	"context"
	"time"

	"venuely/models"
	"venuely/services/booking"

	"go.uber.org/zap"
)

// AssistantService is the conversational booking interface.
type AssistantService interface {
	// HandleMessage advances the conversation's dialogue with one utterance.
	// When the collected details complete an intent it commits the booking
	// and reports the outcome in the reply.
	HandleMessage(ctx context.Context, conversationID, userID, userName, text string) (*models.ChatReply, error)
	// Reset abandons the conversation's in-progress booking, if any.
	Reset(ctx context.Context, conversationID string) error
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Store   SessionStore
	Machine *StateMachine
	Booking booking.BookingService
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewDefaultAssistantService(store SessionStore, bookingSvc booking.BookingService, venues []string, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{
		Store:   store,
		Machine: NewStateMachine(NewExtractor(venues)),
		Booking: bookingSvc,
		Logger:  logger,
	}
}

func (s *DefaultAssistantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAssistantService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
