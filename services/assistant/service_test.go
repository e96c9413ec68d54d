package assistant

import (
	"context"
	"testing"
	"time"

	"venuely/models"
	"venuely/services/booking"

	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	sessions map[string]models.ChatSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.ChatSession)}
}

func (s *memSessionStore) Get(_ context.Context, id string) (*models.ChatSession, error) {
	if sess, ok := s.sessions[id]; ok {
		copied := sess
		return &copied, nil
	}
	return models.NewChatSession(), nil
}

func (s *memSessionStore) Set(_ context.Context, id string, sess *models.ChatSession) error {
	s.sessions[id] = *sess
	return nil
}

func (s *memSessionStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// stubBookingService records Create calls and returns a canned result.
type stubBookingService struct {
	createErr error
	created   []models.BookingIntent
	ownerIDs  []string
}

func (s *stubBookingService) Create(_ context.Context, intent models.BookingIntent, ownerID string) (*models.Booking, error) {
	s.created = append(s.created, intent)
	s.ownerIDs = append(s.ownerIDs, ownerID)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Booking{
		ID:             "b-1",
		Venue:          intent.Venue,
		Date:           intent.Date,
		Start:          intent.Start,
		End:            intent.End,
		Purpose:        intent.Purpose,
		PersonInCharge: intent.PersonInCharge,
		OwnerID:        ownerID,
	}, nil
}

func (s *stubBookingService) CheckConflict(context.Context, models.TimeSlot) (*models.ConflictCheckResult, error) {
	return &models.ConflictCheckResult{}, nil
}
func (s *stubBookingService) Submit(context.Context, []models.BookingIntent, string) ([]models.BookingOutcome, error) {
	return nil, nil
}
func (s *stubBookingService) List(context.Context) ([]models.Booking, error) { return nil, nil }
func (s *stubBookingService) Get(context.Context, string) (*models.Booking, error) {
	return nil, booking.NewNotFoundError("not found")
}
func (s *stubBookingService) Update(context.Context, string, models.BookingIntent, string) (*models.Booking, error) {
	return nil, booking.NewNotFoundError("not found")
}
func (s *stubBookingService) Delete(context.Context, string, string) error { return nil }

func newTestAssistant(stub *stubBookingService) (*DefaultAssistantService, *memSessionStore) {
	store := newMemSessionStore()
	svc := NewDefaultAssistantService(store, stub, []string{"Room A", "Room B", "Music Room", "Hall"}, nil)
	svc.Now = func() time.Time { return testNow }
	return svc, store
}

func TestHandleMessagePersistsPartialSession(t *testing.T) {
	svc, store := newTestAssistant(&stubBookingService{})
	ctx := context.Background()

	reply, err := svc.HandleMessage(ctx, "conv-1", "user-1", "Ms. Chan", "I want the Hall")
	require.NoError(t, err)
	require.NotEmpty(t, reply.Messages)
	require.Nil(t, reply.Booking)

	stored, ok := store.sessions["conv-1"]
	require.True(t, ok)
	require.Equal(t, models.StageAwaitingDate, stored.Stage)
	require.Equal(t, "Hall", stored.Collected.Venue)
}

func TestHandleMessageCommitsCompletedIntent(t *testing.T) {
	stub := &stubBookingService{}
	svc, store := newTestAssistant(stub)
	ctx := context.Background()

	reply, err := svc.HandleMessage(ctx, "conv-1", "user-1", "Ms. Chan",
		"book Room A tomorrow afternoon 2 to 4 for a meeting")
	require.NoError(t, err)
	require.NotNil(t, reply.Booking)
	require.Equal(t, "Room A", reply.Booking.Venue)

	require.Len(t, stub.created, 1)
	require.Equal(t, "user-1", stub.ownerIDs[0])
	require.Equal(t, "Ms. Chan", stub.created[0].PersonInCharge)

	// Commit is terminal: no session survives.
	_, ok := store.sessions["conv-1"]
	require.False(t, ok)
}

func TestHandleMessageConflictClearsSession(t *testing.T) {
	stub := &stubBookingService{createErr: booking.NewConflictError("the requested timeslot is already booked")}
	svc, store := newTestAssistant(stub)
	ctx := context.Background()

	reply, err := svc.HandleMessage(ctx, "conv-1", "user-1", "Ms. Chan",
		"book Room A tomorrow afternoon 2 to 4")
	require.NoError(t, err)
	require.Nil(t, reply.Booking)
	require.Contains(t, reply.Messages[len(reply.Messages)-1], "already booked")

	_, ok := store.sessions["conv-1"]
	require.False(t, ok)

	// The next utterance starts a fresh conversation.
	stub.createErr = nil
	reply, err = svc.HandleMessage(ctx, "conv-1", "user-1", "Ms. Chan", "hello")
	require.NoError(t, err)
	require.Nil(t, reply.Booking)
}

func TestResetDropsSession(t *testing.T) {
	svc, store := newTestAssistant(&stubBookingService{})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, "conv-1", "user-1", "Ms. Chan", "I want the Hall")
	require.NoError(t, err)
	require.Contains(t, store.sessions, "conv-1")

	require.NoError(t, svc.Reset(ctx, "conv-1"))
	require.NotContains(t, store.sessions, "conv-1")
}
