package models

// Dialogue stages for the booking assistant. A session is terminal per
// booking attempt: once a commit resolves (success or failure) it returns to
// StageIdle with empty collected details.
const (
	StageIdle          = "idle"
	StageAwaitingVenue = "awaiting_venue"
	StageAwaitingDate  = "awaiting_date"
	StageAwaitingTime  = "awaiting_time"
	StageConfirming    = "confirming"
)

// ChatSession is the per-conversation dialogue state. It is owned exclusively
// by one conversation and never shared across conversations.
type ChatSession struct {
	Stage     string       `json:"stage"`
	Collected ParsedIntent `json:"collected"`
}

// NewChatSession returns a fresh idle session.
func NewChatSession() *ChatSession {
	return &ChatSession{Stage: StageIdle}
}

// Reset collapses the session back to idle with nothing collected.
func (s *ChatSession) Reset() {
	s.Stage = StageIdle
	s.Collected = ParsedIntent{}
}

// ChatReply is what the assistant sends back for one user message.
type ChatReply struct {
	Messages []string     `json:"messages"`
	Booking  *BookingView `json:"booking,omitempty"`
}
