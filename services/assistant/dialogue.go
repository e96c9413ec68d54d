package assistant

import (
	"fmt"
	"strings"
	"time"

	"venuely/models"
)

// StateMachine drives one conversation's slot-filling dialogue. It mutates
// the passed session in place and reports the assistant's replies; when the
// collected details are complete it also emits the finished intent. The
// machine never emits an intent with a missing venue, date, or start time.
type StateMachine struct {
	ext *Extractor
}

func NewStateMachine(ext *Extractor) *StateMachine {
	return &StateMachine{ext: ext}
}

// Step processes one utterance. userName becomes the person in charge when
// an intent completes.
func (m *StateMachine) Step(sess *models.ChatSession, text string, now time.Time, userName string) ([]string, *models.BookingIntent) {
	switch sess.Stage {
	case models.StageAwaitingVenue:
		return m.stepAwaitingVenue(sess, text, userName)
	case models.StageAwaitingDate:
		return m.stepAwaitingDate(sess, text, now, userName)
	case models.StageAwaitingTime:
		return m.stepAwaitingTime(sess, text, now, userName)
	default:
		return m.stepIdle(sess, text, now, userName)
	}
}

func (m *StateMachine) stepIdle(sess *models.ChatSession, text string, now time.Time, userName string) ([]string, *models.BookingIntent) {
	parsed := m.ext.Extract(text, now)
	if parsed == nil {
		// No usable signal at all; stay idle.
		return []string{m.greeting()}, nil
	}

	sess.Collected.Merge(parsed)
	return m.advance(sess, userName)
}

// advance completes the intent when every field is collected, otherwise asks
// for the first missing one in fixed venue -> date -> time order.
func (m *StateMachine) advance(sess *models.ChatSession, userName string) ([]string, *models.BookingIntent) {
	switch {
	case sess.Collected.Venue == "":
		sess.Stage = models.StageAwaitingVenue
		return []string{m.promptVenue()}, nil
	case sess.Collected.Date == "":
		sess.Stage = models.StageAwaitingDate
		return []string{promptDate(sess.Collected.Venue)}, nil
	case !sess.Collected.HasTime():
		sess.Stage = models.StageAwaitingTime
		return []string{promptTime(sess.Collected.Date)}, nil
	default:
		return m.complete(sess, userName)
	}
}

func (m *StateMachine) stepAwaitingVenue(sess *models.ChatSession, text, userName string) ([]string, *models.BookingIntent) {
	venue := m.ext.matchVenue(text)
	if venue == "" {
		return []string{fmt.Sprintf("Sorry, we only have the following venues: %s. Please pick one.",
			strings.Join(m.ext.venues, ", "))}, nil
	}
	sess.Collected.Venue = venue
	return m.advance(sess, userName)
}

func (m *StateMachine) stepAwaitingDate(sess *models.ChatSession, text string, now time.Time, userName string) ([]string, *models.BookingIntent) {
	parsed := m.ext.Extract(text, now)
	if parsed == nil || parsed.Date == "" {
		return []string{`Sorry, I couldn't recognise that date. Please try a format like "12/25" or "tomorrow".`}, nil
	}
	sess.Collected.Date = parsed.Date
	return m.advance(sess, userName)
}

func (m *StateMachine) stepAwaitingTime(sess *models.ChatSession, text string, now time.Time, userName string) ([]string, *models.BookingIntent) {
	parsed := m.ext.Extract(text, now)
	if parsed == nil || !parsed.HasTime() {
		return []string{`Sorry, I couldn't recognise that time. Please try a format like "2 to 4" or "14:00 to 16:00".`}, nil
	}
	sess.Collected.Start = parsed.Start
	sess.Collected.End = parsed.End
	return m.advance(sess, userName)
}

// complete assembles the finished intent from the collected details and
// moves the session to the confirming stage; the caller resets the session
// once the commit resolves.
func (m *StateMachine) complete(sess *models.ChatSession, userName string) ([]string, *models.BookingIntent) {
	c := sess.Collected
	intent := &models.BookingIntent{
		Venue:          c.Venue,
		Date:           c.Date,
		Start:          *c.Start,
		End:            *c.End,
		Purpose:        c.Purpose,
		PersonInCharge: userName,
	}
	sess.Stage = models.StageConfirming

	msg := fmt.Sprintf("Got it! Checking %s on %s from %s to %s...",
		intent.Venue, intent.Date,
		models.MinutesToClock(intent.Start), models.MinutesToClock(intent.End))
	return []string{msg}, intent
}

func (m *StateMachine) greeting() string {
	return `I can help you book a venue. For example: "I'd like to book the Music Room tomorrow afternoon 2 to 4 for a meeting".`
}

func (m *StateMachine) promptVenue() string {
	return fmt.Sprintf("Which venue would you like to book? We have: %s", strings.Join(m.ext.venues, ", "))
}

func promptDate(venue string) string {
	return fmt.Sprintf("Great, booking %s. Which day would you like? (e.g. tomorrow, 12/25)", venue)
}

func promptTime(date string) string {
	return fmt.Sprintf("Got it, %s. From what time until what time? (e.g. afternoon 2 to 4)", date)
}
