// Package remind manages study reminders: parsing a learner's reminder
// phrase, persisting the schedule, and sweeping for due reminders.
package remind

import (
	"time"

	"github.com/google/uuid"
)

// Frequency of a reminder.
type Frequency string

const (
	Daily  Frequency = "daily"
	Weekly Frequency = "weekly"
)

// DefaultMessage is sent when a reminder carries no custom message.
const DefaultMessage = "Ready to learn something new today? / आज कुछ नया सीखने के लिए तैयार हैं?"

// QuizMessage is the message for quiz practice reminders.
const QuizMessage = "Quiz practice time! Type 'quiz' to start! / प्रश्न अभ्यास का समय! शुरू करने के लिए 'quiz' टाइप करें!"

// Reminder is a scheduled study nudge for one learner.
type Reminder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Frequency Frequency `json:"frequency"`
	Message   string    `json:"message,omitempty"`
	Active    bool      `json:"active"`
	NextDue   time.Time `json:"nextDue"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates an active reminder with a fresh ID.
func New(userID string, freq Frequency, message string, nextDue, now time.Time) *Reminder {
	return &Reminder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Frequency: freq,
		Message:   message,
		Active:    true,
		NextDue:   nextDue,
		CreatedAt: now,
	}
}

// Roll advances NextDue after the reminder fires. Rolls from the sweep
// time, not the scheduled time, so a missed window doesn't cause a
// burst of catch-up sends.
func (r *Reminder) Roll(now time.Time) {
	switch r.Frequency {
	case Weekly:
		r.NextDue = now.Add(7 * 24 * time.Hour)
	default:
		r.NextDue = now.Add(24 * time.Hour)
	}
}

// Due reports whether the reminder should fire.
func (r *Reminder) Due(now time.Time) bool {
	return r.Active && !now.Before(r.NextDue)
}
