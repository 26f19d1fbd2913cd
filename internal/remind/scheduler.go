package remind

import (
	"context"
	"fmt"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
)

// SweepInterval is how often the scheduler checks for due reminders.
const SweepInterval = time.Hour

// Sender delivers a reminder message to a learner.
type Sender func(ctx context.Context, userID, message string) error

// Scheduler sweeps the reminder store and sends due reminders.
type Scheduler struct {
	store *FileStore
	send  Sender
	log   *logger.Logger
}

// NewScheduler creates a scheduler over the given store.
func NewScheduler(store *FileStore, send Sender, log *logger.Logger) *Scheduler {
	return &Scheduler{store: store, send: send, log: log}
}

// Run sweeps on the interval until the context is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = SweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(ctx, now)
		}
	}
}

// Sweep sends every due reminder and rolls its next due time. A failed
// send leaves the reminder due so the next sweep retries it.
func (s *Scheduler) Sweep(ctx context.Context, now time.Time) {
	sent := 0
	for _, r := range s.store.All() {
		if !r.Due(now) {
			continue
		}
		if err := s.send(ctx, r.UserID, FormatMessage(r)); err != nil {
			s.log.Error("reminder send failed", "reminder_id", r.ID, "user_id", r.UserID, "error", err)
			continue
		}
		r.Roll(now)
		sent++
	}
	if sent == 0 {
		return
	}
	if err := s.store.Update(); err != nil {
		s.log.Error("reminder save failed", "error", err)
	}
	s.log.Info("reminders sent", "count", sent)
}

// FormatMessage renders the bilingual reminder notification.
func FormatMessage(r *Reminder) string {
	body := r.Message
	if body == "" {
		body = DefaultMessage
	}
	return fmt.Sprintf(`⏰ *STUDY REMINDER / अध्ययन अनुस्मारक* ⏰

📚 समय हो गया है पढ़ने का! / Time for your scheduled learning session!

%s

*Quick Options / त्वरित विकल्प:*
• Type 'quiz' for practice / अभ्यास के लिए 'quiz' टाइप करें
• Ask any topic / कोई भी विषय पूछें
• "What is photosynthesis?"
• "गुरुत्वाकर्षण क्या है?"

*Stay consistent, stay brilliant! / निरंतर रहें, प्रतिभाशाली बनें!* ✨🚀`, body)
}
