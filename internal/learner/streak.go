package learner

import "time"

// UpdateStreak advances the consecutive-day activity counter. A gap of
// exactly one day extends the streak; a longer gap resets it to 1. The
// active date moves forward at most once per calendar day, so repeated
// calls on the same day are no-ops. Returns true if the session changed.
func (s *Session) UpdateStreak(now time.Time) bool {
	today := now.Format(DateLayout)
	if s.LastActiveDate == today {
		return false
	}

	last, err := time.Parse(DateLayout, s.LastActiveDate)
	if err != nil {
		// Unparseable date from an older snapshot: start over.
		s.StreakDays = 1
		s.LastActiveDate = today
		return true
	}

	cur, _ := time.Parse(DateLayout, today)
	gap := int(cur.Sub(last).Hours() / 24)

	switch {
	case gap == 1:
		s.StreakDays++
	case gap > 1:
		s.StreakDays = 1
	}
	s.LastActiveDate = today
	return true
}
