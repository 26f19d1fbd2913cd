package learner

import (
	"testing"
	"time"
)

func TestUpdateStreakConsecutiveDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewSession(now.AddDate(0, 0, -5))
	s.StreakDays = 4
	s.LastActiveDate = "2025-06-09"

	if !s.UpdateStreak(now) {
		t.Fatal("expected streak update")
	}
	if s.StreakDays != 5 {
		t.Errorf("StreakDays = %d, want 5", s.StreakDays)
	}
	if s.LastActiveDate != "2025-06-10" {
		t.Errorf("LastActiveDate = %q", s.LastActiveDate)
	}
}

func TestUpdateStreakGapResets(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewSession(now.AddDate(0, 0, -10))
	s.StreakDays = 7
	s.LastActiveDate = "2025-06-07" // 3 days ago

	s.UpdateStreak(now)
	if s.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1 after a gap", s.StreakDays)
	}
}

func TestUpdateStreakOncePerDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewSession(now.AddDate(0, 0, -2))
	s.StreakDays = 1
	s.LastActiveDate = "2025-06-09"

	s.UpdateStreak(now)
	first := s.StreakDays

	// Second call on the same calendar day must not change anything.
	if s.UpdateStreak(now.Add(6 * time.Hour)) {
		t.Error("streak updated twice in one day")
	}
	if s.StreakDays != first {
		t.Errorf("StreakDays = %d, want %d", s.StreakDays, first)
	}
}

func TestUpdateStreakBadDateResets(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewSession(now)
	s.StreakDays = 9
	s.LastActiveDate = "not-a-date"

	s.UpdateStreak(now)
	if s.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", s.StreakDays)
	}
}
