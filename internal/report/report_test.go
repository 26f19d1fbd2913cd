package report

import (
	"strings"
	"testing"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

func TestComputeStats(t *testing.T) {
	join := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	now := join.AddDate(0, 0, 10)

	s := learner.NewSession(join)
	s.Score = learner.Score{Correct: 3, Total: 4}
	for i := 0; i < 5; i++ {
		s.RecordTopic("algebra", join)
	}

	stats := Compute(s, now)
	if stats.AccuracyPct != 75 {
		t.Errorf("AccuracyPct = %f, want 75", stats.AccuracyPct)
	}
	if stats.UniqueTopics != 1 {
		t.Errorf("UniqueTopics = %d, want 1", stats.UniqueTopics)
	}
	if stats.DaysLearning != 10 {
		t.Errorf("DaysLearning = %d, want 10", stats.DaysLearning)
	}
	// 5 entries over 10 days = 50%.
	if stats.Consistency != 50 {
		t.Errorf("Consistency = %f, want 50", stats.Consistency)
	}
}

func TestComputeConsistencyCapped(t *testing.T) {
	join := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := learner.NewSession(join)
	for i := 0; i < 50; i++ {
		s.RecordTopic("algebra", join)
	}

	// Joined today: days clamps to 1 for the ratio, capped at 100.
	stats := Compute(s, join.Add(2*time.Hour))
	if stats.Consistency != 100 {
		t.Errorf("Consistency = %f, want capped 100", stats.Consistency)
	}
	if stats.DaysLearning != 0 {
		t.Errorf("DaysLearning = %d, want 0", stats.DaysLearning)
	}
}

func TestAchievementTier(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{95, "EXCELLENT"},
		{90, "EXCELLENT"},
		{80, "GOOD PROGRESS"},
		{65, "KEEP PRACTICING"},
		{10, "GETTING STARTED"},
		{0, "GETTING STARTED"},
	}
	for _, tt := range tests {
		if got := AchievementTier(tt.pct); !strings.Contains(got, tt.want) {
			t.Errorf("AchievementTier(%f) = %q, want containing %q", tt.pct, got, tt.want)
		}
	}
}

func TestFormatIncludesSections(t *testing.T) {
	join := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	now := join.AddDate(0, 0, 3)

	s := learner.NewSession(join)
	s.Score = learner.Score{Correct: 9, Total: 10}
	s.StreakDays = 3
	s.Strengths = []subject.Subject{subject.Math}
	s.Weaknesses = []subject.Subject{subject.History}

	out := Format(s, now)

	for _, want := range []string{
		"YOUR LEARNING REPORT",
		"Accuracy Rate / सटीकता: 90.0%",
		"Learning Streak / अध्ययन श्रृंखला: 3 days",
		"• Math",
		"• History",
		"EXCELLENT LEARNER",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestFormatEmptySessionFallbacks(t *testing.T) {
	s := learner.NewSession(time.Now())
	out := Format(s, time.Now())

	if !strings.Contains(out, "discover your strengths") {
		t.Error("missing strengths fallback")
	}
	if !strings.Contains(out, "No major weak areas") {
		t.Error("missing weaknesses fallback")
	}
	if !strings.Contains(out, "Complete more quizzes") {
		t.Error("missing recommendations fallback")
	}
}
