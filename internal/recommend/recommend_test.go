package recommend

import (
	"testing"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

func TestTopicsEmptySession(t *testing.T) {
	s := learner.NewSession(time.Now())
	if recs := Topics(s); len(recs) != 0 {
		t.Errorf("expected no recommendations for a fresh session, got %v", recs)
	}
}

func TestTopicsUnstudiedWeaknessFirst(t *testing.T) {
	s := learner.NewSession(time.Now())
	s.Weaknesses = []subject.Subject{subject.Science}

	recs := Topics(s)
	if len(recs) != 1 || recs[0] != "Basic concepts in science" {
		t.Errorf("recs = %v", recs)
	}
}

func TestTopicsStudiedWeaknessSkipped(t *testing.T) {
	now := time.Now()
	s := learner.NewSession(now)
	s.Weaknesses = []subject.Subject{subject.Science}
	s.RecordTopic("physics gravity experiment", now)

	for _, r := range Topics(s) {
		if r == "Basic concepts in science" {
			t.Fatalf("studied weakness should be skipped: %v", Topics(s))
		}
	}
}

func TestTopicsStrengthLabelTracksLevel(t *testing.T) {
	s := learner.NewSession(time.Now())
	s.Strengths = []subject.Subject{subject.Math}
	s.DifficultyLevel = 1

	recs := Topics(s)
	if len(recs) != 1 || recs[0] != "intermediate algebra in math" {
		t.Errorf("recs = %v", recs)
	}

	// At the expert level there is no next label, so nothing is suggested.
	s.DifficultyLevel = learner.MaxDifficulty
	if recs := Topics(s); len(recs) != 0 {
		t.Errorf("expert-level strength should yield nothing, got %v", recs)
	}
}

func TestTopicsRecentHistory(t *testing.T) {
	now := time.Now()
	s := learner.NewSession(now)
	s.RecordTopic("tell me a story", now) // general: no suggestion
	s.RecordTopic("python coding", now)
	s.RecordTopic("ancient history", now)

	recs := Topics(s)
	want := []string{"Advanced computer concepts", "Advanced history concepts"}
	if len(recs) != len(want) {
		t.Fatalf("recs = %v, want %v", recs, want)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i], want[i])
		}
	}
}

func TestTopicsCappedAtThree(t *testing.T) {
	now := time.Now()
	s := learner.NewSession(now)
	s.Weaknesses = []subject.Subject{subject.Science, subject.History, subject.Geography}
	s.Strengths = []subject.Subject{subject.Math, subject.Computer}
	for i := 0; i < 10; i++ {
		s.RecordTopic("python coding", now)
	}

	if recs := Topics(s); len(recs) != MaxRecommendations {
		t.Errorf("got %d recommendations, want %d", len(recs), MaxRecommendations)
	}
}
