package learner

import (
	"testing"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

func TestNewSessionDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession(now)

	if s.State != StateIdle {
		t.Errorf("State = %q, want IDLE", s.State)
	}
	if s.DifficultyLevel != MinDifficulty {
		t.Errorf("DifficultyLevel = %d, want %d", s.DifficultyLevel, MinDifficulty)
	}
	if s.Score.Correct != 0 || s.Score.Total != 0 {
		t.Errorf("Score = %+v, want zero", s.Score)
	}
	if s.LastActiveDate != "2025-06-01" {
		t.Errorf("LastActiveDate = %q", s.LastActiveDate)
	}
	if !s.JoinDate.Equal(now) {
		t.Errorf("JoinDate = %v, want %v", s.JoinDate, now)
	}
}

func TestAccuracyNeutralDefault(t *testing.T) {
	s := NewSession(time.Now())
	if got := s.Accuracy(); got != 0.5 {
		t.Errorf("Accuracy with no quizzes = %f, want 0.5", got)
	}
	if got := s.AccuracyPercent(); got != 0 {
		t.Errorf("AccuracyPercent with no quizzes = %f, want 0", got)
	}

	s.Score = Score{Correct: 3, Total: 4}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", got)
	}
}

func TestRecordTopic(t *testing.T) {
	now := time.Now()
	s := NewSession(now)
	s.RecordTopic("photosynthesis in plants", now)
	s.RecordTopic("photosynthesis in plants", now)

	if s.LastTopic != "photosynthesis in plants" {
		t.Errorf("LastTopic = %q", s.LastTopic)
	}
	if len(s.TopicsStudied) != 2 {
		t.Errorf("TopicsStudied length = %d, want 2 (duplicates allowed)", len(s.TopicsStudied))
	}
	if s.UniqueTopics() != 1 {
		t.Errorf("UniqueTopics = %d, want 1", s.UniqueTopics())
	}
	if len(s.LearningHistory) != 2 || s.LearningHistory[0].Type != EntryTopicLearning {
		t.Errorf("unexpected history: %+v", s.LearningHistory)
	}
	if s.LearningHistory[0].Correct != nil {
		t.Error("topic_learning entry should not carry a correctness flag")
	}
}

func TestStrengthPromotionThreshold(t *testing.T) {
	now := time.Now()
	s := NewSession(now)

	s.RecordQuizAnswer("basic algebra", true, now)
	s.RecordQuizAnswer("geometry proofs", true, now)
	if s.PromoteStrength(subject.Math) {
		t.Fatal("promoted strength with only 2 correct answers")
	}

	s.RecordQuizAnswer("calculus limits", true, now)
	if !s.PromoteStrength(subject.Math) {
		t.Fatal("expected strength promotion after 3 correct math answers")
	}
	if !s.HasStrength(subject.Math) {
		t.Fatal("math missing from strengths")
	}

	// Set semantics: promoting again must not duplicate.
	if s.PromoteStrength(subject.Math) {
		t.Error("duplicate strength promotion")
	}
	if len(s.Strengths) != 1 {
		t.Errorf("Strengths = %v, want single entry", s.Strengths)
	}
}

func TestWeaknessPromotionThreshold(t *testing.T) {
	now := time.Now()
	s := NewSession(now)

	s.RecordQuizAnswer("chemistry experiment", false, now)
	if s.PromoteWeakness(subject.Science) {
		t.Fatal("promoted weakness with only 1 incorrect answer")
	}

	s.RecordQuizAnswer("physics gravity", false, now)
	if !s.PromoteWeakness(subject.Science) {
		t.Fatal("expected weakness promotion after 2 incorrect science answers")
	}
	if s.PromoteWeakness(subject.Science) {
		t.Error("duplicate weakness promotion")
	}
}

func TestSubjectResultsIgnoresTopicEntries(t *testing.T) {
	now := time.Now()
	s := NewSession(now)
	s.RecordTopic("algebra basics", now)
	s.RecordQuizAnswer("algebra basics", true, now)
	s.RecordQuizAnswer("algebra basics", false, now)

	correct, incorrect := s.SubjectResults(subject.Math)
	if correct != 1 || incorrect != 1 {
		t.Errorf("SubjectResults = (%d, %d), want (1, 1)", correct, incorrect)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	now := time.Now()
	s := NewSession(now)
	s.RecordTopic("algebra basics", now)
	s.RecordQuizAnswer("algebra basics", true, now)
	s.RecordQuizAnswer("algebra fractions", true, now)
	s.RecordQuizAnswer("geometry angles", true, now)
	if !s.PromoteStrength(subject.Math) {
		t.Fatal("expected strength promotion")
	}

	c := s.Clone()
	s.RecordTopic("gravity", now)
	s.RecordQuizAnswer("gravity", false, now)
	*s.LearningHistory[1].Correct = false
	s.Score.Total = 5

	if len(c.TopicsStudied) != 1 || len(c.LearningHistory) != 4 {
		t.Errorf("clone grew with the original: %+v", c)
	}
	if c.LearningHistory[1].Correct == nil || !*c.LearningHistory[1].Correct {
		t.Error("clone shares history Correct pointer with the original")
	}
	if c.Score.Total != 0 {
		t.Errorf("clone Score = %+v", c.Score)
	}
	if len(c.Strengths) != 1 || c.Strengths[0] != subject.Math {
		t.Errorf("clone Strengths = %v", c.Strengths)
	}
}
