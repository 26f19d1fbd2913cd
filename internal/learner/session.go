package learner

import (
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

// State is the current interaction mode of a session.
type State string

const (
	StateIdle            State = "IDLE"
	StateAwaitingAnswer  State = "AWAITING_ANSWER"
	StateSettingReminder State = "SETTING_REMINDER"
)

// EntryType tags a learning history entry.
type EntryType string

const (
	EntryQuizAnswer    EntryType = "quiz_answer"
	EntryTopicLearning EntryType = "topic_learning"
)

// DateLayout is the calendar-date format used for streak accounting.
const DateLayout = "2006-01-02"

// Score tracks quiz results. Total >= Correct always.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// HistoryEntry is one recorded interaction. Correct is set only for
// quiz_answer entries.
type HistoryEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`
	Correct   *bool     `json:"correct,omitempty"`
}

// Session is the per-user persistent learning-state record. It is mutated
// only through the tutor state machine; the difficulty and recommendation
// engines treat it as input.
type Session struct {
	State     State  `json:"state"`
	LastTopic string `json:"lastTopic"`

	// CorrectAnswer holds the expected answer letter for the outstanding
	// quiz question. Non-empty iff State == StateAwaitingAnswer.
	CorrectAnswer string `json:"correctAnswer,omitempty"`

	Score           Score          `json:"score"`
	DifficultyLevel int            `json:"difficultyLevel"`
	TopicsStudied   []string       `json:"topicsStudied"`
	LearningHistory []HistoryEntry `json:"learningHistory"`

	StreakDays     int    `json:"streakDays"`
	LastActiveDate string `json:"lastActiveDate"`

	Strengths  []subject.Subject `json:"strengths"`
	Weaknesses []subject.Subject `json:"weaknesses"`

	PreferredLanguage string    `json:"preferredLanguage"`
	TotalStudyTime    int       `json:"totalStudyTime"`
	VoiceMessages     int       `json:"voiceMessageCount"`
	TextMessages      int       `json:"textMessageCount"`
	JoinDate          time.Time `json:"joinDate"`
}

// NewSession creates a fresh session with state IDLE and all counters
// zeroed. now supplies the join timestamp and first active date.
func NewSession(now time.Time) *Session {
	return &Session{
		State:             StateIdle,
		DifficultyLevel:   MinDifficulty,
		TopicsStudied:     []string{},
		LearningHistory:   []HistoryEntry{},
		LastActiveDate:    now.Format(DateLayout),
		Strengths:         []subject.Subject{},
		Weaknesses:        []subject.Subject{},
		PreferredLanguage: "english",
		JoinDate:          now,
	}
}

// Clone returns a deep copy of the session. Slice fields and history
// entries are copied so the clone is safe to read while the original is
// being mutated.
func (s *Session) Clone() *Session {
	out := *s
	out.TopicsStudied = append([]string(nil), s.TopicsStudied...)
	out.Strengths = append([]subject.Subject(nil), s.Strengths...)
	out.Weaknesses = append([]subject.Subject(nil), s.Weaknesses...)
	out.LearningHistory = make([]HistoryEntry, len(s.LearningHistory))
	for i, h := range s.LearningHistory {
		if h.Correct != nil {
			c := *h.Correct
			h.Correct = &c
		}
		out.LearningHistory[i] = h
	}
	return &out
}

// Accuracy returns correct/total, or the neutral 0.5 before any quiz.
func (s *Session) Accuracy() float64 {
	if s.Score.Total == 0 {
		return 0.5
	}
	return float64(s.Score.Correct) / float64(s.Score.Total)
}

// AccuracyPercent returns the accuracy as a percentage, 0 before any quiz.
func (s *Session) AccuracyPercent() float64 {
	if s.Score.Total == 0 {
		return 0
	}
	return float64(s.Score.Correct) / float64(s.Score.Total) * 100
}

// RecordTopic appends a studied topic and its history entry, and marks it
// as the last topic. Duplicates are allowed in TopicsStudied.
func (s *Session) RecordTopic(topic string, now time.Time) {
	s.LastTopic = topic
	s.TopicsStudied = append(s.TopicsStudied, topic)
	s.LearningHistory = append(s.LearningHistory, HistoryEntry{
		Query:     topic,
		Timestamp: now,
		Type:      EntryTopicLearning,
	})
}

// RecordQuizAnswer appends a quiz_answer history entry. The entry
// references the quiz topic, not the learner's raw answer text.
func (s *Session) RecordQuizAnswer(topic string, correct bool, now time.Time) {
	s.LearningHistory = append(s.LearningHistory, HistoryEntry{
		Query:     topic,
		Timestamp: now,
		Type:      EntryQuizAnswer,
		Correct:   &correct,
	})
}

// HasStrength reports whether subj is already recorded as a strength.
func (s *Session) HasStrength(subj subject.Subject) bool {
	return containsSubject(s.Strengths, subj)
}

// HasWeakness reports whether subj is already recorded as a weakness.
func (s *Session) HasWeakness(subj subject.Subject) bool {
	return containsSubject(s.Weaknesses, subj)
}

// SubjectResults counts quiz answers in the history whose query classifies
// to subj, split into correct and incorrect.
func (s *Session) SubjectResults(subj subject.Subject) (correct, incorrect int) {
	for _, h := range s.LearningHistory {
		if h.Type != EntryQuizAnswer || h.Correct == nil {
			continue
		}
		if subject.Classify(h.Query) != subj {
			continue
		}
		if *h.Correct {
			correct++
		} else {
			incorrect++
		}
	}
	return correct, incorrect
}

// PromoteStrength adds subj to the strengths set once the history holds at
// least StrengthThreshold correct answers for it. Returns true when added.
func (s *Session) PromoteStrength(subj subject.Subject) bool {
	if s.HasStrength(subj) {
		return false
	}
	correct, _ := s.SubjectResults(subj)
	if correct < StrengthThreshold {
		return false
	}
	s.Strengths = append(s.Strengths, subj)
	return true
}

// PromoteWeakness adds subj to the weaknesses set once the history holds
// at least WeaknessThreshold incorrect answers for it. Returns true when
// added.
func (s *Session) PromoteWeakness(subj subject.Subject) bool {
	if s.HasWeakness(subj) {
		return false
	}
	_, incorrect := s.SubjectResults(subj)
	if incorrect < WeaknessThreshold {
		return false
	}
	s.Weaknesses = append(s.Weaknesses, subj)
	return true
}

// UniqueTopics returns the number of distinct topics studied.
func (s *Session) UniqueTopics() int {
	seen := make(map[string]struct{}, len(s.TopicsStudied))
	for _, t := range s.TopicsStudied {
		seen[t] = struct{}{}
	}
	return len(seen)
}

const (
	// StrengthThreshold is the correct-answer count that promotes a
	// subject to a strength.
	StrengthThreshold = 3

	// WeaknessThreshold is the incorrect-answer count that marks a
	// subject as a weakness.
	WeaknessThreshold = 2
)

func containsSubject(list []subject.Subject, subj subject.Subject) bool {
	for _, s := range list {
		if s == subj {
			return true
		}
	}
	return false
}
