// Package tutor implements the per-user learning-session state machine:
// intent resolution, quiz-answer scoring, strength and weakness tracking,
// and the directives handed to the content generator.
package tutor

import (
	"strings"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

// DefaultQuizTopic is used when a quiz is requested before any topic has
// been studied.
const DefaultQuizTopic = "computer programming basics"

// Handle runs one inbound message through the state machine. It mutates
// the session (streak, difficulty, score, topic and history bookkeeping)
// and returns the directive describing what to generate. It never fails;
// collaborator errors are the caller's concern.
func Handle(s *learner.Session, rawText string, now time.Time) Directive {
	// Streak and difficulty run before intent resolution, every message.
	s.UpdateStreak(now)
	level := s.AdjustDifficulty()

	// Defensive: an awaiting-answer session with no stored answer cannot
	// score anything. Treat it as idle.
	if s.State == learner.StateAwaitingAnswer && s.CorrectAnswer == "" {
		s.State = learner.StateIdle
	}

	switch ResolveIntent(rawText, s) {
	case IntentReport:
		return Directive{Kind: RenderProgressReport, RawText: rawText, Difficulty: level}

	case IntentReminder:
		s.State = learner.StateSettingReminder
		return Directive{Kind: RenderReminderMenu, RawText: rawText, Difficulty: level}

	case IntentQuizAnswer:
		return scoreAnswer(s, rawText, now, level)

	case IntentQuizRequest:
		topic := s.LastTopic
		if topic == "" {
			topic = DefaultQuizTopic
		}
		s.State = learner.StateAwaitingAnswer
		return Directive{
			Kind:       RenderQuiz,
			RawText:    rawText,
			Topic:      topic,
			Subject:    subject.Classify(topic),
			Difficulty: level,
		}

	case IntentGreeting:
		return Directive{Kind: RenderWelcome, RawText: rawText, Difficulty: level}

	default:
		s.RecordTopic(rawText, now)
		return Directive{
			Kind:       RenderLesson,
			RawText:    rawText,
			Topic:      rawText,
			Subject:    subject.Classify(rawText),
			Difficulty: level,
		}
	}
}

// scoreAnswer settles an outstanding quiz question: records the history
// entry against the quiz topic, updates the score, evaluates strength or
// weakness promotion, and returns the session to idle.
func scoreAnswer(s *learner.Session, rawText string, now time.Time, level int) Directive {
	answer := s.CorrectAnswer
	correct := AnswerMatches(rawText, answer)
	topicSubject := subject.Classify(s.LastTopic)

	s.RecordQuizAnswer(s.LastTopic, correct, now)

	kind := RenderIncorrectFeedback
	if correct {
		s.Score.Correct++
		s.PromoteStrength(topicSubject)
		kind = RenderCorrectFeedback
	} else {
		s.PromoteWeakness(topicSubject)
	}
	s.Score.Total++

	s.State = learner.StateIdle
	s.CorrectAnswer = ""

	return Directive{
		Kind:          kind,
		RawText:       rawText,
		Topic:         s.LastTopic,
		Subject:       topicSubject,
		Difficulty:    level,
		CorrectAnswer: answer,
		WasCorrect:    correct,
	}
}

// SetCorrectAnswer stores the expected answer letter extracted from
// generated quiz content. It is the out-of-band callback invoked after the
// generator returns; it only applies while the quiz is outstanding.
func SetCorrectAnswer(s *learner.Session, letter string) {
	if s.State != learner.StateAwaitingAnswer {
		return
	}
	s.CorrectAnswer = strings.ToUpper(strings.TrimSpace(letter))
}

// ClearPendingQuiz abandons an outstanding question, returning the session
// to idle. Used when quiz generation fails so the learner is not trapped
// answering a question that was never delivered.
func ClearPendingQuiz(s *learner.Session) {
	if s.State == learner.StateAwaitingAnswer {
		s.State = learner.StateIdle
		s.CorrectAnswer = ""
	}
}
