package tutor

import "github.com/harsh8864/bharat-ai-tutor/internal/subject"

// DirectiveKind names the content the generation collaborator should
// produce next.
type DirectiveKind string

const (
	RenderProgressReport    DirectiveKind = "RENDER_PROGRESS_REPORT"
	RenderReminderMenu      DirectiveKind = "RENDER_REMINDER_MENU"
	RenderCorrectFeedback   DirectiveKind = "RENDER_CORRECT_FEEDBACK"
	RenderIncorrectFeedback DirectiveKind = "RENDER_INCORRECT_FEEDBACK"
	RenderQuiz              DirectiveKind = "RENDER_QUIZ"
	RenderWelcome           DirectiveKind = "RENDER_WELCOME"
	RenderLesson            DirectiveKind = "RENDER_LESSON"
)

// Directive is an intent-tagged instruction for the generation
// collaborator. It carries the context the prompt builder needs; it never
// contains generated text itself.
type Directive struct {
	Kind DirectiveKind

	// RawText is the learner's message as received.
	RawText string

	// Topic is the quiz or lesson topic, when relevant.
	Topic string

	// Subject is the classified subject for Topic.
	Subject subject.Subject

	// Difficulty is the session's difficulty level at dispatch time.
	Difficulty int

	// CorrectAnswer and WasCorrect are set for quiz feedback directives.
	CorrectAnswer string
	WasCorrect    bool
}
