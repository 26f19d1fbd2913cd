// Package content turns tutoring directives into learner-facing
// messages. LLM-backed directives (lessons, quizzes, feedback, welcome)
// are generated through a Provider; the progress report and reminder
// menu render locally.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/llm"
	"github.com/harsh8864/bharat-ai-tutor/internal/report"
	"github.com/harsh8864/bharat-ai-tutor/internal/tutor"
)

// FallbackText is sent when generation fails after retries.
const FallbackText = "🤖 मुझे अभी कुछ तकनीकी समस्या हो रही है। कृपया कुछ देर बाद फिर से पूछें! / I'm having some technical issues. Please try again in a moment! 🔄"

// ReminderMenu is the static reminder setup menu.
const ReminderMenu = `⏰ *STUDY REMINDER SETUP / अध्ययन अनुस्मारक सेटअप* ⏰

मैं आपके लिए अध्ययन अनुस्मारक सेट कर सकता हूं! / I can help you set study reminders!

📅 *Available Options / उपलब्ध विकल्प:*
• Daily reminders at specific time / विशिष्ट समय पर दैनिक अनुस्मारक
• Weekly topic reviews / साप्ताहिक विषय समीक्षा
• Quiz practice sessions / प्रश्न अभ्यास सत्र

Reply with / इसके साथ उत्तर दें:
• "daily 9am" - for daily reminder at 9 AM / सुबह 9 बजे दैनिक अनुस्मारक के लिए
• "weekly monday 7pm" - for weekly Monday 7 PM / साप्ताहिक सोमवार शाम 7 बजे के लिए
• "quiz friday 6pm" - for quiz practice Friday 6 PM / शुक्रवार शाम 6 बजे प्रश्न अभ्यास के लिए

What type of reminder would you like to set? ⏰
आप किस प्रकार का अनुस्मारक सेट करना चाहेंगे?`

const (
	generateMaxTokens   = 1200
	generateTemperature = 0.8
)

// GenerationError reports a failed generation for a directive.
type GenerationError struct {
	Kind tutor.DirectiveKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Reply is a rendered directive.
type Reply struct {
	Text string

	// AnswerLetter is the correct option extracted from a generated
	// quiz, empty for other directives or when the model omitted the
	// marker.
	AnswerLetter string
}

// Generator renders directives into messages.
type Generator struct {
	provider llm.Provider
	now      func() time.Time
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider, now: time.Now}
}

// Render produces the learner-facing message for a directive. The
// session is read-only here; all mutation happens before rendering.
func (g *Generator) Render(ctx context.Context, d tutor.Directive, s *learner.Session) (*Reply, error) {
	switch d.Kind {
	case tutor.RenderProgressReport:
		return &Reply{Text: report.Format(s, g.now())}, nil
	case tutor.RenderReminderMenu:
		return &Reply{Text: ReminderMenu}, nil
	}

	prompt, purpose := buildPrompt(d, s)
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, &GenerationError{Kind: d.Kind, Err: err}
	}

	text, letter := ExtractAnswer(resp.Text())
	return &Reply{Text: text, AnswerLetter: letter}, nil
}

func buildPrompt(d tutor.Directive, s *learner.Session) (prompt, purpose string) {
	switch d.Kind {
	case tutor.RenderQuiz:
		return quizPrompt(d, s), "quiz"
	case tutor.RenderCorrectFeedback:
		return correctFeedbackPrompt(d, s), "feedback"
	case tutor.RenderIncorrectFeedback:
		return incorrectFeedbackPrompt(d, s), "feedback"
	case tutor.RenderWelcome:
		return welcomePrompt(d, s), "welcome"
	default:
		return lessonPrompt(d, s), "lesson"
	}
}
