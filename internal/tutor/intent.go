package tutor

import (
	"regexp"
	"strings"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// Intent is the resolved meaning of an inbound message.
type Intent int

const (
	// IntentTopic is the default: treat the text as a topic to learn.
	IntentTopic Intent = iota
	// IntentReport requests a progress report.
	IntentReport
	// IntentReminder starts study-reminder setup.
	IntentReminder
	// IntentQuizAnswer means the session is awaiting a quiz answer and the
	// text is that answer.
	IntentQuizAnswer
	// IntentQuizRequest asks for a new quiz question.
	IntentQuizRequest
	// IntentGreeting is a hello/help message.
	IntentGreeting
)

func (i Intent) String() string {
	switch i {
	case IntentReport:
		return "report"
	case IntentReminder:
		return "reminder"
	case IntentQuizAnswer:
		return "quiz_answer"
	case IntentQuizRequest:
		return "quiz_request"
	case IntentGreeting:
		return "greeting"
	default:
		return "topic"
	}
}

// Keyword patterns carry both English and Hindi triggers.
var (
	reportRe   = regexp.MustCompile(`(?i)my report|progress|report|मेरी रिपोर्ट|प्रगति`)
	reminderRe = regexp.MustCompile(`(?i)remind|reminder|schedule|सूचना|याद दिलाना`)
	quizRe     = regexp.MustCompile(`(?i)quiz|test|question|प्रश्न`)
	greetingRe = regexp.MustCompile(`(?i)hello|hi|namaste|help|start|मदद|नमस्ते|हैलो`)
)

// ResolveIntent classifies rawText against the session's current state.
// Resolution order is fixed: report, reminder, outstanding quiz answer,
// quiz request, greeting, then topic learning as the default. A session
// stuck in AWAITING_ANSWER without a stored answer is treated as IDLE and
// falls through to the later matches.
func ResolveIntent(rawText string, s *learner.Session) Intent {
	text := strings.ToLower(strings.TrimSpace(rawText))

	switch {
	case reportRe.MatchString(text):
		return IntentReport
	case reminderRe.MatchString(text):
		return IntentReminder
	case s.State == learner.StateAwaitingAnswer && s.CorrectAnswer != "":
		return IntentQuizAnswer
	case quizRe.MatchString(text):
		return IntentQuizRequest
	case greetingRe.MatchString(text):
		return IntentGreeting
	default:
		return IntentTopic
	}
}
