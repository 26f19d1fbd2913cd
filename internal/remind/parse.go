package remind

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/llm"
)

// ErrUnrecognized means the text doesn't look like a reminder request.
var ErrUnrecognized = fmt.Errorf("unrecognized reminder phrase")

// Spec is a parsed reminder request.
type Spec struct {
	Frequency Frequency
	Weekday   time.Weekday
	// HasWeekday is set when the phrase named a day; weekly reminders
	// without one fire on the current weekday.
	HasWeekday bool
	Hour       int
	Minute     int
	Quiz       bool
}

// reminderSchema is the structured output contract for LLM-assisted
// parsing of free-form reminder phrases.
var reminderSchema = &llm.Schema{
	Name:        "study-reminder",
	Description: "A parsed study reminder request",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"frequency", "hour"},
		"properties": map[string]any{
			"frequency": map[string]any{
				"type": "string",
				"enum": []any{"daily", "weekly"},
			},
			"weekday": map[string]any{
				"type":        "string",
				"description": "Lowercase English weekday, empty if not given",
			},
			"hour": map[string]any{
				"type":        "integer",
				"description": "Hour of day, 0-23",
			},
			"minute": map[string]any{
				"type": "integer",
			},
			"quiz": map[string]any{
				"type":        "boolean",
				"description": "True when the learner asked for quiz practice",
			},
		},
	},
}

// phraseRe matches the menu's suggested formats: "daily 9am",
// "weekly monday 7pm", "quiz friday 6pm".
var phraseRe = regexp.MustCompile(`(?i)^\s*(daily|weekly|quiz)\s+(?:(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse interprets a reminder phrase. The menu's literal formats parse
// locally; anything else goes to the LLM with a structured output
// schema. Returns ErrUnrecognized when neither path succeeds.
func Parse(ctx context.Context, provider llm.Provider, text string) (*Spec, error) {
	if spec, ok := parsePhrase(text); ok {
		return spec, nil
	}
	if provider == nil {
		return nil, ErrUnrecognized
	}
	return parseWithLLM(ctx, provider, text)
}

func parsePhrase(text string) (*Spec, bool) {
	m := phraseRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	spec := &Spec{}
	kind := strings.ToLower(m[1])
	switch kind {
	case "daily":
		spec.Frequency = Daily
	case "weekly":
		spec.Frequency = Weekly
	case "quiz":
		spec.Frequency = Weekly
		spec.Quiz = true
	}
	if m[2] != "" {
		spec.Weekday = weekdays[strings.ToLower(m[2])]
		spec.HasWeekday = true
		if kind != "daily" {
			spec.Frequency = Weekly
		}
	}

	hour, _ := strconv.Atoi(m[3])
	if m[4] != "" {
		spec.Minute, _ = strconv.Atoi(m[4])
	}
	switch strings.ToLower(m[5]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || spec.Minute > 59 {
		return nil, false
	}
	spec.Hour = hour
	return spec, true
}

func parseWithLLM(ctx context.Context, provider llm.Provider, text string) (*Spec, error) {
	ctx = llm.WithPurpose(ctx, "reminder-parse")
	resp, err := provider.Generate(ctx, llm.Request{
		System: "Extract the study reminder schedule from the user's message. Messages may mix Hindi and English.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    reminderSchema,
		MaxTokens: 200,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}

	var parsed struct {
		Frequency string `json:"frequency"`
		Weekday   string `json:"weekday"`
		Hour      int    `json:"hour"`
		Minute    int    `json:"minute"`
		Quiz      bool   `json:"quiz"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	if parsed.Hour < 0 || parsed.Hour > 23 || parsed.Minute < 0 || parsed.Minute > 59 {
		return nil, ErrUnrecognized
	}

	spec := &Spec{Hour: parsed.Hour, Minute: parsed.Minute, Quiz: parsed.Quiz}
	switch parsed.Frequency {
	case "daily":
		spec.Frequency = Daily
	case "weekly":
		spec.Frequency = Weekly
	default:
		return nil, ErrUnrecognized
	}
	if wd, ok := weekdays[strings.ToLower(parsed.Weekday)]; ok {
		spec.Weekday = wd
		spec.HasWeekday = true
	}
	return spec, nil
}

// FirstDue computes the first firing time for a spec: the next
// occurrence of the requested time, skipping forward a day or week when
// it has already passed today.
func (s *Spec) FirstDue(now time.Time) time.Time {
	due := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
	if s.Frequency == Weekly && s.HasWeekday {
		offset := (int(s.Weekday) - int(now.Weekday()) + 7) % 7
		due = due.AddDate(0, 0, offset)
	}
	if !due.After(now) {
		if s.Frequency == Weekly {
			due = due.AddDate(0, 0, 7)
		} else {
			due = due.AddDate(0, 0, 1)
		}
	}
	return due
}

// Message returns the reminder body implied by the parsed phrase.
func (s *Spec) Message() string {
	if s.Quiz {
		return QuizMessage
	}
	return ""
}
