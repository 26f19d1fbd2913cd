package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/llm"
	"github.com/harsh8864/bharat-ai-tutor/internal/tutor"
)

func TestExtractAnswer(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantClean  string
		wantLetter string
	}{
		{
			name:       "marker at end",
			text:       "Q: What is 2+2?\nA) 3 B) 4 C) 5 D) 6\n[ANSWER: B]",
			wantClean:  "Q: What is 2+2?\nA) 3 B) 4 C) 5 D) 6",
			wantLetter: "B",
		},
		{
			name:       "marker mid-text",
			text:       "Question [ANSWER: D] choose wisely",
			wantClean:  "Question  choose wisely",
			wantLetter: "D",
		},
		{
			name:       "no marker",
			text:       "Just a lesson about plants.",
			wantClean:  "Just a lesson about plants.",
			wantLetter: "",
		},
		{
			name:       "invalid letter ignored",
			text:       "text [ANSWER: E]",
			wantClean:  "text [ANSWER: E]",
			wantLetter: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, letter := ExtractAnswer(tt.text)
			if clean != tt.wantClean {
				t.Errorf("clean = %q, want %q", clean, tt.wantClean)
			}
			if letter != tt.wantLetter {
				t.Errorf("letter = %q, want %q", letter, tt.wantLetter)
			}
		})
	}
}

func TestRenderQuizExtractsAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse("🧠 QUIZ TIME!\nA) x B) y C) z D) w\n[ANSWER: C]")

	g := NewGenerator(mock)
	s := learner.NewSession(time.Now())
	reply, err := g.Render(context.Background(), tutor.Directive{
		Kind:       tutor.RenderQuiz,
		Topic:      "photosynthesis",
		Difficulty: 1,
	}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if reply.AnswerLetter != "C" {
		t.Errorf("AnswerLetter = %q, want %q", reply.AnswerLetter, "C")
	}
	if strings.Contains(reply.Text, "[ANSWER:") {
		t.Errorf("marker not stripped: %q", reply.Text)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	prompt := calls[0].Messages[0].Content
	if !strings.Contains(prompt, `Topic: "photosynthesis"`) {
		t.Errorf("prompt missing topic: %q", prompt)
	}
	if !strings.Contains(prompt, "beginner level quiz") {
		t.Errorf("prompt missing difficulty: %q", prompt)
	}
}

func TestRenderLessonUsesSubjectAndLevel(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse("a lesson")

	g := NewGenerator(mock)
	s := learner.NewSession(time.Now())
	s.DifficultyLevel = 3
	_, err := g.Render(context.Background(), tutor.Directive{
		Kind:       tutor.RenderLesson,
		RawText:    "explain gravity",
		Subject:    "science",
		Difficulty: 3,
	}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	prompt := mock.Calls()[0].Messages[0].Content
	if !strings.Contains(prompt, "expert teacher in science") {
		t.Errorf("prompt missing subject: %q", prompt)
	}
	if !strings.Contains(prompt, "advanced-level lesson") {
		t.Errorf("prompt missing level: %q", prompt)
	}
}

func TestRenderFailureWrapsGenerationError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueError(errors.New("boom"))

	g := NewGenerator(mock)
	s := learner.NewSession(time.Now())
	_, err := g.Render(context.Background(), tutor.Directive{Kind: tutor.RenderLesson}, s)

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
	if genErr.Kind != tutor.RenderLesson {
		t.Errorf("Kind = %s, want %s", genErr.Kind, tutor.RenderLesson)
	}
}

func TestRenderReminderMenuIsLocal(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider())
	s := learner.NewSession(time.Now())
	reply, err := g.Render(context.Background(), tutor.Directive{Kind: tutor.RenderReminderMenu}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(reply.Text, "daily 9am") {
		t.Errorf("reminder menu missing options: %q", reply.Text)
	}
}

func TestRenderProgressReportIsLocal(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider())
	s := learner.NewSession(time.Now())
	s.RecordTopic("algebra", time.Now())
	reply, err := g.Render(context.Background(), tutor.Directive{Kind: tutor.RenderProgressReport}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(reply.Text, "YOUR LEARNING REPORT") {
		t.Errorf("report missing header: %q", reply.Text)
	}
}
