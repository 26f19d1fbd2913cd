// Package bot is the message pump: it receives chat messages from a
// Transport, runs each through the tutoring state machine under the
// per-user lock, renders the reply, and sends it back, persisting the
// session after every mutation.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/content"
	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/llm"
	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
	"github.com/harsh8864/bharat-ai-tutor/internal/remind"
	"github.com/harsh8864/bharat-ai-tutor/internal/speech"
	"github.com/harsh8864/bharat-ai-tutor/internal/store"
	"github.com/harsh8864/bharat-ai-tutor/internal/tutor"
)

// TranscribeApology is sent when a voice note could not be understood.
const TranscribeApology = "🎤 माफ करें, मैं आपका voice message समझ नहीं पाया। कृपया फिर से try करें या text में लिखें! / Sorry, I couldn't understand your voice message. Please try again or type it out! 🙏"

// Bot wires the tutoring pipeline together.
type Bot struct {
	store       store.Store
	gen         *content.Generator
	provider    llm.Provider
	transcriber speech.Transcriber
	synth       speech.Synthesizer
	reminders   *remind.FileStore
	transport   Transport
	log         *logger.Logger

	voiceReplies bool
	now          func() time.Time
}

// Options configures a Bot. Transcriber and Synthesizer may be nil when
// voice handling is disabled.
type Options struct {
	Store        store.Store
	Generator    *content.Generator
	Provider     llm.Provider
	Transcriber  speech.Transcriber
	Synthesizer  speech.Synthesizer
	Reminders    *remind.FileStore
	Transport    Transport
	Log          *logger.Logger
	VoiceReplies bool
}

// New creates a Bot.
func New(opts Options) *Bot {
	synth := opts.Synthesizer
	if synth == nil {
		synth = speech.NullSynthesizer{}
	}
	return &Bot{
		store:        opts.Store,
		gen:          opts.Generator,
		provider:     opts.Provider,
		transcriber:  opts.Transcriber,
		synth:        synth,
		reminders:    opts.Reminders,
		transport:    opts.Transport,
		log:          opts.Log,
		voiceReplies: opts.VoiceReplies,
		now:          time.Now,
	}
}

// Run consumes the transport's message stream until it closes or the
// context is done. Each message is handled in its own goroutine; the
// per-user lock serializes messages from the same user.
func (b *Bot) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case msg, ok := <-b.transport.Messages():
			if !ok {
				wg.Wait()
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.HandleMessage(ctx, msg)
			}()
		}
	}
}

// HandleMessage runs one message through the full pipeline.
func (b *Bot) HandleMessage(ctx context.Context, msg Message) {
	text := msg.Text
	isVoice := len(msg.Audio) > 0

	if isVoice {
		t, err := b.transcribe(ctx, msg)
		if err != nil || t == "" {
			b.sendText(ctx, msg.UserID, TranscribeApology)
			return
		}
		text = t
	}
	if text == "" {
		return
	}

	release := b.store.Acquire(msg.UserID)
	defer release()

	now := b.now()
	s := b.store.GetOrCreate(msg.UserID, now)
	if isVoice {
		s.VoiceMessages++
	} else {
		s.TextMessages++
	}

	if s.State == learner.StateSettingReminder {
		if b.trySetReminder(ctx, s, msg.UserID, text, now) {
			b.persist(msg.UserID, s)
			return
		}
		// Not a reminder phrase. Unstick the session and handle the
		// message normally.
		s.State = learner.StateIdle
	}

	d := tutor.Handle(s, text, now)

	replyText := b.render(ctx, d, s)
	for _, chunk := range SplitMessage(replyText, MaxMessageLength) {
		b.sendText(ctx, msg.UserID, chunk)
	}

	if isVoice && b.voiceReplies {
		b.sendVoiceReply(ctx, msg.UserID, replyText, text)
	}

	b.persist(msg.UserID, s)
}

func (b *Bot) transcribe(ctx context.Context, msg Message) (string, error) {
	if b.transcriber == nil {
		return "", fmt.Errorf("no transcriber configured")
	}
	t, err := b.transcriber.Transcribe(ctx, msg.Audio, msg.AudioMIME)
	if err != nil {
		b.log.Warn("transcription failed", "user_id", msg.UserID, "error", err)
		return "", err
	}
	b.log.Info("voice note handled",
		"user_id", msg.UserID,
		"language", t.Language,
		"confidence", t.Confidence,
		"is_question", t.IsQuestion,
	)
	return t.Text, nil
}

// render produces the reply for a directive. Generation failures fall
// back to the apology text; a failed quiz generation also clears the
// pending-answer state so the learner is not stuck.
func (b *Bot) render(ctx context.Context, d tutor.Directive, s *learner.Session) string {
	reply, err := b.gen.Render(ctx, d, s)
	if err != nil {
		b.log.Error("content generation failed", "kind", string(d.Kind), "error", err)
		if d.Kind == tutor.RenderQuiz {
			tutor.ClearPendingQuiz(s)
		}
		return content.FallbackText
	}

	if d.Kind == tutor.RenderQuiz {
		if reply.AnswerLetter != "" {
			tutor.SetCorrectAnswer(s, reply.AnswerLetter)
		} else {
			// A quiz without an extractable answer cannot be scored.
			b.log.Warn("quiz missing answer marker", "topic", d.Topic)
			tutor.ClearPendingQuiz(s)
		}
	}
	return reply.Text
}

// trySetReminder interprets text as a reminder phrase. Returns false
// when the text should be handled as a normal message instead.
func (b *Bot) trySetReminder(ctx context.Context, s *learner.Session, userID, text string, now time.Time) bool {
	spec, err := remind.Parse(ctx, b.provider, text)
	if err != nil {
		return false
	}

	r := remind.New(userID, spec.Frequency, spec.Message(), spec.FirstDue(now), now)
	if err := b.reminders.Add(r); err != nil {
		b.log.Error("reminder save failed", "user_id", userID, "error", err)
		b.sendText(ctx, userID, content.FallbackText)
		s.State = learner.StateIdle
		return true
	}

	s.State = learner.StateIdle
	b.sendText(ctx, userID, confirmReminder(r))
	b.log.Info("reminder set", "user_id", userID, "frequency", string(r.Frequency), "next_due", r.NextDue)
	return true
}

func confirmReminder(r *remind.Reminder) string {
	freq := "daily / दैनिक"
	if r.Frequency == remind.Weekly {
		freq = "weekly / साप्ताहिक"
	}
	return fmt.Sprintf(`✅ *REMINDER SET / अनुस्मारक सेट हो गया!* ✅

📅 Frequency / आवृत्ति: %s
⏰ First reminder / पहला अनुस्मारक: %s

Keep learning every day! / हर दिन सीखते रहें! 🚀`,
		freq, r.NextDue.Format("Mon, 02 Jan 2006 15:04"))
}

func (b *Bot) sendVoiceReply(ctx context.Context, userID, replyText, query string) {
	clean := speech.CleanForSpeech(replyText)
	if clean == "" {
		return
	}
	audio, err := b.synth.Synthesize(ctx, clean, speech.LanguageHint(query))
	if err != nil {
		b.log.Warn("speech synthesis failed", "user_id", userID, "error", err)
		return
	}
	if len(audio) == 0 {
		return
	}
	if err := b.transport.SendAudio(ctx, userID, audio); err != nil {
		b.log.Warn("audio send failed", "user_id", userID, "error", err)
	}
}

func (b *Bot) sendText(ctx context.Context, userID, text string) {
	if err := b.transport.SendText(ctx, userID, text); err != nil {
		b.log.Error("send failed", "user_id", userID, "error", err)
	}
}

func (b *Bot) persist(userID string, s *learner.Session) {
	b.store.Put(userID, s)
	if err := b.store.SaveAll(); err != nil {
		b.log.Error("session save failed", "user_id", userID, "error", err)
	}
}
