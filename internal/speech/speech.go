// Package speech handles voice notes: transcription of inbound audio
// and the language hint used when synthesizing spoken replies.
package speech

import "context"

// Confidence buckets for a transcription.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Transcription is the processed result of a voice note.
type Transcription struct {
	// Text is the cleaned transcript.
	Text string

	// Language is the detected language code ("en", "hi", "unknown").
	Language string

	// Confidence is one of the Confidence* buckets.
	Confidence string

	// IsQuestion reports whether the transcript reads as a question.
	IsQuestion bool
}

// Transcriber converts voice note audio into text. A failed
// transcription is a soft failure: the caller apologizes to the learner
// instead of crashing the message flow.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (*Transcription, error)
	Close() error
}

// Synthesizer renders reply text as audio. lang is a hint from
// LanguageHint.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// NullSynthesizer disables audio replies. Synthesize returns nil audio,
// which the bot treats as text-only.
type NullSynthesizer struct{}

func (NullSynthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	return nil, nil
}
