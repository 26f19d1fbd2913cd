package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
)

const (
	recognizeTimeout = time.Minute
	maxRetries       = 4
)

// GCPTranscriber implements Transcriber with Google Cloud
// Speech-to-Text. English-Indian primary with Hindi as an alternative
// language, which covers the bilingual voice notes this bot receives.
type GCPTranscriber struct {
	log    *logger.Logger
	client *speech.Client
}

// NewGCPTranscriber creates a transcriber. Credentials come from the
// environment (GOOGLE_APPLICATION_CREDENTIALS) unless overridden by
// opts.
func NewGCPTranscriber(ctx context.Context, log *logger.Logger, opts ...option.ClientOption) (*GCPTranscriber, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &GCPTranscriber{
		log:    log.With("service", "gcp.speech"),
		client: client,
	}, nil
}

func (t *GCPTranscriber) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	return t.client.Close()
}

func (t *GCPTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (*Transcription, error) {
	if len(audio) == 0 {
		return &Transcription{Language: "unknown", Confidence: ConfidenceLow}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, recognizeTimeout)
	defer cancel()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   inferEncoding(mimeType),
			LanguageCode:               "en-IN",
			AlternativeLanguageCodes:   []string{"hi-IN"},
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := t.retryRecognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech recognize: %w", err)
	}

	text, score := collectTranscript(resp)
	out := &Transcription{
		Text:       text,
		Language:   detectLanguage(text),
		Confidence: bucketConfidence(score),
		IsQuestion: DetectQuestion(text),
	}
	t.log.Debug("voice note transcribed",
		"chars", len(out.Text),
		"language", out.Language,
		"confidence", out.Confidence,
		"is_question", out.IsQuestion,
	)
	return out, nil
}

func (t *GCPTranscriber) retryRecognize(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
	backoff := 750 * time.Millisecond
	var last error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		resp, err := t.client.Recognize(ctx, req)
		if err == nil {
			return resp, nil
		}
		last = err

		code := status.Code(err)
		if code != codes.Unavailable && code != codes.ResourceExhausted && code != codes.DeadlineExceeded {
			return nil, err
		}
		if attempt == maxRetries {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
		if backoff > 10*time.Second {
			backoff = 10 * time.Second
		}
	}
	return nil, last
}

func inferEncoding(mimeType string) speechpb.RecognitionConfig_AudioEncoding {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.Contains(m, "wav"):
		return speechpb.RecognitionConfig_LINEAR16
	case strings.Contains(m, "flac"):
		return speechpb.RecognitionConfig_FLAC
	case strings.Contains(m, "mp3"):
		return speechpb.RecognitionConfig_MP3
	case strings.Contains(m, "ogg"), strings.Contains(m, "opus"):
		return speechpb.RecognitionConfig_OGG_OPUS
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}

func collectTranscript(resp *speechpb.RecognizeResponse) (string, float32) {
	if resp == nil || len(resp.Results) == 0 {
		return "", 0
	}
	var full strings.Builder
	var confSum float32
	var confN int
	for _, r := range resp.Results {
		if r == nil || len(r.Alternatives) == 0 || r.Alternatives[0] == nil {
			continue
		}
		alt := r.Alternatives[0]
		if strings.TrimSpace(alt.Transcript) == "" {
			continue
		}
		if full.Len() > 0 {
			full.WriteString(" ")
		}
		full.WriteString(strings.TrimSpace(alt.Transcript))
		if alt.Confidence > 0 {
			confSum += alt.Confidence
			confN++
		}
	}
	var avg float32
	if confN > 0 {
		avg = confSum / float32(confN)
	}
	return strings.TrimSpace(full.String()), avg
}
