package llm

import (
	"context"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
)

// LoggingProvider wraps a Provider and logs every generation: model,
// purpose, latency, token usage, outcome.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// NewLoggingProvider wraps inner with structured request logging.
func NewLoggingProvider(inner Provider, log *logger.Logger) *LoggingProvider {
	return &LoggingProvider{inner: inner, log: log}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	purpose := PurposeFromContext(ctx)
	if err != nil {
		l.log.Warn("llm generation failed",
			"model", l.inner.ModelID(),
			"purpose", purpose,
			"latency_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	l.log.Debug("llm generation",
		"model", resp.Model,
		"purpose", purpose,
		"latency_ms", elapsed.Milliseconds(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop", resp.StopReason,
	)
	return resp, nil
}
