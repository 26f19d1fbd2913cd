package llm

import (
	"context"
	"fmt"

	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
)

// NewProvider builds the configured provider wrapped with retries and
// request logging.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	retried := NewRetryProvider(base, cfg.MaxAttempts, cfg.BaseDelay)
	return NewLoggingProvider(retried, log), nil
}
