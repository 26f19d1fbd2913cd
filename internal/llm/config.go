package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds provider configuration, read from the environment.
type Config struct {
	// Provider selects the backend: "gemini", "anthropic", "openai".
	Provider string

	// APIKey authenticates with the provider.
	APIKey string

	// Model overrides the provider's default model when non-empty.
	Model string

	// MaxAttempts is the retry budget for transient failures.
	MaxAttempts int

	// BaseDelay is the initial retry backoff.
	BaseDelay time.Duration
}

// Defaults applied when the environment doesn't override them.
const (
	DefaultProvider    = "gemini"
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Default models per provider.
const (
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

// envKeyVar maps provider name to the API key environment variable.
var envKeyVar = map[string]string{
	"gemini":    "GEMINI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"openai":    "OPENAI_API_KEY",
}

// ConfigFromEnv builds a Config from environment variables.
//
//	TUTOR_LLM_PROVIDER  provider name (default "gemini")
//	TUTOR_LLM_MODEL     model override
//	TUTOR_LLM_RETRIES   retry attempts (default 3)
//	<PROVIDER>_API_KEY  API key for the selected provider
func ConfigFromEnv() (Config, error) {
	provider := DefaultProvider
	if p := os.Getenv("TUTOR_LLM_PROVIDER"); p != "" {
		provider = p
	}
	return configFor(provider)
}

// DiscoverConfig probes the known API key variables in priority order
// and returns a Config for the first provider with a key set. Used when
// TUTOR_LLM_PROVIDER is not set and ConfigFromEnv's default fails.
func DiscoverConfig() (Config, error) {
	for _, p := range []string{"gemini", "openai", "anthropic"} {
		if os.Getenv(envKeyVar[p]) != "" {
			return configFor(p)
		}
	}
	return Config{}, fmt.Errorf("no LLM API key found; set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY")
}

// configFor builds the Config for one provider from its key variable and
// the shared TUTOR_LLM_* overrides.
func configFor(provider string) (Config, error) {
	cfg := Config{
		Provider:    provider,
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
	}
	keyVar, ok := envKeyVar[provider]
	if !ok {
		return Config{}, fmt.Errorf("unknown provider %q", provider)
	}
	cfg.APIKey = os.Getenv(keyVar)
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("%s is not set", keyVar)
	}
	cfg.Model = os.Getenv("TUTOR_LLM_MODEL")
	if r := os.Getenv("TUTOR_LLM_RETRIES"); r != "" {
		n, err := strconv.Atoi(r)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid TUTOR_LLM_RETRIES %q", r)
		}
		cfg.MaxAttempts = n
	}
	return cfg, nil
}

// DefaultModel returns the default model for the configured provider.
func (c Config) DefaultModel() string {
	switch c.Provider {
	case "anthropic":
		return DefaultAnthropicModel
	case "openai":
		return DefaultOpenAIModel
	default:
		return DefaultGeminiModel
	}
}

// ResolvedModel returns the model to use: the override if set, else the
// provider default.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return c.DefaultModel()
}
