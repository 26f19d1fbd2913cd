// Package llm abstracts the large-language-model backends that generate
// tutoring content. Providers return plain text for lessons and quizzes,
// or schema-validated JSON when a request sets a Schema (used for
// reminder-phrase parsing).
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the response. When
	// the request carries a Schema, the Content is JSON validated against
	// it; otherwise Content is the raw generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Tutoring prompts are single-turn, so
	// this usually holds one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Lesson and quiz prompts
	// run warm (0.8) for engaging phrasing; parsing runs at 0.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "study-reminder".
	Name string

	// Description guides the model toward the schema's purpose.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// had a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}
