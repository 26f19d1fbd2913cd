package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with what this generation is for
// ("lesson", "quiz", "feedback", "reminder-parse"). Decorators read it
// for logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFromContext returns the purpose tag, or "unknown".
func PurposeFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
