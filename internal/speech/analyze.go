package speech

import (
	"regexp"
	"strings"
)

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(what|how|why|when|where|which|who)\b`),
	regexp.MustCompile(`(?i)\b(explain|tell me|can you|could you)\b`),
	regexp.MustCompile(`(?i)\b(kya|kaise|kyun|kab|kahan|kaun|samjhao|batao)\b`),
}

var questionWords = map[string]bool{
	"what": true, "how": true, "why": true, "when": true,
	"where": true, "which": true, "who": true,
}

// DetectQuestion reports whether a transcript reads as a question.
func DetectQuestion(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	words := strings.Fields(strings.ToLower(trimmed))
	if len(words) >= 2 && questionWords[words[0]] {
		return true
	}
	for _, p := range questionPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// bucketConfidence maps the recognizer's confidence score to a bucket.
// Zero means the recognizer sent no score, which reads as medium.
func bucketConfidence(score float32) string {
	switch {
	case score >= 0.85:
		return ConfidenceHigh
	case score == 0 || score >= 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// detectLanguage classifies a transcript as "hi", "en", or "unknown".
func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}
	if LanguageHint(text) == "hi" {
		return "hi"
	}
	return "en"
}
