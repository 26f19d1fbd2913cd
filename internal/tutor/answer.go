package tutor

import "strings"

// AnswerMatches checks a learner's reply against the expected answer
// letter. It accepts an exact case-insensitive match or any reply that
// contains the answer as a substring, so "I think it's B" counts for "B".
//
// The containment rule is deliberately lenient and is kept for parity with
// the deployed matcher; it also makes one-letter answers prone to false
// positives on longer replies.
func AnswerMatches(reply, expected string) bool {
	if expected == "" {
		return false
	}
	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, expected) {
		return true
	}
	return strings.Contains(strings.ToLower(reply), strings.ToLower(expected))
}
