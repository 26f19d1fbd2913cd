package speech

import (
	"regexp"
	"strings"
)

var (
	boldRe       = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)
	italicRe     = regexp.MustCompile(`_{1,2}([^_]+)_{1,2}`)
	codeRe       = regexp.MustCompile("`([^`]+)`")
	headerRe     = regexp.MustCompile(`#{1,6}\s*`)
	answerHookRe = regexp.MustCompile(`\[ANSWER:.*?\]`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[•\-]\s*`)
	spaceRe      = regexp.MustCompile(`[ \t]+`)
)

// CleanForSpeech strips chat formatting from reply text so it reads
// naturally when synthesized: markdown markers, answer hooks, bullets.
func CleanForSpeech(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = codeRe.ReplaceAllString(text, "$1")
	text = headerRe.ReplaceAllString(text, "")
	text = answerHookRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
