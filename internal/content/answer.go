package content

import (
	"regexp"
	"strings"
)

var answerMarkerRe = regexp.MustCompile(`\[ANSWER: (A|B|C|D)\]`)

// ExtractAnswer pulls the correct-answer marker out of generated quiz
// text. Returns the text with the marker removed and the option letter,
// or the text unchanged and "" when no marker is present.
func ExtractAnswer(text string) (clean, letter string) {
	m := answerMarkerRe.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return strings.TrimSpace(strings.Replace(text, m[0], "", 1)), m[1]
}
