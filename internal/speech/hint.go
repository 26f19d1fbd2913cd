package speech

import "regexp"

var (
	devanagariRe = regexp.MustCompile(`[\x{0915}-\x{097F}]`)
	romanHindiRe = regexp.MustCompile(`(?i)\b(kya|hai|kaise|kyun|samjhao|batao|sikhaao|vigyan|ganit)\b`)
)

// LanguageHint picks the synthesis language for a reply based on the
// learner's query: "hi" when it contains Devanagari or common romanized
// Hindi words, "en" otherwise.
func LanguageHint(query string) string {
	if devanagariRe.MatchString(query) || romanHindiRe.MatchString(query) {
		return "hi"
	}
	return "en"
}
