package bot

import "strings"

// MaxMessageLength is the longest single outbound message. Longer
// replies are split on paragraph boundaries.
const MaxMessageLength = 1500

// SplitMessage chunks text into messages of at most maxLen characters,
// keeping paragraphs together where possible. A paragraph longer than
// maxLen becomes its own oversized chunk rather than being cut
// mid-sentence.
func SplitMessage(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = MaxMessageLength
	}
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, p := range strings.Split(text, "\n\n") {
		switch {
		case current.Len() == 0:
			current.WriteString(p)
		case current.Len()+len(p)+2 <= maxLen:
			current.WriteString("\n\n")
			current.WriteString(p)
		default:
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(p)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
