package subject

import "strings"

// Classify maps free text to the subject whose keywords appear most often
// in the lower-cased text (case-insensitive substring match). Ties keep
// the earlier catalog entry. Returns General when nothing matches.
func Classify(text string) Subject {
	lower := strings.ToLower(text)

	best := General
	bestCount := 0
	for _, info := range Catalog {
		count := 0
		for _, kw := range info.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = info.Subject
		}
	}
	return best
}
