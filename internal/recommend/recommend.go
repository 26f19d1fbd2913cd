// Package recommend derives suggested next topics from a learner's
// strengths, weaknesses and recent history. Output is deterministic for a
// given session.
package recommend

import (
	"fmt"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

// MaxRecommendations caps the suggestion list.
const MaxRecommendations = 3

// recentWindow is how many trailing history entries feed suggestions.
const recentWindow = 3

// Topics builds up to MaxRecommendations suggestions in a fixed order:
// untouched weaknesses first, then strength follow-ups at the session's
// level, then topics derived from recent history.
func Topics(s *learner.Session) []string {
	var recs []string

	studied := make(map[subject.Subject]struct{})
	for _, topic := range s.TopicsStudied {
		studied[subject.Classify(topic)] = struct{}{}
	}

	for _, weak := range s.Weaknesses {
		if _, ok := studied[weak]; ok {
			continue
		}
		recs = append(recs, fmt.Sprintf("Basic concepts in %s", weak))
	}

	for _, strong := range s.Strengths {
		if label := nextLevelLabel(strong, s.DifficultyLevel); label != "" {
			recs = append(recs, fmt.Sprintf("%s in %s", label, strong))
		}
	}

	history := s.LearningHistory
	if len(history) > recentWindow {
		history = history[len(history)-recentWindow:]
	}
	for _, entry := range history {
		subj := subject.Classify(entry.Query)
		if subject.Known(subj) {
			recs = append(recs, fmt.Sprintf("Advanced %s concepts", subj))
		}
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// nextLevelLabel returns the difficulty label one step above the current
// level for a strength subject, or "" when none exists (unknown subject,
// or already at the expert level). Indexing labels by the raw level value
// gives the step-up: labels[level] is the label for level+1.
func nextLevelLabel(subj subject.Subject, level int) string {
	info := subject.Lookup(subj)
	if info == nil {
		return ""
	}
	if level < 0 || level >= len(info.DifficultyLabels) {
		return ""
	}
	return info.DifficultyLabels[level]
}
