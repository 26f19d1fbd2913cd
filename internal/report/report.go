// Package report formats a learning session into a human-readable
// bilingual progress summary. Formatting only; nothing here mutates the
// session.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/recommend"
)

// Stats are the derived numbers the summary is built from.
type Stats struct {
	AccuracyPct  float64
	UniqueTopics int
	DaysLearning int
	Consistency  float64
}

// Compute derives the report statistics for a session as of now.
func Compute(s *learner.Session, now time.Time) Stats {
	days := int(now.Sub(s.JoinDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	var consistency float64
	if n := len(s.LearningHistory); n > 0 {
		d := days
		if d < 1 {
			d = 1
		}
		consistency = float64(n) / float64(d) * 100
		if consistency > 100 {
			consistency = 100
		}
	}

	return Stats{
		AccuracyPct:  s.AccuracyPercent(),
		UniqueTopics: s.UniqueTopics(),
		DaysLearning: days,
		Consistency:  consistency,
	}
}

// AchievementTier buckets an accuracy percentage into a bilingual
// achievement line.
func AchievementTier(accuracyPct float64) string {
	switch {
	case accuracyPct >= 90:
		return "🏆 EXCELLENT LEARNER! / उत्कृष्ट छात्र!"
	case accuracyPct >= 75:
		return "🥉 GOOD PROGRESS! / अच्छी प्रगति!"
	case accuracyPct >= 60:
		return "📚 KEEP PRACTICING! / अभ्यास जारी रखें!"
	default:
		return "💪 GETTING STARTED! / शुरुआत कर रहे हैं!"
	}
}

// Format renders the full bilingual learning report for a session.
func Format(s *learner.Session, now time.Time) string {
	stats := Compute(s, now)

	var b strings.Builder
	b.WriteString("🎓 *आपकी शिक्षा रिपोर्ट / YOUR LEARNING REPORT* 🎓\n\n")

	b.WriteString("🎯 *QUIZ PERFORMANCE / प्रदर्शन*\n")
	fmt.Fprintf(&b, "• Total Quizzes / कुल प्रश्न: %d\n", s.Score.Total)
	fmt.Fprintf(&b, "• Correct Answers / सही उत्तर: %d\n", s.Score.Correct)
	fmt.Fprintf(&b, "• Accuracy Rate / सटीकता: %.1f%%\n", stats.AccuracyPct)
	fmt.Fprintf(&b, "• Current Level / वर्तमान स्तर: %s\n\n", learner.LevelName(s.DifficultyLevel))

	b.WriteString("📚 *LEARNING STATISTICS / अध्ययन आंकड़े*\n")
	fmt.Fprintf(&b, "• Topics Covered / विषय कवर: %d\n", stats.UniqueTopics)
	fmt.Fprintf(&b, "• Learning Streak / अध्ययन श्रृंखला: %d days 🔥\n", s.StreakDays)
	fmt.Fprintf(&b, "• Days Learning / सीखने के दिन: %d\n", stats.DaysLearning)
	fmt.Fprintf(&b, "• Learning Consistency / निरंतरता: %.1f%%\n\n", stats.Consistency)

	b.WriteString("💪 *STRENGTHS / मजबूत क्षेत्र*\n")
	if len(s.Strengths) == 0 {
		b.WriteString("• Keep learning to discover your strengths! / अपनी ताकत खोजने के लिए सीखते रहें!\n")
	} else {
		for _, strength := range s.Strengths {
			fmt.Fprintf(&b, "• %s\n", title(string(strength)))
		}
	}

	b.WriteString("\n🎯 *AREAS TO IMPROVE / सुधार के क्षेत्र*\n")
	if len(s.Weaknesses) == 0 {
		b.WriteString("• Great job! No major weak areas identified. / बहुत बढ़िया! कोई मुख्य कमजोर क्षेत्र नहीं मिला।\n")
	} else {
		for _, weakness := range s.Weaknesses {
			fmt.Fprintf(&b, "• %s\n", title(string(weakness)))
		}
	}

	b.WriteString("\n🌟 *RECOMMENDED NEXT TOPICS / अनुशंसित विषय*\n")
	recs := recommend.Topics(s)
	if len(recs) == 0 {
		b.WriteString("• Complete more quizzes to get personalized recommendations! / व्यक्तिगत सुझाव पाने के लिए और प्रश्न हल करें!\n")
	} else {
		for _, r := range recs {
			fmt.Fprintf(&b, "• %s\n", r)
		}
	}

	b.WriteString("\n📈 *ACHIEVEMENT LEVEL / उपलब्धि स्तर*\n")
	b.WriteString(AchievementTier(stats.AccuracyPct))
	b.WriteString("\n\nWant to improve? Type 'quiz' for practice or ask me about any topic! 🚀\n")
	b.WriteString("सुधार चाहते हैं? अभ्यास के लिए 'quiz' टाइप करें या कोई भी विषय पूछें!")

	return b.String()
}

// title upper-cases only the first letter, matching the original report's
// subject capitalization.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
