package httpapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// Dashboard payload types.
type dashboardData struct {
	UserStats       userStats       `json:"userStats"`
	PopularTopics   []topicCount    `json:"popularTopics"`
	LearningStreaks []streakEntry   `json:"learningStreaks"`
	Feedback        []feedbackEntry `json:"feedback"`
}

type userStats struct {
	ActiveUsers   int `json:"activeUsers"`
	VoiceMessages int `json:"voiceMessages"`
	TextMessages  int `json:"textMessages"`
	AvgStreak     int `json:"avgStreak"`
}

type topicCount struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type streakEntry struct {
	User string `json:"user"`
	Days int    `json:"days"`
}

type feedbackEntry struct {
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.buildDashboard())
}

func (s *Server) buildDashboard() dashboardData {
	sessions := s.store.All()
	now := s.now()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	data := dashboardData{
		PopularTopics:   []topicCount{},
		LearningStreaks: []streakEntry{},
		Feedback:        []feedbackEntry{},
	}

	topicCounts := map[string]int{}
	var streakSum int

	for userID, sess := range sessions {
		if lastActive(sess).After(weekAgo) {
			data.UserStats.ActiveUsers++
		}
		data.UserStats.VoiceMessages += sess.VoiceMessages
		data.UserStats.TextMessages += sess.TextMessages
		streakSum += sess.StreakDays

		for _, topic := range sess.TopicsStudied {
			topicCounts[strings.ToLower(strings.TrimSpace(topic))]++
		}

		if sess.StreakDays > 0 {
			data.LearningStreaks = append(data.LearningStreaks, streakEntry{User: userID, Days: sess.StreakDays})
		}
		if n := len(sess.LearningHistory); n > 0 {
			last := sess.LearningHistory[n-1]
			data.Feedback = append(data.Feedback, feedbackEntry{
				User:      userID,
				Message:   "Studied: " + last.Query,
				Timestamp: last.Timestamp,
			})
		}
	}

	if n := len(sessions); n > 0 {
		data.UserStats.AvgStreak = (streakSum + n/2) / n
	}

	for topic, count := range topicCounts {
		pct := 0
		if n := len(sessions); n > 0 {
			pct = count * 100 / n
		}
		data.PopularTopics = append(data.PopularTopics, topicCount{
			Name:       titleFirst(topic),
			Count:      count,
			Percentage: pct,
		})
	}
	sort.Slice(data.PopularTopics, func(i, j int) bool {
		if data.PopularTopics[i].Count != data.PopularTopics[j].Count {
			return data.PopularTopics[i].Count > data.PopularTopics[j].Count
		}
		return data.PopularTopics[i].Name < data.PopularTopics[j].Name
	})
	if len(data.PopularTopics) > 8 {
		data.PopularTopics = data.PopularTopics[:8]
	}

	sort.Slice(data.LearningStreaks, func(i, j int) bool {
		if data.LearningStreaks[i].Days != data.LearningStreaks[j].Days {
			return data.LearningStreaks[i].Days > data.LearningStreaks[j].Days
		}
		return data.LearningStreaks[i].User < data.LearningStreaks[j].User
	})
	if len(data.LearningStreaks) > 6 {
		data.LearningStreaks = data.LearningStreaks[:6]
	}

	sort.Slice(data.Feedback, func(i, j int) bool {
		return data.Feedback[i].Timestamp.After(data.Feedback[j].Timestamp)
	})
	if len(data.Feedback) > 6 {
		data.Feedback = data.Feedback[:6]
	}

	return data
}

func lastActive(s *learner.Session) time.Time {
	if t, err := time.Parse(learner.DateLayout, s.LastActiveDate); err == nil {
		return t
	}
	return s.JoinDate
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
