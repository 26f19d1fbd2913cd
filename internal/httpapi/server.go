// Package httpapi exposes the monitoring surface: health, aggregate
// stats, per-user progress, the dashboard feed, and a snapshot backup
// download.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
	"github.com/harsh8864/bharat-ai-tutor/internal/recommend"
	"github.com/harsh8864/bharat-ai-tutor/internal/remind"
	"github.com/harsh8864/bharat-ai-tutor/internal/store"
	"github.com/harsh8864/bharat-ai-tutor/internal/subject"
)

// Server serves the HTTP API over the shared session store.
type Server struct {
	store     store.Store
	reminders *remind.FileStore
	log       *logger.Logger
	started   time.Time
	now       func() time.Time
}

// NewServer creates a Server. reminders may be nil.
func NewServer(st store.Store, reminders *remind.FileStore, log *logger.Logger) *Server {
	return &Server{
		store:     st,
		reminders: reminders,
		log:       log,
		started:   time.Now(),
		now:       time.Now,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.handleHealth)
	r.GET("/stats", s.handleStats)
	r.GET("/progress/:userId", s.handleProgress)
	r.GET("/api/dashboard", s.handleDashboard)
	r.GET("/backup", s.handleBackup)
	return r
}

// Serve runs the API until the context is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("http api listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := gin.H{
		"status":    "healthy",
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"uptime":    int(time.Since(s.started).Seconds()),
		"users":     s.store.Len(),
	}
	if s.reminders != nil {
		resp["reminders"] = s.reminders.Count()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStats(c *gin.Context) {
	sessions := s.store.All()

	var totalQuizzes, totalCorrect, topicsStudied int
	var streakSum int
	subjectCount := map[string]int{}
	for _, sess := range sessions {
		totalQuizzes += sess.Score.Total
		totalCorrect += sess.Score.Correct
		topicsStudied += len(sess.TopicsStudied)
		streakSum += sess.StreakDays
		for _, topic := range sess.TopicsStudied {
			subjectCount[string(subject.Classify(topic))]++
		}
	}

	users := len(sessions)
	accuracy := "0%"
	if totalQuizzes > 0 {
		accuracy = fmt.Sprintf("%.1f%%", float64(totalCorrect)/float64(totalQuizzes)*100)
	}
	avgStreak := 0.0
	if users > 0 {
		avgStreak = float64(streakSum) / float64(users)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalActiveUsers":      users,
		"totalQuizzesTaken":     totalQuizzes,
		"totalCorrectAnswers":   totalCorrect,
		"overallAccuracy":       accuracy,
		"totalTopicsStudied":    topicsStudied,
		"averageLearningStreak": float64(int(avgStreak*10+0.5)) / 10,
		"popularSubjects":       subjectCount,
		"uptime":                int(time.Since(s.started).Seconds()),
		"lastUpdated":           s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProgress(c *gin.Context) {
	userID := c.Param("userId")
	sess, ok := s.store.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	recent := sess.LearningHistory
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":            userID,
		"joinDate":          sess.JoinDate,
		"learningLevel":     learner.LevelName(sess.DifficultyLevel),
		"quizStats":         sess.Score,
		"accuracy":          fmt.Sprintf("%.1f", sess.AccuracyPercent()),
		"topicsStudied":     len(sess.TopicsStudied),
		"learningStreak":    sess.StreakDays,
		"strengths":         sess.Strengths,
		"weaknesses":        sess.Weaknesses,
		"recommendedTopics": recommend.Topics(sess),
		"recentActivity":    recent,
	})
}

func (s *Server) handleBackup(c *gin.Context) {
	filename := fmt.Sprintf("bharat-ai-tutor-backup-%s.json", s.now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.IndentedJSON(http.StatusOK, s.store.All())
}
