package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
	"github.com/harsh8864/bharat-ai-tutor/internal/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewServer(st, nil, logger.Nop()), st
}

func seedSession(st store.Store, userID string, now time.Time) *learner.Session {
	s := st.GetOrCreate(userID, now)
	s.RecordTopic("algebra basics", now)
	s.RecordQuizAnswer("algebra basics", true, now)
	s.Score.Correct = 1
	s.Score.Total = 1
	s.StreakDays = 3
	s.TextMessages = 5
	st.Put(userID, s)
	return s
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doRequest(t, srv, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestStatsAggregates(t *testing.T) {
	srv, st := newTestServer(t)
	now := time.Now()
	seedSession(st, "919876543210@c.us", now)
	seedSession(st, "911234567890@c.us", now)

	w := doRequest(t, srv, "/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		TotalActiveUsers  int            `json:"totalActiveUsers"`
		TotalQuizzesTaken int            `json:"totalQuizzesTaken"`
		OverallAccuracy   string         `json:"overallAccuracy"`
		PopularSubjects   map[string]int `json:"popularSubjects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalActiveUsers != 2 {
		t.Errorf("totalActiveUsers = %d, want 2", body.TotalActiveUsers)
	}
	if body.TotalQuizzesTaken != 2 {
		t.Errorf("totalQuizzesTaken = %d, want 2", body.TotalQuizzesTaken)
	}
	if body.OverallAccuracy != "100.0%" {
		t.Errorf("overallAccuracy = %q", body.OverallAccuracy)
	}
	if body.PopularSubjects["math"] != 2 {
		t.Errorf("popularSubjects = %v, want math:2", body.PopularSubjects)
	}
}

func TestProgressKnownAndUnknownUser(t *testing.T) {
	srv, st := newTestServer(t)
	seedSession(st, "919876543210@c.us", time.Now())

	w := doRequest(t, srv, "/progress/919876543210@c.us")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		LearningLevel  string `json:"learningLevel"`
		LearningStreak int    `json:"learningStreak"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.LearningLevel != "Beginner" {
		t.Errorf("learningLevel = %q", body.LearningLevel)
	}
	if body.LearningStreak != 3 {
		t.Errorf("learningStreak = %d, want 3", body.LearningStreak)
	}

	if w := doRequest(t, srv, "/progress/nobody"); w.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	srv, st := newTestServer(t)
	now := time.Now()
	seedSession(st, "919876543210@c.us", now)

	w := doRequest(t, srv, "/api/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body dashboardData
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UserStats.ActiveUsers != 1 {
		t.Errorf("activeUsers = %d, want 1", body.UserStats.ActiveUsers)
	}
	if body.UserStats.TextMessages != 5 {
		t.Errorf("textMessages = %d, want 5", body.UserStats.TextMessages)
	}
	if len(body.PopularTopics) != 1 || body.PopularTopics[0].Name != "Algebra basics" {
		t.Errorf("popularTopics = %v", body.PopularTopics)
	}
	if len(body.LearningStreaks) != 1 || body.LearningStreaks[0].Days != 3 {
		t.Errorf("learningStreaks = %v", body.LearningStreaks)
	}
}

func TestBackupReturnsSnapshot(t *testing.T) {
	srv, st := newTestServer(t)
	seedSession(st, "919876543210@c.us", time.Now())

	w := doRequest(t, srv, "/backup")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}
	var snapshot map[string]*learner.Session
	if err := json.Unmarshal(w.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := snapshot["919876543210@c.us"]; !ok {
		t.Error("seeded user missing from backup")
	}
}
