package store

import (
	"sync"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// sessions is the in-memory working set shared by both backends. It
// keeps two maps: live sessions, mutated only by the handler holding
// that user's lock, and an immutable snapshot refreshed at Put time.
// Saves and HTTP reads serve the snapshot, so they never observe a
// session mid-mutation.
type sessions struct {
	mu   sync.RWMutex
	live map[string]*learner.Session
	snap map[string]*learner.Session

	// saveMu serializes SaveAll across callers; concurrent saves would
	// otherwise interleave their write+rename (or transaction) pairs.
	saveMu sync.Mutex

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func newSessions() sessions {
	return sessions{
		live:  make(map[string]*learner.Session),
		snap:  make(map[string]*learner.Session),
		locks: make(map[string]*sync.Mutex),
	}
}

// Get returns the user's snapshot as of the last Put.
func (m *sessions) Get(userID string) (*learner.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.snap[userID]
	return s, ok
}

// GetOrCreate returns the live session, creating it on first contact.
func (m *sessions) GetOrCreate(userID string, now time.Time) *learner.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.live[userID]; ok {
		return s
	}
	s := learner.NewSession(now)
	m.live[userID] = s
	m.snap[userID] = s.Clone()
	return s
}

// Put installs s as the live session and publishes a fresh snapshot of
// it. Snapshot entries are never mutated in place, only replaced here.
func (m *sessions) Put(userID string, s *learner.Session) {
	clone := s.Clone()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[userID] = s
	m.snap[userID] = clone
}

// All returns a copy of the snapshot map.
func (m *sessions) All() map[string]*learner.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*learner.Session, len(m.snap))
	for id, s := range m.snap {
		out[id] = s
	}
	return out
}

func (m *sessions) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.live)
}

func (m *sessions) replace(data map[string]*learner.Session) {
	snap := make(map[string]*learner.Session, len(data))
	for id, s := range data {
		snap[id] = s.Clone()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live = data
	m.snap = snap
}

// Acquire takes the mutex dedicated to userID, creating it on first use.
// User mutexes are never removed; the set of users only grows.
func (m *sessions) Acquire(userID string) func() {
	m.lockMu.Lock()
	l, ok := m.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[userID] = l
	}
	m.lockMu.Unlock()

	l.Lock()
	return l.Unlock
}
