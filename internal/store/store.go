// Package store holds the shared session map and its durable snapshots.
// Two backends implement the same contract: a JSON snapshot file and a
// SQLite database. Both keep the working set in memory and persist the
// full snapshot on demand, so request handling never blocks on I/O
// correctness; a failed save is retried by the next sweep.
package store

import (
	"fmt"
	"time"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// Store is the durable mapping from user identifier to learning session.
// Sessions are created lazily and never deleted.
type Store interface {
	// Get returns the user's session as of the last Put, or (nil, false)
	// if none exists. The returned session is an immutable snapshot and
	// safe to read without the user lock.
	Get(userID string) (*learner.Session, bool)

	// GetOrCreate returns the live session for userID, creating a fresh
	// one (state IDLE, counters zeroed) on first contact. Callers must
	// hold the user lock (Acquire) while reading or mutating it.
	GetOrCreate(userID string, now time.Time) *learner.Session

	// Put installs s as the live session and publishes a point-in-time
	// snapshot of it for Get, All, and SaveAll.
	Put(userID string, s *learner.Session)

	// All returns a copy of the user→session mapping holding the latest
	// snapshot of each session; safe to read without any lock.
	All() map[string]*learner.Session

	// Len returns the number of known users.
	Len() int

	// Acquire takes the per-user mutex and returns its release func. Every
	// read-modify-persist cycle for a user must run under this lock;
	// handlers for different users proceed independently.
	Acquire(userID string) (release func())

	// LoadAll replaces the in-memory mapping with the persisted snapshot.
	LoadAll() error

	// SaveAll persists the latest snapshot of every session. Concurrent
	// calls are serialized.
	SaveAll() error

	// Close releases backend resources.
	Close() error
}

// PersistenceError wraps a failed snapshot load or save. Persistence
// failures are logged and retried on the next scheduled save; they are
// never fatal to request handling.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
