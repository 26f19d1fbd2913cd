package remind

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists reminders to a JSON file, mirroring the session
// snapshot layout.
type FileStore struct {
	mu        sync.Mutex
	path      string
	reminders []*Reminder
}

// NewFileStore opens the reminder file, creating its directory when
// missing. A missing file means no reminders yet.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create reminder dir: %w", err)
		}
	}
	st := &FileStore{path: path}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read reminders: %w", err)
	}
	if err := json.Unmarshal(data, &s.reminders); err != nil {
		return fmt.Errorf("parse reminders: %w", err)
	}
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.reminders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write reminders: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace reminders: %w", err)
	}
	return nil
}

// Add appends a reminder and persists.
func (s *FileStore) Add(r *Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, r)
	return s.save()
}

// All returns a copy of every stored reminder.
func (s *FileStore) All() []*Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Update rewrites the file after reminders were mutated in place.
func (s *FileStore) Update() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// Count returns the number of stored reminders.
func (s *FileStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}
