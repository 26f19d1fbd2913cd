package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// FileStore persists the session map as a single JSON document, replaced
// wholesale on every save via a temp-file rename so readers never observe
// a partial write.
type FileStore struct {
	sessions
	path string
}

// NewFileStore creates a FileStore persisting to path. The parent
// directory is created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{sessions: newSessions(), path: path}, nil
}

// LoadAll reads the snapshot file into memory. A missing file is not an
// error; it simply means no users yet.
func (f *FileStore) LoadAll() error {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.replace(make(map[string]*learner.Session))
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}

	data := make(map[string]*learner.Session)
	if err := json.Unmarshal(raw, &data); err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	f.replace(data)
	return nil
}

// SaveAll writes the full session map to the snapshot file atomically.
// saveMu keeps concurrent saves from racing each other's temp file.
func (f *FileStore) SaveAll() error {
	f.saveMu.Lock()
	defer f.saveMu.Unlock()

	raw, err := json.MarshalIndent(f.All(), "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Close is a no-op; the file is only held open during saves.
func (f *FileStore) Close() error { return nil }

// DefaultDataPath resolves the snapshot file location in priority order:
// the TUTOR_DATA_FILE env var, then data/user_data.json under the working
// directory.
func DefaultDataPath() string {
	if p := os.Getenv("TUTOR_DATA_FILE"); p != "" {
		return p
	}
	return filepath.Join("data", "user_data.json")
}

var _ Store = (*FileStore)(nil)
