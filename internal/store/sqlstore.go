package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
)

// sessionRow is the SQLite row holding one user's serialized session.
type sessionRow struct {
	UserID    string `gorm:"primaryKey;column:user_id"`
	Data      []byte `gorm:"column:data"`
	UpdatedAt time.Time
}

func (sessionRow) TableName() string { return "sessions" }

// SQLStore persists the session map to a SQLite database through gorm.
// Like FileStore it works from memory and writes the full snapshot on
// SaveAll; the database is for deployments that prefer a queryable file
// over a JSON blob.
type SQLStore struct {
	sessions
	db *gorm.DB
}

// NewSQLStore opens (or creates) the SQLite database at dsn and migrates
// the sessions table.
func NewSQLStore(dsn string) (*SQLStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}

	return &SQLStore{sessions: newSessions(), db: db}, nil
}

// LoadAll reads every session row into memory.
func (s *SQLStore) LoadAll() error {
	var rows []sessionRow
	if err := s.db.Find(&rows).Error; err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}

	data := make(map[string]*learner.Session, len(rows))
	for _, row := range rows {
		sess := &learner.Session{}
		if err := json.Unmarshal(row.Data, sess); err != nil {
			return &PersistenceError{Op: "load", Err: fmt.Errorf("user %s: %w", row.UserID, err)}
		}
		data[row.UserID] = sess
	}
	s.replace(data)
	return nil
}

// SaveAll upserts every session snapshot in one transaction. Concurrent
// saves are serialized so a slow transaction cannot interleave with (and
// partially lose to) a later one.
func (s *SQLStore) SaveAll() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	all := s.All()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for userID, sess := range all {
			raw, err := json.Marshal(sess)
			if err != nil {
				return err
			}
			row := sessionRow{UserID: userID, Data: raw, UpdatedAt: time.Now()}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

var _ Store = (*SQLStore)(nil)
