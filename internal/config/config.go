// Package config loads service configuration from the environment. A
// .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the tutoring service configuration.
type Config struct {
	// HTTPAddr is the dashboard/API listen address.
	HTTPAddr string

	// LogMode selects logger output: "prod" or "dev".
	LogMode string

	// StoreBackend selects persistence: "file" or "sqlite".
	StoreBackend string

	// DataFile is the session snapshot path for the file backend.
	DataFile string

	// RemindersFile is the reminder store path.
	RemindersFile string

	// SQLitePath is the database path for the sqlite backend.
	SQLitePath string

	// VoiceReplies enables synthesized audio responses to voice notes.
	VoiceReplies bool
}

// Defaults for everything the environment does not set.
const (
	DefaultHTTPAddr      = ":3000"
	DefaultLogMode       = "prod"
	DefaultStoreBackend  = "file"
	DefaultDataFile      = "data/user_data.json"
	DefaultRemindersFile = "data/reminders.json"
	DefaultSQLitePath    = "data/tutor.db"
)

// Load reads configuration, applying defaults. Environment variables
// use the TUTOR_ prefix.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getenv("TUTOR_HTTP_ADDR", DefaultHTTPAddr),
		LogMode:       getenv("TUTOR_LOG_MODE", DefaultLogMode),
		StoreBackend:  getenv("TUTOR_STORE", DefaultStoreBackend),
		DataFile:      getenv("TUTOR_DATA_FILE", DefaultDataFile),
		RemindersFile: getenv("TUTOR_REMINDERS_FILE", DefaultRemindersFile),
		SQLitePath:    getenv("TUTOR_SQLITE_PATH", DefaultSQLitePath),
	}

	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.HTTPAddr = ":" + port
	}

	switch cfg.StoreBackend {
	case "file", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if v := os.Getenv("TUTOR_VOICE_REPLIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TUTOR_VOICE_REPLIES %q", v)
		}
		cfg.VoiceReplies = b
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
