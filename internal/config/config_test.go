package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultStoreBackend, cfg.StoreBackend)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultRemindersFile, cfg.RemindersFile)
	assert.False(t, cfg.VoiceReplies)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TUTOR_HTTP_ADDR", ":8080")
	t.Setenv("TUTOR_STORE", "sqlite")
	t.Setenv("TUTOR_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("TUTOR_VOICE_REPLIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	assert.True(t, cfg.VoiceReplies)
}

func TestLoadPortWinsOverAddr(t *testing.T) {
	t.Setenv("TUTOR_HTTP_ADDR", ":8080")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TUTOR_STORE", "redis")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("TUTOR_STORE", "file")
	t.Setenv("PORT", "not-a-port")
	_, err = Load()
	require.Error(t, err)
}
