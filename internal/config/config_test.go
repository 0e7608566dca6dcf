package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "PORT", "WORDS_FILE", "WORD_LENGTH", "MAX_TRIES",
		"TIE_BREAK", "WORKERS", "DB_PATH", "JWT_SECRET", "DAILY_SALT"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, Config{
		LogLevel:   zerolog.InfoLevel,
		Port:       "5175",
		WordLength: 5,
		MaxTries:   6,
		TieBreak:   "vowel",
		Workers:    4,
		JWTSecret:  "dev_secret_change_me",
		DailySalt:  "local_dev_salt",
	}, c)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_TRIES", "8")
	t.Setenv("WORKERS", "lots")
	t.Setenv("TIE_BREAK", "phase")
	t.Setenv("DB_PATH", "/tmp/runs.db")

	c := FromEnv()
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 8, c.MaxTries)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "phase", c.TieBreak)
	assert.Equal(t, "/tmp/runs.db", c.DBPath)
}

func TestFromEnvBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	assert.Equal(t, zerolog.InfoLevel, FromEnv().LogLevel)
}
