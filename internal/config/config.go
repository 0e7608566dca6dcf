// internal/config/config.go
//
// Environment-driven configuration.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory (existing variables win). Malformed numbers
// fall back to their defaults with a warning; range checks are left to the
// packages that use them.
//
// Environment variables:
//   LOG_LEVEL    zerolog level (info)
//   PORT         HTTP listen port (5175)
//   WORDS_FILE   dictionary file; empty uses the embedded list
//   WORD_LENGTH  fixed word length (5)
//   MAX_TRIES    attempt budget (6)
//   TIE_BREAK    vowel | phase (vowel)
//   WORKERS      batch parallelism (4)
//   DB_PATH      SQLite file for runs; empty keeps runs in memory
//   JWT_SECRET   HS256 secret for /simulate (dev_secret_change_me)
//   DAILY_SALT   key for the word of the day (local_dev_salt)

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is the process configuration.
type Config struct {
	LogLevel   zerolog.Level
	Port       string
	WordsFile  string
	WordLength int
	MaxTries   int
	TieBreak   string
	Workers    int
	DBPath     string
	JWTSecret  string
	DailySalt  string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Warn().Err(err).Msg("invalid LOG_LEVEL, using info")
		lvl = zerolog.InfoLevel
	}
	return Config{
		LogLevel:   lvl,
		Port:       getEnv("PORT", "5175"),
		WordsFile:  os.Getenv("WORDS_FILE"),
		WordLength: envInt("WORD_LENGTH", 5),
		MaxTries:   envInt("MAX_TRIES", 6),
		TieBreak:   getEnv("TIE_BREAK", "vowel"),
		Workers:    envInt("WORKERS", 4),
		DBPath:     os.Getenv("DB_PATH"),
		JWTSecret:  getEnv("JWT_SECRET", "dev_secret_change_me"),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
	}
}

// Apply sets the global log level.
func (c Config) Apply() {
	zerolog.SetGlobalLevel(c.LogLevel)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("var", k).Str("value", v).Int("default", def).Msg("invalid integer, using default")
		return def
	}
	return n
}
