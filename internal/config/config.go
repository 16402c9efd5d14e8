package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mtlprog/usersettings/internal/schema"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	UnknownFields   string
	LogLevel        string
	LogFormat       string
	MaxPayloadBytes int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	return Config{
		UnknownFields:   envOrDefault("SETTINGS_UNKNOWN_FIELDS", string(schema.UnknownFieldsDrop)),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		MaxPayloadBytes: envOrDefaultInt("SETTINGS_MAX_PAYLOAD_BYTES", 1<<20),
	}
}

// UnknownFieldPolicy parses UnknownFields, falling back to dropping unknown
// keys when the value is not recognized.
func (c Config) UnknownFieldPolicy() schema.UnknownFieldPolicy {
	p, err := schema.ParseUnknownFieldPolicy(c.UnknownFields)
	if err != nil {
		slog.Warn("invalid unknown field policy, using default", "value", c.UnknownFields, "default", schema.UnknownFieldsDrop)
		return schema.UnknownFieldsDrop
	}
	return p
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		slog.Warn("invalid log level, using default", "value", c.LogLevel, "default", slog.LevelInfo)
		return slog.LevelInfo
	}
	return level
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}
