// Package config loads runtime settings from the environment. Command line
// flags in main override what is loaded here.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"rogue/pkg/game/balance"
	"rogue/pkg/game/progression"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	Seed        uint64 // 0 picks a random seed
	Level       int
	LockColors  int
	Difficulty  balance.Difficulty
	Locale      language.Tag
	RedisAddr   string // Empty disables persistence
}

// Load reads the configuration from the environment, falling back to
// defaults for unset variables. Malformed values are reported as errors.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ROGUE_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
	}

	var err error
	if cfg.Seed, err = strconv.ParseUint(getEnv("ROGUE_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid ROGUE_SEED: %w", err)
	}
	if cfg.Level, err = strconv.Atoi(getEnv("ROGUE_LEVEL", strconv.Itoa(progression.FirstLevel))); err != nil {
		return nil, fmt.Errorf("invalid ROGUE_LEVEL: %w", err)
	}
	if cfg.LockColors, err = strconv.Atoi(getEnv("ROGUE_LOCK_COLORS", "3")); err != nil {
		return nil, fmt.Errorf("invalid ROGUE_LOCK_COLORS: %w", err)
	}
	if cfg.Difficulty, err = balance.ParseDifficulty(getEnv("ROGUE_DIFFICULTY", "normal")); err != nil {
		return nil, fmt.Errorf("invalid ROGUE_DIFFICULTY: %w", err)
	}
	if cfg.Locale, err = ParseLocale(getEnv("ROGUE_LOCALE", "en")); err != nil {
		return nil, fmt.Errorf("invalid ROGUE_LOCALE: %w", err)
	}

	return cfg, nil
}

// ParseLocale parses a BCP 47 tag such as "en" or "pt-BR".
func ParseLocale(s string) (language.Tag, error) {
	return language.Parse(s)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
