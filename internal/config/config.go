package config

import (
	"os"
	"path/filepath"

	"topscreen-counter/internal/logger"

	"github.com/pkg/errors"
)

const (
	SettingsFile  = "settings.json"
	LockFile      = ".top_screen_counter.lock"
	BarHeight     = 20
	FallbackWidth = 1280
)

type Config struct {
	SettingsPath string
	LockPath     string

	// BarHeight is the docked strip height in pixels.
	BarHeight int
	// FallbackWidth is used where the primary screen width cannot be queried.
	FallbackWidth int

	LogLevel logger.LogLevel
	JSONLogs bool
}

// Load resolves paths against the user's home directory and reads the
// diagnostics toggles from the environment.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve home directory")
	}

	return &Config{
		SettingsPath:  SettingsFile,
		LockPath:      filepath.Join(home, LockFile),
		BarHeight:     BarHeight,
		FallbackWidth: FallbackWidth,
		LogLevel:      logger.ParseLevel(getEnv("TSC_LOG_LEVEL", "info")),
		JSONLogs:      getEnv("TSC_JSON_LOGS", "") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
