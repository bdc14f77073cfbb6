package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// ExportLocale drives number grouping in money columns (BCP 47 tag).
	ExportLocale string
	// PrefsPath is the JSON file holding persisted UI preferences such as
	// the visible-column selection.
	PrefsPath string
	// ExportDir is where the export CLI writes its output files.
	ExportDir string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		ExportLocale: getEnv("EXPORT_LOCALE", "en"),
		PrefsPath:    getEnv("PREFS_PATH", "./datarw_prefs.json"),
		ExportDir:    getEnv("EXPORT_DIR", "./exports"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
