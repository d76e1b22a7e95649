package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultDBName        = "hoopstats.db"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultHistoryWindow = 4
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	window := defaultHistoryWindow
	if raw, ok := os.LookupEnv("HISTORY_WINDOW"); ok {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			window = parsed
		} else {
			log.Warn("Invalid HISTORY_WINDOW, using default", "value", raw, "default", defaultHistoryWindow)
		}
	}

	return Config{
		DBName:        getEnv("DB_NAME", defaultDBName),
		Port:          getEnv("PORT", defaultPort),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		HistoryWindow: window,
	}
}

// ApplyLogLevel sets the global logger level from cfg, keeping the current level
// when the configured value is not recognised.
func ApplyLogLevel(cfg Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
		return
	}
	log.SetLevel(level)
}
