package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	Port          string
	LogLevel      string
	HistoryWindow int
}
