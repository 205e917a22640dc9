package app

import (
	"cqlterm/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath is an explicit configuration file layered on top of the
	// user and project files.
	ConfigPath string

	// Debug forces debug logging.
	Debug bool

	// LogFile overrides the configured log file.
	LogFile string

	// Loaded configuration
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool, logFile string) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
		LogFile:    logFile,
	}
}
