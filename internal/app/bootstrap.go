package app

import (
	"context"
	"cqlterm/internal/config"
	"cqlterm/internal/tui/controller"
	"cqlterm/pkg/logging"
	"fmt"
	"os"
)

// Application is the main application structure that bootstraps and runs cqlterm
type Application struct {
	config *Config
	coord  *controller.Coordinator
}

// NewApplication loads and validates the configuration and builds the
// panels. Nothing is drawn until Run.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cfg.logLevel(logging.LevelInfo), os.Stderr)

	settings, sources, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, src := range sources {
		logging.Debug("Bootstrap", "Loaded configuration from %s", src)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cfg.Settings = &settings
	logging.InitForCLI(cfg.logLevel(logging.LevelInfo), os.Stderr)

	coord, err := BuildCoordinator(settings)
	if err != nil {
		return nil, err
	}

	return &Application{
		config: cfg,
		coord:  coord,
	}, nil
}

// Coordinator returns the assembled coordinator.
func (a *Application) Coordinator() *controller.Coordinator {
	return a.coord
}

// Run executes the interactive terminal UI until the user quits.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.coord)
}

// logLevel resolves the effective level: --debug wins, then the configured
// level, then fallback.
func (c *Config) logLevel(fallback logging.LogLevel) logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.Settings == nil {
		return fallback
	}
	level, err := logging.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return fallback
	}
	return level
}

// logFile resolves the effective log file: the flag wins over the
// configuration.
func (c *Config) logFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if c.Settings != nil {
		return c.Settings.LogFile
	}
	return ""
}
