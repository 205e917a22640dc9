package app

import (
	"context"
	"cqlterm/internal/tui/controller"
	"cqlterm/pkg/logging"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, coord *controller.Coordinator) error {
	var logOutput io.Writer
	if path := config.logFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		defer f.Close()
		logOutput = f
	}

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.logLevel(logging.LevelInfo), logOutput)
	defer logging.CloseTUIChannel()

	logging.Info("TUI-Lifecycle", "Starting with %d panels", coord.Len())

	p := controller.NewProgram(coord, logChan, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
