package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/cqlterm"
	projectConfigDir = ".cqlterm"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user and project
// settings, then the file at explicitPath when it is not empty. It returns
// the files that contributed, in the order they were applied.
func LoadConfig(explicitPath string) (Config, []string, error) {
	config := GetDefaultConfig()
	var sources []string

	optional := []struct {
		name string
		path func() (string, error)
	}{
		{name: "user", path: getUserConfigPath},
		{name: "project", path: getProjectConfigPath},
	}
	for _, layer := range optional {
		path, err := layer.path()
		if err != nil {
			// The layer is optional; an unknown home or working directory
			// only means it is skipped.
			fmt.Fprintf(os.Stderr, "Warning: Could not determine %s config path: %v\n", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, nil, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		config = mergeConfigs(config, overlay)
		sources = append(sources, path)
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, overlay)
		sources = append(sources, explicitPath)
	}

	return config, sources, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file. Unknown fields are
// rejected so that typos do not pass silently.
func loadConfigFromFile(filePath string) (Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var config Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		// An empty file is an empty layer.
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.LogFile != "" {
		merged.LogFile = overlay.LogFile
	}

	// A keyspaces list present in the overlay replaces the base tree.
	if overlay.Keyspaces != nil {
		merged.Keyspaces = overlay.Keyspaces
	}

	merged.Keys = make(map[string][]string, len(base.Keys)+len(overlay.Keys))
	for action, keys := range base.Keys {
		merged.Keys[action] = keys
	}
	for action, keys := range overlay.Keys {
		merged.Keys[action] = keys
	}

	if overlay.REPL.Placeholder != "" {
		merged.REPL.Placeholder = overlay.REPL.Placeholder
	}
	if overlay.REPL.ShowLineNumbers != nil {
		merged.REPL.ShowLineNumbers = overlay.REPL.ShowLineNumbers
	}
	if overlay.REPL.CharLimit != 0 {
		merged.REPL.CharLimit = overlay.REPL.CharLimit
	}

	if overlay.Layout.NavigatorWidth != 0 {
		merged.Layout.NavigatorWidth = overlay.Layout.NavigatorWidth
	}
	if overlay.Layout.ShowMessages != nil {
		merged.Layout.ShowMessages = overlay.Layout.ShowMessages
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// Marshal renders the configuration as YAML.
func Marshal(config Config) ([]byte, error) {
	return yaml.Marshal(&config)
}
