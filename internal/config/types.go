package config

// Config is the top-level configuration structure for cqlterm.
type Config struct {
	LogLevel  string              `yaml:"logLevel,omitempty"`
	LogFile   string              `yaml:"logFile,omitempty"`
	Keyspaces []NodeDefinition    `yaml:"keyspaces,omitempty"`
	Keys      map[string][]string `yaml:"keys,omitempty"`
	REPL      REPLConfig          `yaml:"repl"`
	Layout    LayoutConfig        `yaml:"layout"`
}

// NodeDefinition describes one entry of the navigator tree.
type NodeDefinition struct {
	ID       string           `yaml:"id"`
	Label    string           `yaml:"label,omitempty"`
	Children []NodeDefinition `yaml:"children,omitempty"`
}

// REPLConfig holds the statement editor settings.
type REPLConfig struct {
	Placeholder     string `yaml:"placeholder,omitempty"`
	ShowLineNumbers *bool  `yaml:"showLineNumbers,omitempty"`
	CharLimit       int    `yaml:"charLimit,omitempty"`
}

// LineNumbers reports whether the editor shows a line number gutter.
func (c REPLConfig) LineNumbers() bool {
	return c.ShowLineNumbers != nil && *c.ShowLineNumbers
}

// LayoutConfig holds the screen arrangement.
type LayoutConfig struct {
	// NavigatorWidth is the fraction of the width given to the navigator.
	NavigatorWidth float64 `yaml:"navigatorWidth,omitempty"`
	ShowMessages   *bool   `yaml:"showMessages,omitempty"`
}

// MessagesVisible reports whether the activity log panel is shown. It
// defaults to true.
func (c LayoutConfig) MessagesVisible() bool {
	return c.ShowMessages == nil || *c.ShowMessages
}
