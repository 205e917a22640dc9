package config

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Keyspaces: []NodeDefinition{
			{ID: "keyspace1"},
			{
				ID: "keyspace2",
				Children: []NodeDefinition{
					{ID: "table1"},
					{ID: "table2"},
				},
			},
		},
		Keys: map[string][]string{},
		REPL: REPLConfig{
			Placeholder:     "Enter a statement",
			ShowLineNumbers: boolPtr(false),
		},
		Layout: LayoutConfig{
			NavigatorWidth: 0.3,
			ShowMessages:   boolPtr(true),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
