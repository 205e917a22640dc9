// Package config provides configuration management for cqlterm.
//
// Configuration is YAML, loaded from several sources and merged in order,
// with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (built into the binary)
//  2. User Configuration (~/.config/cqlterm/config.yaml)
//  3. Project Configuration (./.cqlterm/config.yaml)
//  4. Explicit file passed with --config, which must exist
//
// Missing user and project files are skipped.
//
// # Configuration Structure
//
//	logLevel: info            # debug, info, warn or error
//	logFile: ""               # TUI logs are also written here when set
//	keyspaces:                # initial navigator tree
//	  - id: keyspace1
//	  - id: keyspace2
//	    children:
//	      - id: table1
//	      - id: table2
//	keys:                     # action name to keys
//	  down: ["down", "j"]
//	repl:
//	  placeholder: "Enter a statement"
//	  showLineNumbers: false
//	  charLimit: 0            # 0 means unlimited
//	layout:
//	  navigatorWidth: 0.3
//	  showMessages: true
//
// # Merging
//
// Scalars override when set in the later layer. A keyspaces list replaces
// the earlier one as a whole. Key overrides merge per action.
package config
