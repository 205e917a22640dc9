package config

import (
	"cqlterm/internal/tui/panel"
	"cqlterm/pkg/logging"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// KnownActions lists the action names accepted under keys.
var KnownActions = []string{
	panel.ActionFocusForward,
	panel.ActionFocusBackward,
	panel.ActionToggle,
	panel.ActionLeft,
	panel.ActionRight,
	panel.ActionUp,
	panel.ActionDown,
	panel.ActionClear,
	panel.ActionHome,
	panel.ActionEnd,
	panel.ActionPageUp,
	panel.ActionPageDown,
	panel.ActionCopy,
	panel.ActionQuit,
}

// Validate checks the merged configuration. All problems are reported
// together; each wraps ErrInvalidConfig. Duplicate sibling ids in the
// keyspace tree are left to the navigator, which rejects them when built.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		invalid("logLevel: %v", err)
	}

	known := make(map[string]bool, len(KnownActions))
	for _, a := range KnownActions {
		known[a] = true
	}
	for action, keys := range c.Keys {
		if !known[action] {
			invalid("keys: unknown action %q (known: %s)", action, strings.Join(KnownActions, ", "))
			continue
		}
		if len(keys) == 0 {
			invalid("keys.%s: no keys given", action)
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				invalid("keys.%s: empty key", action)
			}
		}
	}

	if c.REPL.CharLimit < 0 {
		invalid("repl.charLimit: must not be negative, got %d", c.REPL.CharLimit)
	}
	if w := c.Layout.NavigatorWidth; w <= 0 || w >= 1 {
		invalid("layout.navigatorWidth: must be between 0 and 1, got %g", w)
	}

	validateNodes(c.Keyspaces, "keyspaces", invalid)

	return errors.Join(errs...)
}

func validateNodes(nodes []NodeDefinition, where string, invalid func(string, ...interface{})) {
	for i, n := range nodes {
		path := fmt.Sprintf("%s[%d]", where, i)
		if strings.TrimSpace(n.ID) == "" {
			invalid("%s: id is required", path)
		}
		validateNodes(n.Children, path+".children", invalid)
	}
}
