package app

import (
	"cqlterm/internal/config"
	"cqlterm/internal/tui/controller"
	"cqlterm/internal/tui/messages"
	"cqlterm/internal/tui/panel"
	"cqlterm/internal/tui/repl"
	"cqlterm/internal/tui/tree"
)

// BuildCoordinator creates the panels described by cfg in focus order:
// navigator, editor, then the activity log when it is enabled. Key
// overrides are applied to every panel that understands the action.
func BuildCoordinator(cfg config.Config) (*controller.Coordinator, error) {
	treeKeys := tree.DefaultKeyMap()
	treeKeys.Bindings().Rebind(cfg.Keys)
	navigator, err := tree.New(ToNodes(cfg.Keyspaces), tree.WithKeyMap(treeKeys))
	if err != nil {
		return nil, err
	}

	replKeys := repl.DefaultKeyMap()
	replKeys.Bindings().Rebind(cfg.Keys)
	editor := repl.New(
		repl.WithKeyMap(replKeys),
		repl.WithPlaceholder(cfg.REPL.Placeholder),
		repl.WithLineNumbers(cfg.REPL.LineNumbers()),
		repl.WithCharLimit(cfg.REPL.CharLimit),
	)

	panels := []panel.Panel{navigator, editor}
	if cfg.Layout.MessagesVisible() {
		logKeys := messages.DefaultKeyMap()
		logKeys.Bindings().Rebind(cfg.Keys)
		panels = append(panels, messages.New(messages.WithKeyMap(logKeys)))
	}

	quit := controller.DefaultQuitKeys()
	panel.Bindings{panel.ActionQuit: &quit}.Rebind(cfg.Keys)

	return controller.NewCoordinator(panels,
		controller.WithNavigatorWidth(cfg.Layout.NavigatorWidth),
		controller.WithQuitKeys(quit),
	)
}

// ToNodes converts configured keyspaces into navigator nodes.
func ToNodes(defs []config.NodeDefinition) []tree.Node {
	if len(defs) == 0 {
		return nil
	}
	nodes := make([]tree.Node, len(defs))
	for i, d := range defs {
		nodes[i] = tree.Branch(d.ID, d.Label, ToNodes(d.Children)...)
	}
	return nodes
}
