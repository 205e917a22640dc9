package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Bindings maps configuration action names to the bindings they control.
type Bindings map[string]*key.Binding

// Rebind replaces the keys of every binding named in overrides. Actions
// without a binding in b are skipped, so one override set can be applied
// to panels that only understand part of it. The help label follows the
// new keys.
func (b Bindings) Rebind(overrides map[string][]string) {
	for action, keys := range overrides {
		binding, ok := b[action]
		if !ok || len(keys) == 0 {
			continue
		}
		binding.SetKeys(keys...)
		binding.SetHelp(strings.Join(keys, "/"), binding.Help().Desc)
	}
}

// Bindings exposes the focus keys under their action names.
func (k *FocusKeys) Bindings() Bindings {
	return Bindings{
		ActionFocusForward:  &k.Forward,
		ActionFocusBackward: &k.Backward,
	}
}

// Action names understood by the panels' key maps.
const (
	ActionFocusForward  = "focusForward"
	ActionFocusBackward = "focusBackward"
	ActionToggle        = "toggle"
	ActionLeft          = "left"
	ActionRight         = "right"
	ActionUp            = "up"
	ActionDown          = "down"
	ActionClear         = "clear"
	ActionHome          = "home"
	ActionEnd           = "end"
	ActionPageUp        = "pageUp"
	ActionPageDown      = "pageDown"
	ActionCopy          = "copy"
	ActionQuit          = "quit"
)
