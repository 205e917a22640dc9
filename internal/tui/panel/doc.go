// Package panel defines the capability contract shared by every focusable
// panel of the TUI.
//
// A panel is a self-contained state machine. It can:
//
//   - Draw itself into a rectangle of a shared Surface, with a flag telling
//     it whether it currently owns keyboard input;
//   - HandleKey: consume one key event, apply at most one state transition
//     and optionally hand a Command back to the coordinator;
//   - Receive a Command relayed by the coordinator and optionally answer
//     with a follow-up Command.
//
// Panels never talk to each other directly. The only cross-panel traffic is
// a Command returned to the coordinator and, at most, relayed back down.
//
// # Focus keys
//
// Tab and Shift+Tab are intercepted ahead of any panel specific
// interpretation and turned into SwitchFocusForward and
// SwitchFocusBackward. FocusKeys.Intercept implements that rule so every
// panel applies it the same way.
//
// # Surfaces
//
// Frame is the Surface implementation used by the coordinator. It accepts
// one rendered block per rectangle, rejects rectangles outside its bounds
// or overlapping an earlier block, and composes the blocks into the final
// screen string.
package panel
