package panel

// Command is a request passed between panels and the coordinator. The set
// is closed: only this package defines commands.
type Command interface {
	isCommand()
}

// SwitchFocusForward asks the coordinator to focus the next panel.
type SwitchFocusForward struct{}

// SwitchFocusBackward asks the coordinator to focus the previous panel.
type SwitchFocusBackward struct{}

// AppendLog carries one activity log line to panels that display it.
type AppendLog struct {
	Line string
}

// Quit asks the coordinator to end the program.
type Quit struct{}

func (SwitchFocusForward) isCommand()  {}
func (SwitchFocusBackward) isCommand() {}
func (AppendLog) isCommand()           {}
func (Quit) isCommand()                {}
