package editor

import "github.com/JaMo42/rectcase/geom"

// Command is a non-pointer action requested by the user.
type Command int

const (
	CommandNone Command = iota
	CommandSave
	CommandUndo
	CommandExport
	CommandQuit
)

func (self Command) String() string {
	switch self {
	case CommandSave:
		return "save"
	case CommandUndo:
		return "undo"
	case CommandExport:
		return "export"
	case CommandQuit:
		return "quit"
	}
	return "none"
}

// Input is one polled input event. If Pointer is set the event carries the
// pointer position and the buttons that are currently held, otherwise it
// carries a Command.
type Input struct {
	Pointer   bool
	X, Y      geom.Coord
	Primary   bool
	Secondary bool
	Command   Command
}

// PointerInput creates a pointer event.
func PointerInput(x, y geom.Coord, primary, secondary bool) Input {
	return Input{Pointer: true, X: x, Y: y, Primary: primary, Secondary: secondary}
}

// CommandInput creates a command event.
func CommandInput(command Command) Input {
	return Input{Command: command}
}
