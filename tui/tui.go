package tui

import (
	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
)

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// TranslateKey maps a key event to an editor command.
func TranslateKey(ev *tcell.EventKey) Optional[editor.Command] {
	switch ev.Key() {
	case tcell.KeyCtrlS:
		return Some(editor.CommandSave)
	case tcell.KeyCtrlZ:
		return Some(editor.CommandUndo)
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Some(editor.CommandQuit)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 's':
			return Some(editor.CommandSave)
		case 'u':
			return Some(editor.CommandUndo)
		case 'e':
			return Some(editor.CommandExport)
		case 'q':
			return Some(editor.CommandQuit)
		}
	}
	return None[editor.Command]()
}

// TranslateButtons returns which of the editor's buttons are held. ok is false
// for scroll wheel events.
func TranslateButtons(buttons tcell.ButtonMask) (primary, secondary, ok bool) {
	if buttons&wheelButtons != 0 {
		return false, false, false
	}
	primary = buttons&tcell.Button1 != 0
	secondary = buttons&tcell.Button2 != 0
	return primary, secondary, true
}

// KeyHelp lists the key bindings for the status bar.
const KeyHelp = "^S save  ^Z undo  e export  q quit"
