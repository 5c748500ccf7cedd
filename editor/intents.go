package editor

import (
	"fmt"

	"github.com/iw2rmb/quill/buffer"
)

// IntentKind identifies the action requested by one key event.
type IntentKind uint8

const (
	IntentIgnore IntentKind = iota
	IntentInsert
	IntentNewline
	IntentDeleteForward
	IntentDeleteBackward
	IntentMove
	IntentSave
	IntentQuit
)

// Intent is a decoded key event.
type Intent struct {
	Kind IntentKind
	// Rune is the character for IntentInsert.
	Rune rune
	// Dir is the direction for IntentMove.
	Dir  buffer.Dir
}

func Insert(r rune) Intent { return Intent{Kind: IntentInsert, Rune: r} }
func MoveTo(d buffer.Dir) Intent { return Intent{Kind: IntentMove, Dir: d} }

func (in Intent) String() string {
	switch in.Kind {
	case IntentInsert:
		return fmt.Sprintf("insert(%q)", in.Rune)
	case IntentNewline:
		return "newline"
	case IntentDeleteForward:
		return "delete"
	case IntentDeleteBackward:
		return "backspace"
	case IntentMove:
		return "move(" + in.Dir.String() + ")"
	case IntentSave:
		return "save"
	case IntentQuit:
		return "quit"
	default:
		return "ignore"
	}
}
