package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Intents decodes one key event. A rune event carrying several runes (fast
// typing or a paste) yields one insert per rune.
func (km KeyMap) Intents(msg tea.KeyMsg) []Intent {
	switch {
	case key.Matches(msg, km.Quit):
		return []Intent{{Kind: IntentQuit}}
	case key.Matches(msg, km.Save):
		return []Intent{{Kind: IntentSave}}

	case key.Matches(msg, km.Left):
		return []Intent{MoveTo(buffer.DirLeft)}
	case key.Matches(msg, km.Right):
		return []Intent{MoveTo(buffer.DirRight)}
	case key.Matches(msg, km.Up):
		return []Intent{MoveTo(buffer.DirUp)}
	case key.Matches(msg, km.Down):
		return []Intent{MoveTo(buffer.DirDown)}
	case key.Matches(msg, km.PageUp):
		return []Intent{MoveTo(buffer.DirPageUp)}
	case key.Matches(msg, km.PageDown):
		return []Intent{MoveTo(buffer.DirPageDown)}
	case key.Matches(msg, km.Home):
		return []Intent{MoveTo(buffer.DirHome)}
	case key.Matches(msg, km.End):
		return []Intent{MoveTo(buffer.DirEnd)}

	case key.Matches(msg, km.Backspace):
		return []Intent{{Kind: IntentDeleteBackward}}
	case key.Matches(msg, km.Delete):
		return []Intent{{Kind: IntentDeleteForward}}
	case key.Matches(msg, km.Enter):
		return []Intent{{Kind: IntentNewline}}
	}

	switch msg.Type {
	case tea.KeyTab:
		return []Intent{Insert('\t')}
	case tea.KeySpace:
		return []Intent{Insert(' ')}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		out := make([]Intent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r':
				// CRLF pastes arrive as "\r\n"; the '\n' that follows splits the line.
			case '\n':
				out = append(out, Intent{Kind: IntentNewline})
			default:
				out = append(out, Insert(r))
			}
		}
		return out
	}
	return nil
}
