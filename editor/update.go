package editor

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, in := range m.cfg.KeyMap.Intents(msg) {
			var cmd tea.Cmd
			m, cmd = m.Apply(in)
			cmds = append(cmds, cmd)
			if m.quitting {
				break
			}
		}
		return m, tea.Batch(cmds...)
	case messageExpiredMsg:
		if msg.gen == m.messageGen {
			m.message = ""
		}
		return m, nil
	}
	return m, nil
}

// Apply performs one intent: at most one document mutation followed by a
// scroll update.
func (m Model) Apply(in Intent) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch in.Kind {
	case IntentInsert:
		m.doc.Insert(m.cursor, in.Rune)
		m.cursor = m.move(buffer.DirRight)
	case IntentNewline:
		m.doc.Insert(m.cursor, '\n')
		m.cursor = m.move(buffer.DirRight)
	case IntentDeleteForward:
		m.doc.Delete(m.cursor)
	case IntentDeleteBackward:
		if m.cursor.Col > 0 || m.cursor.Line > 0 {
			m.cursor = m.move(buffer.DirLeft)
			m.doc.Delete(m.cursor)
		}
	case IntentMove:
		m.cursor = m.move(in.Dir)
	case IntentSave:
		m, cmd = m.save()
	case IntentQuit:
		log.Printf("editor: quit")
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	m.offset = Scroll(m.cursor, m.size, m.offset)
	return m, cmd
}

func (m Model) move(dir buffer.Dir) buffer.Pos {
	return buffer.Move(m.doc, m.cursor, dir, m.size.Height)
}

func (m Model) save() (Model, tea.Cmd) {
	if m.doc.Name() == "" {
		return m.SetMessage("No file name: start quill with a path to save")
	}
	if err := m.doc.Save(); err != nil {
		log.Printf("editor: %v", err)
		return m.SetMessage("Error writing file: " + err.Error())
	}
	log.Printf("editor: saved %d lines to %s", m.doc.Len(), m.doc.Name())
	return m.SetMessage("File saved successfully.")
}
