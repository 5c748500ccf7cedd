package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

const (
	fileNameWidth = 20
	unnamedFile   = "[No Name]"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, m.size.Height+2)
	for screenRow := 0; screenRow < m.size.Height; screenRow++ {
		lines = append(lines, m.renderRow(screenRow))
	}
	if m.height >= 1 {
		lines = append(lines, m.renderStatusBar())
	}
	if m.height >= 2 {
		lines = append(lines, m.renderMessageBar())
	}
	return strings.Join(lines, "\n")
}

// VisibleRows returns the text of every document row in the viewport, as
// handed to the screen before styling.
func (m Model) VisibleRows() []string {
	out := make([]string, 0, m.size.Height)
	for i := 0; i < m.size.Height; i++ {
		row, ok := m.doc.Row(m.offset.Line + i)
		if !ok {
			break
		}
		out = append(out, row.Render(m.offset.Col, m.offset.Col+m.size.Width))
	}
	return out
}

func (m Model) renderRow(screenRow int) string {
	st := m.cfg.Style
	line := m.offset.Line + screenRow
	_, cursorRow := m.CursorScreenPos()

	row, ok := m.doc.Row(line)
	if !ok {
		if screenRow == cursorRow {
			return st.Cursor.Render(" ")
		}
		if m.doc.IsEmpty() && screenRow == m.size.Height/3 {
			return st.Welcome.Render(m.welcomeLine())
		}
		return st.Filler.Render("~")
	}

	text := row.Render(m.offset.Col, m.offset.Col+m.size.Width)
	if screenRow != cursorRow {
		return st.Text.Render(text)
	}
	return m.renderCursorRow(text)
}

func (m Model) renderCursorRow(text string) string {
	st := m.cfg.Style
	x, _ := m.CursorScreenPos()
	clusters := grapheme.Split(text)
	if x < 0 || x > len(clusters) {
		return st.Text.Render(text)
	}

	var sb strings.Builder
	sb.WriteString(st.Text.Render(strings.Join(clusters[:x], "")))
	if x < len(clusters) {
		sb.WriteString(st.Cursor.Render(clusters[x]))
		sb.WriteString(st.Text.Render(strings.Join(clusters[x+1:], "")))
	} else {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) welcomeLine() string {
	version := m.cfg.Version
	if version == "" {
		version = "dev"
	}
	msg := "quill editor -- version " + version
	padding := maxInt(m.size.Width-grapheme.Width(msg), 0) / 2
	line := "~" + strings.Repeat(" ", maxInt(padding-1, 0)) + msg
	return grapheme.Truncate(line, m.size.Width)
}

// StatusLine returns the unstyled status bar text: file name, line count and
// the 1-based cursor position.
func (m Model) StatusLine() string {
	name := m.doc.Name()
	if name == "" {
		name = unnamedFile
	}
	name = grapheme.Truncate(name, fileNameWidth)
	return fmt.Sprintf("%s - %d lines | Ln %d, Col %d",
		name, m.doc.Len(), m.cursor.Line+1, m.cursor.Col+1)
}

func (m Model) renderStatusBar() string {
	status := grapheme.Truncate(m.StatusLine(), m.width)
	return m.cfg.Style.StatusBar.Width(m.width).Render(status)
}

func (m Model) renderMessageBar() string {
	return m.cfg.Style.MessageBar.Render(grapheme.Truncate(m.message, m.width))
}
