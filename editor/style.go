package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text    lipgloss.Style
	Cursor  lipgloss.Style
	// Filler marks screen rows past the end of the document.
	Filler  lipgloss.Style
	Welcome lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:    lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Filler:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f3f")).
			Background(lipgloss.Color("#efefef")),
		MessageBar: lipgloss.NewStyle(),
	}
}
