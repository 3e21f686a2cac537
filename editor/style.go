package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero value renders plain
// text, which keeps the widget usable without any styling.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text         lipgloss.Style
	Selection    lipgloss.Style
	Cursor       lipgloss.Style
	Match        lipgloss.Style
	MatchCurrent lipgloss.Style

	Scrollbar      lipgloss.Style
	ScrollbarThumb lipgloss.Style

	FindBar   lipgloss.Style
	FindFocus lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:         lipgloss.NewStyle(),
		Selection:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Match:        lipgloss.NewStyle().Background(lipgloss.Color("58")),
		MatchCurrent: lipgloss.NewStyle().Background(lipgloss.Color("94")).Bold(true),

		Scrollbar:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollbarThumb: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		FindBar:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		FindFocus: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
	}
}
