package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the styles for one color scheme.
type palette struct {
	header   lipgloss.Style
	cursor   lipgloss.Style
	done     lipgloss.Style
	selected lipgloss.Style
	input    lipgloss.Style
	hint     lipgloss.Style
}

func newPalette(dark bool) palette {
	if dark {
		return palette{
			header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
			cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			selected: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			input:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
			hint:     lipgloss.NewStyle().Faint(true),
		}
	}
	return palette{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("127")),
		input:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		hint:     lipgloss.NewStyle().Faint(true),
	}
}
