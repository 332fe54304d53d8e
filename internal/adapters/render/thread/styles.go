package thread

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	entryID lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	pending lipgloss.Style
	admin   lipgloss.Style
	branch  lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		entryID: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pending: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		admin:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		branch:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
