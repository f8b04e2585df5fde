package catalogview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	category lipgloss.Style
	library  lipgloss.Style
	size     lipgloss.Style
	detail   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	meta     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		category: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		library:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		size:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
