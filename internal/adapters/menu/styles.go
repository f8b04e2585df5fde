package menu

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cursor   lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	size     lipgloss.Style
	detail   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	warning  lipgloss.Style
	help     lipgloss.Style
	filter   lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		size:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		help:     lipgloss.NewStyle().Faint(true),
		filter:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
