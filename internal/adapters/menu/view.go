package menu

import (
	"fmt"
	"strings"

	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.state {
	case stateCategoryMenu:
		return m.viewCategoryMenu()
	case stateLibraryMenu:
		return m.viewLibraryMenu()
	case stateDetail:
		return m.viewDetail()
	case stateConfirm:
		return m.viewConfirm()
	case stateInstalling:
		return fmt.Sprintf("%s Installing...", m.spinner.View())
	default:
		return ""
	}
}

func (m Model) viewCategoryMenu() string {
	s := m.styles
	lines := []string{
		s.title.Render("ML Library Installer"),
		s.header.Render(fmt.Sprintf("%d libraries, %s total", m.overview.LibraryCount(), domain.FormatSize(m.overview.TotalMB()))),
		"",
	}

	if len(m.overview.Categories) == 0 {
		lines = append(lines, s.empty.Render("Catalog is empty."))
	}

	for i, view := range m.overview.Categories {
		label := fmt.Sprintf("%s (%s, %d libraries)",
			view.Category.Title(), domain.FormatSize(view.TotalMB), len(view.Libraries))
		lines = append(lines, m.menuLine(label, i == m.categoryIndex))
	}

	lines = append(lines, m.resultLines()...)
	lines = append(lines, "", s.help.Render("enter: browse  a: install all  q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewLibraryMenu() string {
	s := m.styles
	lines := []string{
		s.title.Render(m.category.Category.Title()),
		s.header.Render(fmt.Sprintf("%d libraries, %s", len(m.category.Libraries), domain.FormatSize(m.category.TotalMB))),
	}

	if m.filtering || m.filter != "" {
		lines = append(lines, s.filter.Render("filter: "+m.filter))
	}
	lines = append(lines, "")

	if len(m.visible) == 0 {
		lines = append(lines, s.empty.Render("No libraries match."))
	}

	for i, library := range m.visible {
		label := fmt.Sprintf("%s (%s)", library.Name, domain.FormatSize(library.SizeMB))
		lines = append(lines, m.menuLine(label, i == m.libraryIndex))
	}

	lines = append(lines, m.resultLines()...)
	lines = append(lines, "", s.help.Render("enter: details  c: install category  /: filter  esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDetail() string {
	s := m.styles
	lines := []string{
		s.selected.Render(m.detail.Name),
		s.size.Render(fmt.Sprintf("category: %s", m.detail.Category.Title())),
		s.size.Render(fmt.Sprintf("size estimate: %s", domain.FormatSize(m.detail.SizeMB))),
		s.detail.Render(m.detail.Description),
		"",
		s.help.Render("i: install  esc: back"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirm() string {
	s := m.styles
	lines := []string{
		s.title.Render(m.confirmLabel),
		"",
		s.help.Render("y: install  n: cancel"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) menuLine(label string, selected bool) string {
	s := m.styles
	if selected {
		return s.cursor.Render("> ") + s.selected.Render(label)
	}

	return "  " + s.item.Render(label)
}

// resultLines shows the outcome of the last install run, success or not.
func (m Model) resultLines() []string {
	s := m.styles

	var lines []string
	if m.err != nil {
		lines = append(lines, "", s.failure.Render(fmt.Sprintf("error: %v", m.err)))
	}

	if len(m.reports) == 0 {
		return lines
	}

	lines = append(lines, "")
	for _, report := range m.reports {
		if report.Succeeded() {
			lines = append(lines, s.success.Render(fmt.Sprintf("✓ %s installed", report.Record.Library)))
		} else {
			reason := strings.TrimSpace(report.Record.Reason)
			lines = append(lines, s.failure.Render(fmt.Sprintf("✗ %s failed: %s", report.Record.Library, reason)))
		}
		if report.JournalErr != nil {
			lines = append(lines, s.warning.Render(fmt.Sprintf("  warning: %v", report.JournalErr)))
		}
	}

	return lines
}
