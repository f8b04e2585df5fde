package catalogview

import (
	"fmt"
	"time"

	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderOverview(overview application.Overview, s styles) string {
	lines := []string{
		s.title.Render("ML Library Catalog"),
		s.header.Render(fmt.Sprintf("%d libraries, %s total", overview.LibraryCount(), domain.FormatSize(overview.TotalMB()))),
	}

	if len(overview.Categories) == 0 {
		lines = append(lines, s.empty.Render("Catalog is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, view := range overview.Categories {
		lines = append(lines, s.section.Render(renderCategory(view, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCategory(view application.CategoryView, s styles) string {
	parts := []string{
		s.category.Render(categoryTitle(view)),
	}

	for _, library := range view.Libraries {
		parts = append(parts, libraryLine(library, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func libraryLine(library domain.Library, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.library.Render(library.Name),
		" ",
		s.size.Render(fmt.Sprintf("(%s)", domain.FormatSize(library.SizeMB))),
		" ",
		s.detail.Render(library.Description),
	)
}

func renderLibrary(library domain.Library, s styles) string {
	lines := []string{
		s.title.Render(library.Name),
		s.meta.Render(fmt.Sprintf("category: %s", library.Category.Title())),
		s.meta.Render(fmt.Sprintf("size estimate: %s", domain.FormatSize(library.SizeMB))),
		s.detail.Render(library.Description),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReports(reports []application.InstallReport, s styles) string {
	if len(reports) == 0 {
		return s.empty.Render("Nothing installed.")
	}

	lines := make([]string, 0, len(reports))
	for _, report := range reports {
		lines = append(lines, reportLine(report, s))
		if report.JournalErr != nil {
			lines = append(lines, s.warning.Render(fmt.Sprintf("  warning: %v", report.JournalErr)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func reportLine(report application.InstallReport, s styles) string {
	if report.Succeeded() {
		return s.success.Render(fmt.Sprintf("✓ %s installed", report.Record.Library))
	}

	return s.failure.Render(fmt.Sprintf("✗ %s failed: %s", report.Record.Library, report.Record.Reason))
}

func renderHistory(records []domain.InstallRecord, s styles) string {
	lines := []string{
		s.title.Render("Install History"),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No installs recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, historyLine(record, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func historyLine(record domain.InstallRecord, s styles) string {
	timestamp := s.meta.Render(record.Timestamp.UTC().Format(time.RFC3339))
	outcome := s.success.Render(string(domain.InstallSucceeded))
	if record.Outcome == domain.InstallFailed {
		outcome = s.failure.Render(fmt.Sprintf("%s: %s", domain.InstallFailed, record.Reason))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, timestamp, " ", s.library.Render(record.Library), " ", outcome)
}

func categoryTitle(view application.CategoryView) string {
	return fmt.Sprintf("%s (%s, %d libraries)", view.Category.Title(), domain.FormatSize(view.TotalMB), len(view.Libraries))
}
