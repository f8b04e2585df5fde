package catalogview

import (
	"errors"
	"io"

	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func RenderOverview(overview application.Overview) (string, error) {
	return run(func(s styles) string {
		return renderOverview(overview, s)
	})
}

func RenderCategory(view application.CategoryView) (string, error) {
	return run(func(s styles) string {
		return renderCategory(view, s)
	})
}

func RenderLibrary(library domain.Library) (string, error) {
	return run(func(s styles) string {
		return renderLibrary(library, s)
	})
}

func RenderReports(reports []application.InstallReport) (string, error) {
	return run(func(s styles) string {
		return renderReports(reports, s)
	})
}

func RenderHistory(records []domain.InstallRecord) (string, error) {
	return run(func(s styles) string {
		return renderHistory(records, s)
	})
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
